package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON value of type T from a --file flag, or from
// stdin when the flag is unset and stdin is piped.
type FileReader[T any] struct {
	path string
}

// Flag returns the --file flag to register on the command using the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "JSON file to read (stdin when piped)",
		Destination: &fr.path,
	}
}

// Read decodes the input. It refuses to block on an interactive stdin.
func (fr *FileReader[T]) Read() (T, error) {
	var v T

	r, closeFn, err := fr.open()
	if err != nil {
		return v, err
	}
	defer closeFn()

	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, fmt.Errorf("decode JSON: %w", err)
	}
	return v, nil
}

func (fr *FileReader[T]) open() (io.Reader, func(), error) {
	if fr.path != "" {
		f, err := os.Open(fr.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil, fmt.Errorf("no input provided: pass --file or pipe JSON on stdin")
	}
	return os.Stdin, func() {}, nil
}
