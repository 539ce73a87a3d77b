package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"blocpad/internal/core/block"
	"blocpad/internal/data/stores"
	"blocpad/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all blocks",
		UsageText: "blocpad ls [--json]",
		Description: `Displays a table of all blocks with their id, title and a content preview,
newest first.

Use --json for machine-readable output with the full content.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines with full content",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	blocks := stores.NewBlockStore(cmd.flags.Config.DataDir).Load()
	display := block.NewStore(blocks, nil).Display()

	out := c.Root().Writer

	if len(display) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintln(os.Stderr, "No blocks found")
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, b := range display {
			if err := iojson.WriteLine(out, blockInfo{
				ID:      b.ID,
				Tag:     b.Tag,
				Title:   b.Title,
				Content: b.Content,
			}); err != nil {
				return fmt.Errorf("encode block: %w", err)
			}
		}
		return nil
	}

	previewWidth := 48
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
		previewWidth = w - 24
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCONTENT")
	for _, b := range display {
		title := b.Title
		if title == "" {
			title = "#" + b.Tag
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, title, preview(b.Content, previewWidth))
	}
	return w.Flush()
}

// blockInfo is the JSON output format for blocpad ls --json.
type blockInfo struct {
	ID      string `json:"id"`
	Tag     string `json:"tag"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// preview flattens content to a single truncated line.
func preview(content string, width int) string {
	flat := make([]rune, 0, len(content))
	for _, r := range content {
		if r == '\n' || r == '\t' {
			r = ' '
		}
		flat = append(flat, r)
	}
	return runewidth.Truncate(string(flat), width, "…")
}
