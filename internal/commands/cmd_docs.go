package commands

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

//go:embed docs/guide.md
var guideMarkdown string

type DocsCmd struct {
	flags *Flags

	plain bool
}

// NewDocsCmd creates a new docs command
func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

// Register adds the docs command to the application
func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "docs",
		Usage: "Show the user guide",
		Description: `Renders the built-in user guide: key bindings, the :shortcode symbol picker,
inline markup, and where data files live.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print raw markdown without styling",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocsCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if cmd.plain {
		_, err := fmt.Fprint(out, guideMarkdown)
		return err
	}

	wrapWidth := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < wrapWidth {
		wrapWidth = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(guideMarkdown)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}
