package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"blocpad/internal/core/shortcut"
	"blocpad/internal/data/stores"
	"blocpad/pkg/iojson"
)

type ShortcutCmd struct {
	flags *Flags

	// add flags
	name     string
	url      string
	icon     string
	position string

	jsonOutput bool
}

// NewShortcutCmd creates a new shortcut command
func NewShortcutCmd(flags *Flags) *ShortcutCmd {
	return &ShortcutCmd{flags: flags}
}

// Register adds the shortcut command to the application
func (cmd *ShortcutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "shortcut",
		Usage: "Manage saved link shortcuts",
		Description: `Shortcuts are named links kept alongside the pad. URLs without a scheme get
https:// prepended; each shortcut is pinned to the left or right group.`,
		Commands: []*cli.Command{
			{
				Name:  "ls",
				Usage: "List shortcuts",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "add",
				Usage:     "Add a shortcut",
				UsageText: "blocpad shortcut add [--name NAME --url URL] [--icon URL] [--position left|right]",
				Description: `Without flags, opens an interactive form. With --name and --url, adds
directly.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "name",
						Destination: &cmd.name,
					},
					&cli.StringFlag{
						Name:        "url",
						Destination: &cmd.url,
					},
					&cli.StringFlag{
						Name:        "icon",
						Usage:       "icon image URL",
						Destination: &cmd.icon,
					},
					&cli.StringFlag{
						Name:        "position",
						Usage:       "left or right",
						Value:       string(shortcut.PositionRight),
						Destination: &cmd.position,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "rm",
				Usage:     "Remove a shortcut by id or name",
				UsageText: "blocpad shortcut rm <id-or-name>",
				Action:    cmd.runRemove,
			},
		},
	})
	return app
}

func (cmd *ShortcutCmd) runList(_ context.Context, c *cli.Command) error {
	shortcuts := stores.NewShortcutStore(cmd.flags.Config.DataDir).Load()

	out := c.Root().Writer

	if len(shortcuts) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintln(os.Stderr, "No shortcuts found")
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, s := range shortcuts {
			if err := iojson.WriteLine(out, s); err != nil {
				return fmt.Errorf("encode shortcut: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tURL\tPOSITION")
	for _, s := range shortcuts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.URL, s.Position)
	}
	return w.Flush()
}

func (cmd *ShortcutCmd) runAdd(_ context.Context, c *cli.Command) error {
	if cmd.name == "" || cmd.url == "" {
		position := cmd.position
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&cmd.name).
					Validate(required("name")),
				huh.NewInput().
					Title("URL").
					Value(&cmd.url).
					Validate(required("url")),
				huh.NewInput().
					Title("Icon URL").
					Description("leave empty for the default icon").
					Value(&cmd.icon),
				huh.NewSelect[string]().
					Title("Position").
					Options(
						huh.NewOption("right", string(shortcut.PositionRight)),
						huh.NewOption("left", string(shortcut.PositionLeft)),
					).
					Value(&position),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		cmd.position = position
	}

	pos := shortcut.Position(cmd.position)
	if pos != shortcut.PositionLeft && pos != shortcut.PositionRight {
		return fmt.Errorf("invalid position %q (expected left or right)", cmd.position)
	}

	store := stores.NewShortcutStore(cmd.flags.Config.DataDir)
	s := shortcut.New(cmd.name, cmd.icon, cmd.url, pos)

	if err := store.Save(append(store.Load(), s)); err != nil {
		return fmt.Errorf("save shortcuts: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added %s -> %s\n", s.Name, s.URL)
	return nil
}

func (cmd *ShortcutCmd) runRemove(_ context.Context, c *cli.Command) error {
	arg := c.Args().First()
	if arg == "" {
		return fmt.Errorf("usage: blocpad shortcut rm <id-or-name>")
	}

	store := stores.NewShortcutStore(cmd.flags.Config.DataDir)
	shortcuts := store.Load()

	kept := shortcuts[:0]
	removed := 0
	for _, s := range shortcuts {
		if s.ID == arg || s.Name == arg {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	if removed == 0 {
		return fmt.Errorf("no shortcut matching %q", arg)
	}

	if err := store.Save(kept); err != nil {
		return fmt.Errorf("save shortcuts: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Removed %d shortcut(s)\n", removed)
	return nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
