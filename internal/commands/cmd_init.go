package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"blocpad/internal/core/config"
	"blocpad/internal/core/styles"
)

type InitCmd struct {
	flags *Flags

	yes   bool
	force bool
}

// NewInitCmd creates a new init command
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a config file interactively",
		UsageText: "blocpad init [--yes] [--force]",
		Description: `Walks through theme, locale and widget visibility, then writes config.yaml.

Use --yes to skip the prompts and write the defaults.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing config file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", path)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(path + "\nOverwrite?").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(c.Root().Writer, "Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !cmd.yes {
		themeOptions := make([]huh.Option[string], 0, len(styles.ThemeNames()))
		for _, name := range styles.ThemeNames() {
			themeOptions = append(themeOptions, huh.NewOption(name, name))
		}

		showTasks := cfg.UI.TasksVisible()
		showCountdown := cfg.UI.CountdownVisible()

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Theme").
					Options(themeOptions...).
					Value(&cfg.Theme),
				huh.NewSelect[string]().
					Title("Symbol picker locale").
					Options(
						huh.NewOption("English", config.LocaleEN),
						huh.NewOption("Español", config.LocaleES),
					).
					Value(&cfg.Locale),
				huh.NewConfirm().
					Title("Show the daily task panel?").
					Value(&showTasks),
				huh.NewConfirm().
					Title("Show the countdown widget?").
					Value(&showCountdown),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		cfg.UI.ShowTasks = &showTasks
		cfg.UI.ShowCountdown = &showCountdown
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Wrote %s\n", path)
	return nil
}
