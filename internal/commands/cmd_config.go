package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"blocpad/internal/core/config"
	"blocpad/internal/core/styles"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the configuration file",
				UsageText:   "blocpad config validate",
				Description: "Loads and validates the configuration file, reporting every invalid field.",
				Action:      cmd.runValidate,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	// Re-load from disk so this validates the file, not the in-memory copy.
	cfg, err := config.Load(cmd.flags.ConfigPath, cmd.flags.DataDir)
	if err != nil {
		fmt.Fprintf(c.Root().Writer, "%s %v\n", styles.ErrorMessageStyle.Render("✗"), err)
		return cli.Exit("", 1)
	}

	fmt.Fprintf(c.Root().Writer, "%s config ok (theme=%s locale=%s)\n",
		styles.SuccessMessageStyle.Render("✓"), cfg.Theme, cfg.Locale)
	return nil
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	w := c.Root().Writer

	fmt.Fprintf(w, "config:    %s\n", cmd.flags.ConfigPath)
	fmt.Fprintf(w, "data_dir:  %s\n", cfg.DataDir)
	fmt.Fprintf(w, "theme:     %s\n", cfg.Theme)
	fmt.Fprintf(w, "locale:    %s\n", cfg.Locale)
	fmt.Fprintf(w, "tasks:     %t\n", cfg.UI.TasksVisible())
	fmt.Fprintf(w, "countdown: %t\n", cfg.UI.CountdownVisible())
	return nil
}
