package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"blocpad/internal/core/catalog"
	"blocpad/internal/data/stores"
	"blocpad/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	noWatch bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "disable live reload when data files change on disk",
			Sources:     cli.EnvVars("BLOCPAD_NO_WATCH"),
			Destination: &cmd.noWatch,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load symbol catalog: %w", err)
	}

	cfg := cmd.flags.Config

	var watcher *stores.Watcher
	if !cmd.noWatch {
		watcher, err = stores.NewWatcher(cfg.DataDir)
		if err != nil {
			// The pad still works without live reload.
			log.Warn().Err(err).Msg("file watcher unavailable, live reload disabled")
			watcher = nil
		}
	}
	if watcher != nil {
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Error().Err(err).Msg("close watcher")
			}
		}()
	}

	model := tui.New(tui.Options{
		Cfg:       cfg,
		Blocks:    stores.NewBlockStore(cfg.DataDir),
		Tasks:     stores.NewTaskStore(cfg.DataDir),
		Countdown: stores.NewCountdownStore(cfg.DataDir),
		Catalog:   cat,
		Watcher:   watcher,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
