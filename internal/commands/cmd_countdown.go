package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"blocpad/internal/core/countdown"
	"blocpad/internal/data/stores"
)

// Accepted layouts for countdown set --date, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type CountdownCmd struct {
	flags *Flags

	name string
	date string
}

// NewCountdownCmd creates a new countdown command
func NewCountdownCmd(flags *Flags) *CountdownCmd {
	return &CountdownCmd{flags: flags}
}

// Register adds the countdown command to the application
func (cmd *CountdownCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "countdown",
		Usage: "Manage the countdown event",
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Set the countdown target",
				UsageText: `blocpad countdown set --name "Launch" --date 2026-09-01T10:00:00`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "name",
						Usage:       "event name",
						Required:    true,
						Destination: &cmd.name,
					},
					&cli.StringFlag{
						Name:        "date",
						Usage:       "event date (RFC3339, '2006-01-02 15:04' or '2006-01-02')",
						Required:    true,
						Destination: &cmd.date,
					},
				},
				Action: cmd.runSet,
			},
			{
				Name:   "show",
				Usage:  "Print the remaining time",
				Action: cmd.runShow,
			},
			{
				Name:   "clear",
				Usage:  "Remove the countdown event",
				Action: cmd.runClear,
			},
		},
	})
	return app
}

func (cmd *CountdownCmd) runSet(_ context.Context, c *cli.Command) error {
	date, err := parseDate(cmd.date)
	if err != nil {
		return err
	}

	ev := countdown.Event{Name: cmd.name, Date: date}
	if err := stores.NewCountdownStore(cmd.flags.Config.DataDir).Save(ev); err != nil {
		return fmt.Errorf("save countdown: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Counting down to %s (%s)\n", ev.Name, ev.Until(time.Now()))
	return nil
}

func (cmd *CountdownCmd) runShow(_ context.Context, c *cli.Command) error {
	ev := stores.NewCountdownStore(cmd.flags.Config.DataDir).Load()
	if ev == nil {
		fmt.Fprintln(os.Stderr, "No countdown set")
		return nil
	}

	r := ev.Until(time.Now())
	fmt.Fprintf(c.Root().Writer, "%s: %s\n%s\n", ev.Name, r, r.Message())
	return nil
}

func (cmd *CountdownCmd) runClear(_ context.Context, c *cli.Command) error {
	if err := stores.NewCountdownStore(cmd.flags.Config.DataDir).Clear(); err != nil {
		return fmt.Errorf("clear countdown: %w", err)
	}
	fmt.Fprintln(c.Root().Writer, "Countdown cleared")
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date %q", s)
}
