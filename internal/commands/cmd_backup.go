package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
)

const backupTimeFormat = "2006-01-02_150405"

type BackupCmd struct {
	flags *Flags

	name string
}

// NewBackupCmd creates a new backup command
func NewBackupCmd(flags *Flags) *BackupCmd {
	return &BackupCmd{flags: flags}
}

// Register adds the backup command to the application
func (cmd *BackupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "backup",
		Usage: "Back up and restore the data directory",
		Description: `Backups are plain copies of the JSON data files under <data-dir>/backups,
one timestamped directory per backup.`,
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Copy all data files into a new backup",
				UsageText: "blocpad backup create",
				Action:    cmd.runCreate,
			},
			{
				Name:      "ls",
				Usage:     "List available backups",
				Action:    cmd.runList,
			},
			{
				Name:      "restore",
				Usage:     "Restore data files from a backup",
				UsageText: "blocpad backup restore [--name NAME]",
				Description: `Restores the newest backup, or the one named with --name. Current data
files are overwritten.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "name",
						Usage:       "backup directory name (defaults to the newest)",
						Destination: &cmd.name,
					},
				},
				Action: cmd.runRestore,
			},
		},
	})
	return app
}

func (cmd *BackupCmd) backupsDir() string {
	return filepath.Join(cmd.flags.Config.DataDir, "backups")
}

func (cmd *BackupCmd) runCreate(_ context.Context, c *cli.Command) error {
	dataDir := cmd.flags.Config.DataDir

	files, err := doublestar.FilepathGlob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return fmt.Errorf("scan data dir: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to back up in %s", dataDir)
	}

	name := time.Now().Format(backupTimeFormat)
	dest := filepath.Join(cmd.backupsDir(), name)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	for _, src := range files {
		if err := copyFile(src, filepath.Join(dest, filepath.Base(src))); err != nil {
			return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
		}
	}

	fmt.Fprintf(c.Root().Writer, "Backed up %d file(s) to %s\n", len(files), dest)
	return nil
}

func (cmd *BackupCmd) runList(_ context.Context, c *cli.Command) error {
	names, err := cmd.backupNames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "No backups found")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(c.Root().Writer, name)
	}
	return nil
}

func (cmd *BackupCmd) runRestore(_ context.Context, c *cli.Command) error {
	name := cmd.name
	if name == "" {
		names, err := cmd.backupNames()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no backups found in %s", cmd.backupsDir())
		}
		name = names[len(names)-1]
	}

	src := filepath.Join(cmd.backupsDir(), name)
	files, err := doublestar.FilepathGlob(filepath.Join(src, "**", "*.json"))
	if err != nil {
		return fmt.Errorf("scan backup: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("backup %q has no data files", name)
	}

	for _, f := range files {
		if err := copyFile(f, filepath.Join(cmd.flags.Config.DataDir, filepath.Base(f))); err != nil {
			return fmt.Errorf("restore %s: %w", filepath.Base(f), err)
		}
	}

	fmt.Fprintf(c.Root().Writer, "Restored %d file(s) from %s\n", len(files), name)
	return nil
}

// backupNames returns backup directory names sorted oldest to newest. The
// timestamp format sorts lexically.
func (cmd *BackupCmd) backupNames() ([]string, error) {
	entries, err := os.ReadDir(cmd.backupsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backups dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
