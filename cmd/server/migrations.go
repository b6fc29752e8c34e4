package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/phrazzld/cosmic-api/internal/platform/database"
)

var migrateCommands = []string{"up", "down", "status", "version", "reset"}

func validMigrateCommand(cmd string) bool {
	for _, c := range migrateCommands {
		if c == cmd {
			return true
		}
	}
	return false
}

// handleMigrations executes a -migrate command against db.
// status and version are written to out.
func handleMigrations(ctx context.Context, db *database.DB, command string, out io.Writer, logger *slog.Logger) error {
	m, err := database.NewMigrator(db, logger)
	if err != nil {
		return err
	}

	logger.Info("executing migrations", slog.String("command", command))

	switch command {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "reset":
		return m.Reset(ctx)
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "version %d\n", v)
		return err
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		return writeStatus(out, statuses)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
}

func writeStatus(out io.Writer, statuses []database.MigrationStatus) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "VERSION\tAPPLIED AT\tSOURCE")
	for _, s := range statuses {
		applied := "pending"
		if s.Applied {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, applied, s.Source)
	}
	return tw.Flush()
}
