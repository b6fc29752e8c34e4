// Package seed loads a small demo data set of planets, scientists and
// missions. Planets have no HTTP create endpoint, so seeding is how a fresh
// database gets any.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/platform/database"
	"github.com/phrazzld/cosmic-api/internal/platform/sqlstore"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// ErrNotEmpty is returned when seeding a database that already holds data
// without Options.Reset.
var ErrNotEmpty = errors.New("database already contains data")

// Options controls a seed run.
type Options struct {
	// Reset deletes every existing row before inserting.
	Reset bool
}

// Result counts the rows inserted.
type Result struct {
	Planets    int
	Scientists int
	Missions   int
}

type missionSeed struct {
	name      string
	scientist int
	planet    int
}

var (
	planets = []struct {
		name     string
		distance int64
		star     string
	}{
		{"TauCeti E", 1234567, "TauCeti"},
		{"Maxxx-4", 98765432, "Canus Minor"},
		{"Kepler-186f", 582, "Kepler-186"},
		{"Proxima b", 4, "Proxima Centauri"},
		{"TRAPPIST-1e", 40, "TRAPPIST-1"},
	}
	scientists = []struct{ name, field string }{
		{"Mel T. Valent", "xenobiology"},
		{"P. Legrange", "orbital mechanics"},
		{"Sally Ride", "astrophysics"},
		{"Jill Tarter", "radio astronomy"},
	}
	missions = []missionSeed{
		{"Explore Planet X", 0, 0},
		{"Survey Maxxx-4", 1, 1},
		{"Atmospheric Sampling", 2, 2},
		{"Listening Post", 3, 3},
		{"Tidal Lock Study", 1, 4},
		{"Second Look", 0, 4},
	}
)

// Run inserts the demo data set in a single transaction.
func Run(ctx context.Context, db *database.DB, opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "seed"))

	scientistStore := sqlstore.NewScientistStore(db, db.Dialect, logger)
	planetStore := sqlstore.NewPlanetStore(db, db.Dialect, logger)
	missionStore := sqlstore.NewMissionStore(db, db.Dialect, logger)

	var result Result
	err := store.RunInTransaction(ctx, db.DB, func(ctx context.Context, tx *sql.Tx) error {
		if opts.Reset {
			if err := clearTables(ctx, tx); err != nil {
				return err
			}
		} else if err := requireEmpty(ctx, tx); err != nil {
			return err
		}

		txPlanets := planetStore.WithTx(tx)
		planetIDs := make([]int64, 0, len(planets))
		for _, p := range planets {
			planet := domain.NewPlanet(p.name, p.distance, p.star)
			if err := txPlanets.Create(ctx, planet); err != nil {
				return fmt.Errorf("seed planet %q: %w", p.name, err)
			}
			planetIDs = append(planetIDs, planet.ID)
		}

		txScientists := scientistStore.WithTx(tx)
		scientistIDs := make([]int64, 0, len(scientists))
		for _, s := range scientists {
			scientist, err := domain.NewScientist(s.name, s.field)
			if err != nil {
				return err
			}
			if err := txScientists.Create(ctx, scientist); err != nil {
				return fmt.Errorf("seed scientist %q: %w", s.name, err)
			}
			scientistIDs = append(scientistIDs, scientist.ID)
		}

		txMissions := missionStore.WithTx(tx)
		for _, m := range missions {
			mission, err := domain.NewMission(m.name, scientistIDs[m.scientist], planetIDs[m.planet])
			if err != nil {
				return err
			}
			if err := txMissions.Create(ctx, mission); err != nil {
				return fmt.Errorf("seed mission %q: %w", m.name, err)
			}
		}

		result = Result{
			Planets:    len(planetIDs),
			Scientists: len(scientistIDs),
			Missions:   len(missions),
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("seed data loaded",
		slog.Int("planets", result.Planets),
		slog.Int("scientists", result.Scientists),
		slog.Int("missions", result.Missions))
	return result, nil
}

func clearTables(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"missions", "scientists", "planets"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func requireEmpty(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"scientists", "planets", "missions"} {
		var n int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		if n > 0 {
			return fmt.Errorf("%w: %s has %d rows", ErrNotEmpty, table, n)
		}
	}
	return nil
}
