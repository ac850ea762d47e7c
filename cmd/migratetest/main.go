package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/sqlite"
	"github.com/myrjola/reportdesk/internal/testhelpers"
)

// main syncs the schema of a copy of the production database and checks that the sessions survived.
func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("REPORTDESK_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "REPORTDESK_SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	// Sessions expire on their own so an empty table is fine, a missing one is not.
	row := db.ReadWrite.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE expiry > julianday('now')`)
	var count int
	if err = row.Scan(&count); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error fetching session count", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "active sessions", slog.Int("count", count))
	if err = db.Close(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error closing database", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
