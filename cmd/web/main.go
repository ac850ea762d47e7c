package main

import (
	"context"
	"encoding/gob"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/myrjola/reportdesk/internal/envstruct"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/logging"
	"github.com/myrjola/reportdesk/internal/pprofserver"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/sqlite"
	"github.com/myrjola/reportdesk/internal/ssr"
	"github.com/myrjola/reportdesk/internal/submission"
	"github.com/myrjola/reportdesk/internal/viewstate"
	"golang.org/x/sync/errgroup"
)

func init() {
	gob.Register(report.Report{})
	gob.Register(viewstate.State{})
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	renderer       *ssr.Renderer
	submissions    *submission.Service
	db             *sqlite.Database
	templates      *templateCache
	requestTimeout time.Duration
}

type config struct {
	// Addr is the address the server listens on. Use port 0 for a random port.
	Addr string `env:"REPORTDESK_ADDR" envDefault:"localhost:4000"`
	// PprofAddr enables the pprof server when set. Keep it on localhost.
	PprofAddr string `env:"REPORTDESK_PPROF_ADDR" envDefault:""`
	// SqliteURL points to the session database.
	SqliteURL       string        `env:"REPORTDESK_SQLITE_URL" envDefault:":memory:"`
	SubmitDelay     time.Duration `env:"REPORTDESK_SUBMIT_DELAY" envDefault:"1s"`
	SessionLifetime time.Duration `env:"REPORTDESK_SESSION_LIFETIME" envDefault:"12h"`
	// RequestTimeout bounds reading and writing a request. Handlers get a little less, see handlerTimeout.
	RequestTimeout time.Duration `env:"REPORTDESK_REQUEST_TIMEOUT" envDefault:"5s"`
}

var ErrInvalidConfig = errors.NewSentinel("invalid config")

func (c config) validate() error {
	if c.SubmitDelay >= handlerTimeout(c.RequestTimeout) {
		return errors.Wrap(ErrInvalidConfig, "submit delay does not fit in the request timeout",
			slog.Duration("submitDelay", c.SubmitDelay), slog.Duration("requestTimeout", c.RequestTimeout))
	}
	return nil
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		err error
		cfg config
	)
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	if err = cfg.validate(); err != nil {
		return err
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, cfg.SqliteURL, logger); err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()

	var templates *templateCache
	if templates, err = newTemplateCache(); err != nil {
		return errors.Wrap(err, "parse templates")
	}

	// The session store gets the read/write pool only. With shared cache in-memory databases a read on the other pool
	// would fail with a table lock error while a session is being written.
	sessionStore := sqlite3store.NewWithCleanupInterval(db.ReadWrite, time.Hour)
	sessionManager := scs.New()
	sessionManager.Store = sessionStore
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		renderer:       ssr.NewRenderer(),
		submissions:    submission.New(logger, cfg.SubmitDelay),
		db:             db,
		templates:      templates,
		requestTimeout: cfg.RequestTimeout,
	}

	// Everything below stops on SIGINT/SIGTERM or when the caller cancels ctx.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.configureAndStartServer(gctx, cfg.Addr)
	})
	g.Go(func() error {
		return db.RunOptimizer(gctx, time.Hour)
	})
	g.Go(func() error {
		<-gctx.Done()
		sessionStore.StopCleanup()
		return nil
	})
	if cfg.PprofAddr != "" {
		g.Go(func() error {
			return pprofserver.Run(gctx, cfg.PprofAddr, logger)
		})
	}
	if err = g.Wait(); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	// The .env file is optional, environment variables set by the platform take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failed to load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
