package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Under67/stellar-burgers/internal/client/client"
	"github.com/Under67/stellar-burgers/internal/client/config"
	"github.com/Under67/stellar-burgers/internal/client/credentials"
	"github.com/Under67/stellar-burgers/internal/client/store"
	"github.com/Under67/stellar-burgers/internal/filex"
	"github.com/Under67/stellar-burgers/internal/logging"

	_ "modernc.org/sqlite"
)

// startupTimeout bounds each of the initial loads done before the prompt
// appears.
const startupTimeout = 10 * time.Second

// emailHints offers the last used login email.
type emailHints interface {
	LastEmail(ctx context.Context) (string, error)
}

type App struct {
	config *config.Config
	store  *store.Store
	hints  emailHints
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.New(logging.Options{Backend: c.LogBackend, Level: c.LogLevel})

	dir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, c.DatabaseFile))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	creds := credentials.NewStore(db)
	api := client.NewHTTPClient(client.Options{
		BaseURL: c.APIBaseURL,
		Timeout: c.RequestTimeout,
		Tokens:  creds,
		Logger:  logger.With("component", "api"),
	})

	st := store.New(store.Options{
		Client:      api,
		Credentials: creds,
		Logger:      logger.With("component", "store"),
	})

	return &App{
		config: c,
		store:  st,
		hints:  creds,
		db:     db,
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run loads the initial state, starts the feed watcher and blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.bootstrap(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartFeedWatcher(watchCtx, a.config.FeedRefreshInterval)

	a.Root(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// bootstrap does what the web client did on mount: catalog, feed and the
// startup auth check. Failures are reported and the REPL starts anyway.
func (a *App) bootstrap(ctx context.Context) {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"catalog", a.store.FetchCatalog},
		{"feed", a.store.FetchFeed},
		{"auth", a.store.CheckAuth},
	}

	for _, s := range steps {
		stepCtx, cancel := context.WithTimeout(ctx, startupTimeout)
		err := s.fn(stepCtx)
		cancel()
		if err != nil {
			a.log.Debug(ctx, "startup step failed", "step", s.name, "error", err)
		}
	}

	st := a.store.State()
	if st.Catalog.Error != "" {
		fmt.Fprintln(a.out, "Could not load ingredients:", st.Catalog.Error)
	}
	if st.Session.IsAuthenticated && st.Session.User != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", st.Session.User.Name)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Session.IsAuthenticated
}

// StartFeedWatcher re-fetches the public feed every interval until ctx is
// done. A non-positive interval disables it.
func (a *App) StartFeedWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fetchCtx, cancel := context.WithTimeout(ctx, interval)
			err := a.store.FetchFeed(fetchCtx)
			cancel()

			if err != nil {
				a.log.Debug(ctx, "feed refresh failed", "error", err)
			}

		case <-ctx.Done():
			return
		}
	}
}
