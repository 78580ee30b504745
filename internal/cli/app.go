// Package cli implements the interactive GameBox portal: account
// management, the mini-game launcher, and the admin commands, all driven
// through a small REPL.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dkarklins/gamebox/internal/config"
	"github.com/dkarklins/gamebox/internal/digest"
	"github.com/dkarklins/gamebox/internal/games"
	"github.com/dkarklins/gamebox/internal/logging"
	"github.com/dkarklins/gamebox/internal/scores"
	"github.com/dkarklins/gamebox/internal/session"
	"github.com/dkarklins/gamebox/internal/storage"
	"github.com/dkarklins/gamebox/internal/store"
	"github.com/dkarklins/gamebox/internal/users"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	users  *users.Service
	scores *scores.Service
	games  *games.Runner
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	closeStorage func() error
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	var backend storage.Backend
	closeStorage := func() error { return nil }

	sq, err := storage.OpenSQLite(ctx, c.StorageDSN)
	if err != nil {
		// degraded mode: keep the portal usable, nothing survives exit
		logger.Warn(ctx, "storage unavailable, running in-memory", "error", err.Error())
		backend = storage.NewMemory()
	} else {
		backend = sq
		closeStorage = sq.Close
	}

	st := store.New(backend, c.Namespace)

	d := digest.New()
	if c.WeakDigest {
		logger.Warn(ctx, "using weak digest, secrets are poorly protected")
		d = digest.NewWeak()
	}

	repo := users.NewRepository(st)
	sessions := session.NewManager(st)
	us := users.NewService(repo, sessions, d, c, logger)
	sc := scores.NewService(st, logger)

	reader := bufio.NewReader(os.Stdin)

	return &App{
		config:       c,
		users:        us,
		scores:       sc,
		games:        games.NewRunner(reader, os.Stdout, sc),
		logger:       logger,
		reader:       reader,
		out:          os.Stdout,
		closeStorage: closeStorage,
	}, nil
}

// Run seeds the admin account and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.closeStorage() }()

	if err := a.users.SeedAdmin(ctx); err != nil {
		return err
	}

	a.Root(ctx)
	return nil
}
