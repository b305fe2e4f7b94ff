package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/eduportal/internal/cryptox"
	"github.com/dmitrijs2005/eduportal/internal/filex"
	"github.com/dmitrijs2005/eduportal/internal/logging"
	"github.com/dmitrijs2005/eduportal/internal/portal/config"
	"github.com/dmitrijs2005/eduportal/internal/portal/identity"
	"github.com/dmitrijs2005/eduportal/internal/portal/models"
	"github.com/dmitrijs2005/eduportal/internal/portal/storage"
)

// IdentityStore is the part of identity.Store the shell drives.
type IdentityStore interface {
	Register(ctx context.Context, in identity.RegisterInput) (*models.Account, error)
	Authenticate(ctx context.Context, email string, password []byte, role models.Role) (*models.Session, error)
	EndSession(ctx context.Context) error
	CurrentSession() *models.Session
	IsAuthenticated() bool
}

type App struct {
	config *config.Config
	store  IdentityStore
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	close  func() error
}

// NewApp opens the configured storage and identity store.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	digester, err := cryptox.NewDigester(c.DigestAlgorithm)
	if err != nil {
		return nil, err
	}

	st, closeFn, err := openStorage(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing storage", "path", c.StoragePath, "error", err)
		return nil, err
	}
	log.Debug(ctx, "storage opened", "path", c.StoragePath)

	store, err := identity.Open(ctx, st,
		identity.WithDigester(digester),
		identity.WithLatency(c.SimulatedLatency),
		identity.WithPasswordCheck(c.VerifyPassword),
		identity.WithLogger(log.With("component", "identity")),
	)
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	app := newApp(c, store, log, os.Stdin, os.Stdout)
	app.close = closeFn
	return app, nil
}

func newApp(c *config.Config, store IdentityStore, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		store:  store,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		close:  func() error { return nil },
	}
}

func openStorage(ctx context.Context, path string) (storage.Storage, func() error, error) {
	if path == config.MemoryStoragePath {
		return storage.NewMemoryStorage(), func() error { return nil }, nil
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}
	st, err := storage.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return st, st.Close, nil
}

// Run starts the interactive shell and releases storage when it ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.close(); err != nil {
			a.log.Warn(ctx, "error closing storage", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
