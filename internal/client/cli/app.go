package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/config"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/models"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/repositories/accounts"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/services"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/cryptox"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/logging"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/timex"
	"github.com/google/uuid"
)

// AccountStore is the part of services.AccountStore the shell needs.
type AccountStore interface {
	Register(ctx context.Context, username, password, email string) error
	Login(ctx context.Context, username, password string) bool
	ListAll() []models.AccountSummary
	Len() int
}

type App struct {
	config *config.Config
	store  AccountStore
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the logger, digester and account store described by c and
// binds the shell to stdin/stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	base, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := base.With("session_id", uuid.NewString())

	digester, err := cryptox.NewDigester(c.Digest)
	if err != nil {
		return nil, err
	}

	repo := accounts.NewFileRepository(c.AccountsFile)
	store := services.OpenAccountStore(ctx, repo, digester, timex.SystemClock{}, log)

	log.Info(ctx, "account registry ready", "accounts", store.Len(), "digest", digester.Name())

	return &App{
		config: c,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run shows the menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	runMenu(ctx, a, a.reader, a.out)
	a.log.Info(ctx, "session finished")
}
