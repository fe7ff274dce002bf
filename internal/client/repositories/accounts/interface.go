package accounts

import (
	"context"
	"errors"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/models"
)

// ErrFileUnavailable reports that the backing file could not be opened for
// reading. A fresh installation has no file yet, so callers usually treat it
// as an empty store.
var ErrFileUnavailable = errors.New("accounts file unavailable")

type Repository interface {
	Load(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, accounts []models.Account) error
	Path() string
}
