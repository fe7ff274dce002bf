// Package services contains application services for the account registry.
// This file defines AccountStore: the in-memory account list, its backing
// file, and the registration and login rules built on top of them.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/models"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/repositories/accounts"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/common"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/cryptox"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/logging"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/timex"
)

// AccountStore owns the registered accounts in insertion order.
//
// Every successful registration rewrites the whole backing file, so the
// in-memory list always matches the last successful write.
type AccountStore struct {
	repo     accounts.Repository
	digester cryptox.Digester
	clock    timex.Clock
	log      logging.Logger

	mu       sync.RWMutex
	accounts []models.Account

	// loadErr is set when the file exists but could not be read to the end.
	// Rewriting it would drop the unread records, so Register refuses.
	loadErr error
}

// OpenAccountStore loads all accounts from repo. A missing file is not an
// error: the store starts empty and the file is created on the first
// registration. A file that fails midway keeps the accounts read so far for
// login and listing, but the store will not write over it.
func OpenAccountStore(ctx context.Context, repo accounts.Repository, digester cryptox.Digester,
	clock timex.Clock, log logging.Logger) *AccountStore {

	s := &AccountStore{
		repo:     repo,
		digester: digester,
		clock:    clock,
		log:      log.With("path", repo.Path()),
	}

	loaded, err := repo.Load(ctx)
	switch {
	case errors.Is(err, accounts.ErrFileUnavailable):
		s.log.Debug(ctx, "accounts file unavailable, starting empty", "error", err)
	case err != nil:
		s.log.Warn(ctx, "accounts file partially read, registration disabled", "error", err, "loaded", len(loaded))
		s.loadErr = err
	default:
		s.log.Debug(ctx, "accounts loaded", "count", len(loaded))
	}

	s.accounts = loaded
	return s
}

// UsernameExists reports whether an account has exactly this username.
func (s *AccountStore) UsernameExists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usernameExists(username)
}

// EmailExists reports whether an account has exactly this email.
func (s *AccountStore) EmailExists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emailExists(email)
}

func (s *AccountStore) usernameExists(username string) bool {
	for _, a := range s.accounts {
		if a.Username == username {
			return true
		}
	}
	return false
}

func (s *AccountStore) emailExists(email string) bool {
	for _, a := range s.accounts {
		if a.Email == email {
			return true
		}
	}
	return false
}

// Register creates a new account and persists the full list.
//
// It fails with common.ErrAlreadyExists, before touching anything, when the
// username or email is taken, and with common.ErrIncompleteLoad when the file
// was only partly read at open. If the file cannot be written the new account
// is dropped again and the write error is returned.
func (s *AccountStore) Register(ctx context.Context, username, password, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameExists(username) || s.emailExists(email) {
		s.log.Info(ctx, "registration rejected", "username", username)
		return fmt.Errorf("register %q: %w", username, common.ErrAlreadyExists)
	}

	if s.loadErr != nil {
		s.log.Error(ctx, "refusing to rewrite partially read accounts file", "username", username)
		return fmt.Errorf("register %q: %w: %w", username, common.ErrIncompleteLoad, s.loadErr)
	}

	account := models.Account{
		Username:     username,
		PasswordHash: s.digester.Digest(password),
		Email:        email,
		CreatedAt:    timex.Stamp(s.clock),
	}

	s.accounts = append(s.accounts, account)

	if err := s.repo.Save(ctx, s.accounts); err != nil {
		s.accounts = s.accounts[:len(s.accounts)-1]
		s.log.Error(ctx, "failed to persist accounts", "username", username, "error", err)
		return fmt.Errorf("register %q: %w", username, err)
	}

	s.log.Info(ctx, "account registered", "username", username, "digest", s.digester.Name())
	return nil
}

// Login reports whether some account matches both username and password.
// The result does not say which of the two was wrong.
func (s *AccountStore) Login(ctx context.Context, username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Username == username && s.digester.Verify(password, a.PasswordHash) {
			s.log.Info(ctx, "login succeeded", "username", username)
			return true
		}
	}

	s.log.Info(ctx, "login rejected", "username", username)
	return false
}

// ListAll returns every account in store order, without password digests.
func (s *AccountStore) ListAll() []models.AccountSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.AccountSummary, 0, len(s.accounts))
	for _, a := range s.accounts {
		result = append(result, a.Summary())
	}
	return result
}

// Len returns the number of stored accounts.
func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
