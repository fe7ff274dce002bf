package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email and password (in that order) and
// creates the account.
//
// A password shorter than the configured minimum and a username or email
// that would corrupt the accounts file are rejected without calling the
// store. The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Registration ---")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) < a.config.MinPasswordLength {
		fmt.Fprintf(a.out, "Password must be at least %d characters long.\n", a.config.MinPasswordLength)
		return fmt.Errorf("%w: password too short", common.ErrValidation)
	}

	if err := validateRegistration(username, email); err != nil {
		fmt.Fprintf(a.out, "Invalid input: %s\n", trimValidationPrefix(err))
		return err
	}

	err = a.store.Register(ctx, username, string(password), email)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Registration successful!")
	case errors.Is(err, common.ErrAlreadyExists):
		fmt.Fprintln(a.out, "Username or email already exists.")
	default:
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
	}
	return err
}

// Login prompts for username and password and reports the result. The
// message on failure is the same whether the user is unknown or the
// password is wrong.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Login ---")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if a.store.Login(ctx, username, string(password)) {
		fmt.Fprintf(a.out, "Login successful. Welcome, %s!\n", username)
	} else {
		fmt.Fprintln(a.out, "Invalid username or password.")
	}
	return nil
}

func trimValidationPrefix(err error) string {
	msg, _ := strings.CutPrefix(err.Error(), common.ErrValidation.Error()+": ")
	return msg
}
