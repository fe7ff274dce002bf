package cli

import (
	"context"
	"fmt"
	"strings"
)

const rowFormat = "%-15s%-25s%s\n"

// List prints every account as a fixed-width table. No password digest is
// ever available to print.
func (a *App) List(ctx context.Context) error {
	fmt.Fprintln(a.out, "\nRegistered Users:")
	fmt.Fprintf(a.out, rowFormat, "Username", "Email", "Created At")
	fmt.Fprintln(a.out, strings.Repeat("-", 60))

	for _, s := range a.store.ListAll() {
		fmt.Fprintf(a.out, rowFormat, s.Username, s.Email, s.CreatedAt)
	}
	return nil
}
