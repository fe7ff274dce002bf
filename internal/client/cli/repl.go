package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	choiceRegister = 1
	choiceLogin    = 2
	choiceList     = 3
	choiceExit     = 4
)

// menuActions is the command surface the menu loop dispatches to.
// The real App satisfies it; tests provide a lightweight stub.
type menuActions interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
}

func showMainMenu(w io.Writer) {
	fmt.Fprint(w, "\n====== LOGIN & REGISTRATION SYSTEM ======\n"+
		"1. Register\n"+
		"2. Login\n"+
		"3. List Users (Admin Demo)\n"+
		"4. Exit\n"+
		"Choose an option: ")
}

// runMenu prints the menu, reads a choice and dispatches it, repeating until
// the user picks Exit or reader hits EOF.
//
// Errors returned by the actions are ignored here: every action reports its
// own outcome to the user, and the loop always returns to the menu.
func runMenu(ctx context.Context, a menuActions, reader *bufio.Reader, w io.Writer) {
	for {
		showMainMenu(w)

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(w)
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		choice, convErr := strconv.Atoi(fields[0])
		if convErr != nil {
			choice = 0
		}

		switch choice {
		case choiceRegister:
			_ = a.Register(ctx)
		case choiceLogin:
			_ = a.Login(ctx)
		case choiceList:
			_ = a.List(ctx)
		case choiceExit:
			fmt.Fprintln(w, "Exiting program. Goodbye!")
			return
		default:
			fmt.Fprintln(w, "Invalid option. Try again.")
		}
	}
}
