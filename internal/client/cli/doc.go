// Package cli provides the interactive account registry shell.
//
// It wires configuration, the file-backed AccountStore and a numbered menu
// loop. The menu offers:
//
//  1. Register: username, email and password; short passwords are
//     rejected before the store is called
//  2. Login: checks credentials without saying which one was wrong
//  3. List Users: prints every account as a fixed-width table
//  4. Exit
//
// The loop is started via App.Run(ctx), which returns when the user picks
// Exit or input ends.
package cli
