// Package models defines the account record and its line encoding.
package models

import "strings"

// FieldSeparator joins the fields of a serialized account. It is not escaped:
// a field containing it will not survive a round trip.
const FieldSeparator = ","

const trimSet = " \t\n\r"

// Account is one registered user as stored on disk.
type Account struct {
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    string
}

// AccountSummary is the part of an Account that may be shown to others.
type AccountSummary struct {
	Username  string
	Email     string
	CreatedAt string
}

func (a Account) Summary() AccountSummary {
	return AccountSummary{Username: a.Username, Email: a.Email, CreatedAt: a.CreatedAt}
}

// Serialize renders a as "username,passwordHash,email,createdAt".
func Serialize(a Account) string {
	return strings.Join([]string{a.Username, a.PasswordHash, a.Email, a.CreatedAt}, FieldSeparator)
}

// IsBlank reports whether line holds nothing but spaces, tabs, CR or LF.
// Blank lines carry no account.
func IsBlank(line string) bool {
	return strings.Trim(line, trimSet) == ""
}

// Deserialize parses a line produced by Serialize. Each field is trimmed.
// Missing trailing fields are left empty and anything after the fourth
// field is ignored, so a malformed line still yields an Account.
func Deserialize(line string) Account {
	var f [4]string
	for i, part := range strings.SplitN(line, FieldSeparator, 5) {
		if i == len(f) {
			break
		}
		f[i] = strings.Trim(part, trimSet)
	}
	return Account{Username: f[0], PasswordHash: f[1], Email: f[2], CreatedAt: f[3]}
}
