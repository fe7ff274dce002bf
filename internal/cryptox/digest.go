// Package cryptox turns passwords into the digests stored in account records.
//
// Digester is the narrow seam the account store depends on. DJB2 is the
// default and reproduces the digests found in existing account files. Argon2ID
// is a salted key-derivation alternative that keeps the same record layout.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	DigestDJB2     = "djb2"
	DigestArgon2ID = "argon2id"
)

var (
	ErrUnknownDigest = errors.New("unknown digest")
)

// Digester produces and checks password digests.
type Digester interface {
	// Name identifies the algorithm, e.g. "djb2".
	Name() string
	// Digest returns the textual digest of password. It never contains a comma.
	Digest(password string) string
	// Verify reports whether password produces digest.
	Verify(password, digest string) bool
}

// NewDigester returns the digester registered under name.
func NewDigester(name string) (Digester, error) {
	switch strings.ToLower(name) {
	case DigestDJB2:
		return DJB2{}, nil
	case DigestArgon2ID:
		return Argon2ID{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDigest, name)
}

// DJB2 is the multiplicative rolling hash acc = acc*33 + b seeded with 5381,
// wrapping at 64 bits and rendered as lowercase hex.
//
// It is NOT a password hash: it is fast, unsalted and trivially brute-forced.
type DJB2 struct{}

func (DJB2) Name() string { return DigestDJB2 }

func (DJB2) Digest(password string) string {
	var acc uint64 = 5381
	for i := 0; i < len(password); i++ {
		acc = acc*33 + uint64(password[i])
	}
	return strconv.FormatUint(acc, 16)
}

func (d DJB2) Verify(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(d.Digest(password)), []byte(digest)) == 1
}

const (
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// Argon2ID stores "argon2id$<salt hex>$<key hex>".
type Argon2ID struct{}

func (Argon2ID) Name() string { return DigestArgon2ID }

func (Argon2ID) Digest(password string) string {
	salt := common.GenerateRandByteArray(argon2SaltLen)
	key := deriveKey([]byte(password), salt)
	return DigestArgon2ID + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

func (Argon2ID) Verify(password, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 3 || parts[0] != DigestArgon2ID {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) != argon2KeyLen {
		return false
	}

	candidate := deriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(candidate, want) == 1
}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, argon2KeyLen)
}
