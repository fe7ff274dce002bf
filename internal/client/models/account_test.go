package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize_FieldOrder(t *testing.T) {
	a := Account{Username: "alice", PasswordHash: "2b606", Email: "a@x.com", CreatedAt: "2024-01-02 03:04:05"}
	assert.Equal(t, "alice,2b606,a@x.com,2024-01-02 03:04:05", Serialize(a))
}

func TestDeserialize_RoundTrip(t *testing.T) {
	accounts := []Account{
		{Username: "bob", PasswordHash: "377d8855211ff21", Email: "b@x.com", CreatedAt: "2024-06-30 23:59:59"},
		{Username: "carol smith", PasswordHash: "argon2id$00$11", Email: "c@x.com", CreatedAt: "1999-12-31 00:00:00"},
		{},
	}
	for _, a := range accounts {
		assert.Equal(t, a, Deserialize(Serialize(a)))
	}
}

func TestDeserialize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Account
	}{
		{
			name: "trims every field",
			line: " dave ,\t1505 , d@x.com ,2024-01-01 10:00:00\r\n",
			want: Account{Username: "dave", PasswordHash: "1505", Email: "d@x.com", CreatedAt: "2024-01-01 10:00:00"},
		},
		{
			name: "missing trailing fields are empty",
			line: "eve,1505",
			want: Account{Username: "eve", PasswordHash: "1505"},
		},
		{
			name: "username only",
			line: "frank",
			want: Account{Username: "frank"},
		},
		{
			name: "extra fields ignored",
			line: "gina,1505,g@x.com,2024-01-01 10:00:00,junk,more",
			want: Account{Username: "gina", PasswordHash: "1505", Email: "g@x.com", CreatedAt: "2024-01-01 10:00:00"},
		},
		{
			name: "empty line",
			line: "",
			want: Account{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Deserialize(tc.line))
		})
	}
}

func TestDeserialize_EmbeddedSeparatorCorrupts(t *testing.T) {
	a := Account{Username: "h,i", PasswordHash: "1505", Email: "h@x.com", CreatedAt: "2024-01-01 10:00:00"}
	assert.NotEqual(t, a, Deserialize(Serialize(a)))
}

func TestAccount_Summary(t *testing.T) {
	a := Account{Username: "ivan", PasswordHash: "secret-digest", Email: "i@x.com", CreatedAt: "2024-01-01 10:00:00"}
	assert.Equal(t, AccountSummary{Username: "ivan", Email: "i@x.com", CreatedAt: "2024-01-01 10:00:00"}, a.Summary())
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{" \t\r\n", true},
		{"\v", false},
		{"\f", false},
		{"\u00a0", false},
		{" a ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBlank(tt.line), "%q", tt.line)
	}
}
