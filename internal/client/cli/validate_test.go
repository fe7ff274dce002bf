package cli

import (
	"testing"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	require.NoError(t, validateRegistration("alice", "a@x.com"))
	require.NoError(t, validateRegistration("alice smith", "not-an-email"))

	err := validateRegistration("", "")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "username must not be empty; email must not be empty", trimValidationPrefix(err))

	err = validateRegistration("a,b", "a@x.com")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "username must not contain a comma")
}
