package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// registration holds the fields that end up in the accounts file verbatim.
// A comma would split the record, so it is rejected here.
type registration struct {
	Username string `validate:"required,excludesall=0x2C"`
	Email    string `validate:"required,excludesall=0x2C"`
}

func validateRegistration(username, email string) error {
	err := validate.Struct(registration{Username: username, Email: email})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" must not be empty")
		case "excludesall":
			msgs = append(msgs, field+" must not contain a comma")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}
