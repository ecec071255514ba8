package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAccountName reports whether a string is a well-formed ledger
// account name: 1 to 12 characters drawn from a-z, 1-5 and dots, with no
// leading or trailing dot.
func IsValidAccountName(name string) bool {
	if len(name) == 0 || len(name) > 12 {
		return false
	}
	if name[0] == '.' || name[len(name)-1] == '.' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '1' && c <= '5':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
