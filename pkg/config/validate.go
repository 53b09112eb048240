package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/marmos91/binhex/pkg/binhex"
)

// Validate checks cfg against its struct tags and returns a single error
// listing every failing field.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("hqxname", validateFileName); err != nil {
		return err
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed '%s' validation (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// validateFileName accepts names the header can carry: at most
// binhex.MaxNameLength bytes and no NUL.
func validateFileName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return len(name) <= binhex.MaxNameLength && !strings.ContainsRune(name, 0)
}
