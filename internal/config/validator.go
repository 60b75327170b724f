package config

import (
	"fmt"
	"time"

	oerrors "github.com/opmodel/genmodule/internal/errors"
)

// layoutProbe is a date whose every layout token formats differently from
// the token itself, so a layout without tokens formats to itself.
var layoutProbe = time.Date(2011, time.November, 13, 17, 48, 39, 0, time.UTC)

// Validate checks that cfg can be used for generation.
func Validate(cfg *Config) error {
	if err := validateLayout("dateFormat.long", cfg.DateFormat.Long); err != nil {
		return err
	}
	return validateLayout("dateFormat.year", cfg.DateFormat.Year)
}

func validateLayout(field, layout string) error {
	if layout == "" {
		return nil
	}
	if layoutProbe.Format(layout) == layout {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s %q contains no date fields", field, layout),
			field,
			"Use a Go time layout such as 2006-01-02 or 2006",
		)
	}
	return nil
}
