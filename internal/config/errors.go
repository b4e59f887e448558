package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequiredConfig is returned when a value the server cannot
	// start without is absent from every configuration source.
	ErrMissingRequiredConfig = errors.New("missing required configuration")

	// ErrSameCookieNames is returned when student and agency sessions would
	// share one cookie.
	ErrSameCookieNames = errors.New("student and agency cookie names must differ")
)

func missingConfigError(names []string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, strings.Join(names, ", "))
}
