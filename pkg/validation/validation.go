// Package validation provides common validation utilities and the typed
// invalid-input error used across the calculation packages.
package validation

import (
	"errors"
	"fmt"

	"github.com/canamort/mortgage-schedule/pkg/constants"
)

// InvalidInputError indicates a caller-supplied parameter that the
// calculation cannot proceed with. It is returned synchronously before any
// partial computation happens.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// InvalidInput constructs an InvalidInputError with a formatted message.
func InvalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV,
		constants.OutputFormatReport, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, %s, or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV,
		constants.OutputFormatReport, constants.OutputFormatJSON, format)
}
