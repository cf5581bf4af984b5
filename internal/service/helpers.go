package service

import (
	"fmt"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// formatValidationErrors folds a list of validation errors into one error
// wrapping domain.ErrInvalidInput.
func formatValidationErrors(what string, errs []error) error {
	msg := fmt.Sprintf("%s validation failed (%d errors):", what, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrInvalidInput)
}
