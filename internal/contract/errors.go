package contract

import (
	"errors"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// ErrorCode classifies an error for machine-readable output.
type ErrorCode string

const (
	ErrorNotFound          ErrorCode = "NOT_FOUND"
	ErrorCycleRejected     ErrorCode = "CYCLE_REJECTED"
	ErrorInvalidPercentage ErrorCode = "INVALID_PERCENTAGE"
	ErrorInvalidInput      ErrorCode = "INVALID_INPUT"
	// ErrorStoreUnavailable covers every failure that is not a domain error.
	ErrorStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
)

type ErrorView struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrorNotFound
	case errors.Is(err, domain.ErrCycleRejected):
		return ErrorCycleRejected
	case errors.Is(err, domain.ErrInvalidPercentage):
		return ErrorInvalidPercentage
	case errors.Is(err, domain.ErrInvalidInput):
		return ErrorInvalidInput
	default:
		return ErrorStoreUnavailable
	}
}

func NewErrorView(err error) ErrorView {
	return ErrorView{Code: CodeOf(err), Message: err.Error()}
}
