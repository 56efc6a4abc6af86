package port

import (
	"errors"

	"jeju-ads/internal/core/domain"
)

// Errors returned by the use case. The HTTP adapter maps each of them to a
// status code with errors.Is.
var (
	ErrNotFound        = errors.New("advertisement not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("advertisement belongs to another advertiser")
	ErrBudgetExhausted = domain.ErrBudgetExhausted
	ErrBudgetExceeded  = domain.ErrBudgetExceeded
	ErrUploadsDisabled = errors.New("image uploads are not configured")
)
