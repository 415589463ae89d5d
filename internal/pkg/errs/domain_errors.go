package errs

import "errors"

// Sentinel errors shared across usecase and handler layers
var (
	// Catalog errors
	ErrCatalogUnavailable   = errors.New("studio catalog unavailable")
	ErrCatalogNotConfigured = errors.New("studio catalog source not configured")

	// Conditions errors
	ErrConditionsNotSaved = errors.New("search conditions not saved")
)
