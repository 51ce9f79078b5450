package execctx

import "errors"

// Errors returned by context validation.
var (
	ErrMissingViews     = errors.New("execution context missing view provider")
	ErrMissingClipboard = errors.New("execution context missing clipboard")
	ErrMissingKill      = errors.New("execution context missing kill accrual tracker")
)
