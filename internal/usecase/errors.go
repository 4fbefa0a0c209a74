package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
	ErrTransport             = crerr.New("sleeper transport failure")
	ErrHistoryCycle          = crerr.New("league history does not terminate")
)
