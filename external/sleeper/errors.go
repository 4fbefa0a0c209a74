package sleeper

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

var (
	ErrTransport    = usecase.ErrTransport
	ErrInvalidInput = usecase.ErrInvalidInput
	// ErrUnavailable is returned without a request when the circuit breaker is open.
	ErrUnavailable = usecase.ErrDependencyUnavailable
)

// TransportError describes a request that did not produce a usable body.
// StatusCode is zero when no response was received.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("sleeper %s %s: status=%d body=%s: %v", e.Method, e.URL, e.StatusCode, e.Body, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("sleeper %s %s: status=%d body=%s", e.Method, e.URL, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("sleeper %s %s: %v", e.Method, e.URL, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// NotFound reports whether the upstream answered 404.
func (e *TransportError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
