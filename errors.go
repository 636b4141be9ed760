package sigridpanel

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common panel error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNoProjectModel indicates an operation needed the host project model
	// but the panel was assembled without one.
	ErrNoProjectModel = errors.New("no project model configured")

	// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindStorage represents errors from the cache backend.
	KindStorage = "storage"

	// KindNetwork represents errors related to API requests.
	KindNetwork = "network"

	// KindNavigation represents errors while resolving or opening documents.
	KindNavigation = "navigation"

	// KindInternal represents internal panel errors.
	KindInternal = "internal"
)

// PanelError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of error.
//
// PanelError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type PanelError struct {
	// Op is the operation that failed (e.g., "New", "Panel.OpenFinding").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration, KindStorage).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *PanelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sigridpanel: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("sigridpanel: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("sigridpanel: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *PanelError) Unwrap() error {
	return e.Err
}

// Is implements error matching for PanelError, allowing comparison based on
// the underlying error or the PanelError itself.
func (e *PanelError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*PanelError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new PanelError with the provided context added.
func (e *PanelError) WithContext(ctx map[string]any) *PanelError {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. This is intended for use in defer statements to ensure
// cleanup errors are not silently ignored.
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
