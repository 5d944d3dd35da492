package fontpicker

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/presenter"
)

// Sentinel errors for common conditions.
var (
	// ErrAlreadyPresented indicates Present was called on a picker that has
	// already been shown. Create a new Picker for each presentation.
	ErrAlreadyPresented = presenter.ErrAlreadyPresented

	// ErrNotInitialized indicates Present was called before Init.
	ErrNotInitialized = errors.New("fontpicker: not initialized")
)

// InfrastructureError is an SDL level failure: the window could not be
// created, a texture could not be rendered and so on. Picker semantics never
// fail; an empty catalog or unknown initial font only changes what is shown.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fontpicker: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fontpicker: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
