package poseidonsponge

import "fmt"

// ErrorCode represents a poseidon-sponge error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrNoParameters indicates no parameter table is registered for the
	// requested rate and schedule
	ErrNoParameters

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput
)

// HashError represents a poseidon-sponge error
type HashError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *HashError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("poseidon-sponge error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("poseidon-sponge error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *HashError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *HashError) Is(target error) bool {
	t, ok := target.(*HashError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
