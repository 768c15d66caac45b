package service

import "fmt"

// ErrOperationFailed reports that a checkout step could not complete because a system
// behind it failed. The cause is kept for logging and errors.Is/As.
type ErrOperationFailed struct {
	Operation string
	Err       error
}

func (e ErrOperationFailed) Error() string {
	return fmt.Sprintf("operation %s failed: %v", e.Operation, e.Err)
}

func (e ErrOperationFailed) Unwrap() error {
	return e.Err
}

// Is implements the errors.Is interface for ErrOperationFailed
func (e ErrOperationFailed) Is(target error) bool {
	t, ok := target.(ErrOperationFailed)
	if !ok {
		return false
	}
	// An empty target operation matches any failed operation
	if t.Operation == "" {
		return true
	}
	return e.Operation == t.Operation
}
