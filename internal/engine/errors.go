package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is matched by every *InvalidActionError via errors.Is.
var ErrInvalidAction = errors.New("engine: invalid action")

// InvalidActionError reports an action value outside {1, 2, 3}.
type InvalidActionError struct {
	Action Action
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("engine: invalid action %d: must be 1, 2, or 3", int(e.Action))
}

// Is lets callers test with errors.Is(err, ErrInvalidAction).
func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}
