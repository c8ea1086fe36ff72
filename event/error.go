package event

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNil Event arg is nil
	ErrEventNil = errors.New("event is nil")

	// ErrStageEmpty Event has no stage
	ErrStageEmpty = errors.New("event stage is empty")

	// ErrListenerNil Listener arg is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrListenerIncomparable Listener is not a comparable type
	ErrListenerIncomparable = errors.New("listener is incomparable")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)

// ErrListener no listener is registered for the stage.
type ErrListener struct {
	Stage Stage
}

func (e ErrListener) Error() string {
	return fmt.Sprintf("no listener for stage %q", e.Stage)
}
