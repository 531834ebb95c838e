package watersort

import (
	"errors"
	"fmt"
)

// InvalidParametersError signals a malformed geometry request. It is fatal
// to the call that receives it; parameters are never silently clamped.
type InvalidParametersError struct {
	message string
}

// [InvalidParametersError] implements [error]
func (e InvalidParametersError) Error() string {
	return e.message
}

var (
	// ErrIllegalPour rejects a pour that violates the transition rule.
	// The board is left untouched.
	ErrIllegalPour = errors.New("illegal pour")

	// ErrSourceEmpty is an [ErrIllegalPour] with a more specific cause.
	ErrSourceEmpty = fmt.Errorf("%w: source tube is empty", ErrIllegalPour)
)
