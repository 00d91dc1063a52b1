package goal

import "errors"

// Sentinel errors for goal construction and event recording.
var (
	// ErrEmptyName indicates a goal was created without a name.
	ErrEmptyName = errors.New("goal name is required")
	// ErrNegativePoints indicates a goal was given a negative point value.
	ErrNegativePoints = errors.New("points must not be negative")
	// ErrInvalidTarget indicates a checklist target that is not positive.
	ErrInvalidTarget = errors.New("target must be greater than zero")
	// ErrNegativeBonus indicates a checklist bonus below zero.
	ErrNegativeBonus = errors.New("bonus must not be negative")
	// ErrNegativeProgress indicates a restored streak or completion count below zero.
	ErrNegativeProgress = errors.New("progress must not be negative")
	// ErrAlreadyComplete indicates an event was recorded against a finished goal.
	ErrAlreadyComplete = errors.New("goal is already complete")
	// ErrIndexOutOfRange indicates a goal number that does not exist in the store.
	ErrIndexOutOfRange = errors.New("no goal with that number")
	// ErrUnknownKind indicates a goal kind that is not simple, eternal or checklist.
	ErrUnknownKind = errors.New("unknown goal kind")
)

// ValidationError records a rejected goal operation together with the field
// or goal it concerns. It is recoverable: callers report it and carry on.
type ValidationError struct {
	Goal  string
	Field string
	Err   error
}

// Error returns a human-readable string including the goal and field context.
func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Goal != "" {
		return "goal " + e.Goal + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying sentinel for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(goal, field string, err error) error {
	return &ValidationError{Goal: goal, Field: field, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
