package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrUnknownClearField is returned when a `clear` list names a field that
	// does not exist on the target record or cannot be cleared.
	ErrUnknownClearField = errors.New("field cannot be cleared")
	ErrDuplicateClear    = errors.New("field is listed in clear more than once")
)
