package record

import "errors"

var (
	ErrMissingID       = errors.New("missing id")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownTier     = errors.New("unknown tier")
	ErrUnknownStatus   = errors.New("unknown status")
	ErrUnknownPriority = errors.New("unknown priority")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrSubCentAmount   = errors.New("amount has more than two decimal places")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrZeroDate        = errors.New("date is required")
	ErrInvalidClock    = errors.New("invalid time of day")
	ErrEmptyName       = errors.New("empty name")
)
