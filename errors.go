package lunisolar

import "errors"

// Sentinel errors returned by constructors and conversions. Returned errors
// wrap one of these with detail; test with [errors.Is].
var (
	// ErrOutOfRange reports a date or year outside the supported window.
	ErrOutOfRange = errors.New("lunisolar: out of supported range")

	// ErrInvalidMonth reports a month number outside 1..12, or a leap month
	// the year does not have.
	ErrInvalidMonth = errors.New("lunisolar: invalid month")

	// ErrInvalidDay reports a day number outside 1..30, or past the end of
	// its month.
	ErrInvalidDay = errors.New("lunisolar: invalid day")

	// ErrInvalidYear reports text that does not name a lunisolar year.
	ErrInvalidYear = errors.New("lunisolar: invalid year")

	// ErrInvalidSolarDate reports a month outside January..December or a day
	// past the end of its month.
	ErrInvalidSolarDate = errors.New("lunisolar: invalid solar date")
)
