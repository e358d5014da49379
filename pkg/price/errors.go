package price

import "errors"

// ErrNoPrice is returned when no qualifying price candidate is found.
// Callers should treat it as recoverable and fall back to manual entry.
var ErrNoPrice = errors.New("no price detected")

// ErrInvalidInput is returned for manually typed text that does not parse
// to a positive amount.
var ErrInvalidInput = errors.New("invalid price input")
