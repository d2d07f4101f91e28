package compose

import "errors"

// Every operation reports failures with one of these sentinels; callers
// match them with errors.Is. No operation panics on user input.
var (
	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("compose: division by zero")
	// ErrNotDivisible indicates an exact division whose remainder is nonzero.
	ErrNotDivisible = errors.New("compose: not divisible")
	// ErrNoInverse indicates an inverse requested for zero or a non-unit.
	ErrNoInverse = errors.New("compose: no inverse")
	// ErrInvalidHalfInteger indicates coordinates outside the order,
	// e.g. mixed-parity halves for a Hurwitz quaternion.
	ErrInvalidHalfInteger = errors.New("compose: invalid half-integer coordinates")
	// ErrOverflow indicates a result that does not fit the int32 lanes.
	ErrOverflow = errors.New("compose: overflow")
)
