package domain

import "strconv"

// InputValue is the signed integer entered by the user. It is read once per
// invocation and never changes afterwards.
type InputValue int

// String formats the value in base 10.
func (v InputValue) String() string { return strconv.Itoa(int(v)) }

// Positive reports whether the value is a natural number (> 0).
func (v InputValue) Positive() bool { return v > 0 }

// Parity tells whether an integer is evenly divisible by 2.
type Parity string

const (
	// ParityEven marks integers with a zero remainder modulo 2.
	ParityEven Parity = "even"
	// ParityOdd marks integers with a non-zero remainder modulo 2 (1 or -1).
	ParityOdd Parity = "odd"
)

// ParityOf classifies v. Go's remainder truncates toward zero, so negative odd
// values yield -1 and negative even values yield 0.
func ParityOf(v InputValue) Parity {
	if v%2 == 0 {
		return ParityEven
	}

	return ParityOdd
}
