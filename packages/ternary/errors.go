package ternary

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidSymbol is returned if a character outside of the tryte alphabet is used to construct a Tryte.
	ErrInvalidSymbol = errors.New("invalid tryte symbol")
	// ErrValueOutOfRange is returned if a Tryte is constructed from a value outside of [-13, 13].
	ErrValueOutOfRange = errors.New("tryte value out of range")
	// ErrInvalidTrit is returned if a trit is not one of -1, 0 or 1.
	ErrInvalidTrit = errors.New("invalid trit")
	// ErrIncomparable is returned if a TryteString is compared to something that is not a TryteSequence.
	ErrIncomparable = errors.New("incomparable types")
	// ErrOddLength is returned by strict decoding if a TryteString has a dangling tryte.
	ErrOddLength = errors.New("odd number of trytes")
	// ErrUndecodablePair is returned by strict decoding if a pair of trytes does not map to a byte.
	ErrUndecodablePair = errors.New("tryte pair does not encode a byte")
)
