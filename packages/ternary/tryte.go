package ternary

import (
	"github.com/cockroachdb/errors"
)

const (
	// MinTryteValue is the smallest value a single Tryte can hold.
	MinTryteValue = -13
	// MaxTryteValue is the biggest value a single Tryte can hold.
	MaxTryteValue = 13

	// TryteAlphabet contains the 27 tryte symbols ordered by their unbalanced index.
	TryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// ZeroTryteChar is the symbol of the zero valued Tryte that is used for padding.
	ZeroTryteChar = '9'

	// TritsPerTryte is the amount of balanced trits that make up a Tryte.
	TritsPerTryte = 3
)

// region Tryte ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Tryte is a single ternary symbol holding a value in [MinTryteValue, MaxTryteValue]. Only Trytes returned by
// TryteFromValue, TryteFromChar or TryteFromTrits (or ZeroTryte) are valid; Char and String panic for other values.
type Tryte int8

// ZeroTryte is the Tryte with value 0 (represented as '9').
const ZeroTryte Tryte = 0

// tryteCharsByValue maps value+13 to the canonical symbol.
var tryteCharsByValue = [27]byte{
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
}

// tryteValuesByChar maps every canonical symbol to its balanced value.
var tryteValuesByChar = map[byte]Tryte{
	'9': 0,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8, 'I': 9, 'J': 10, 'K': 11, 'L': 12, 'M': 13,
	'N': -13, 'O': -12, 'P': -11, 'Q': -10, 'R': -9, 'S': -8, 'T': -7, 'U': -6, 'V': -5, 'W': -4, 'X': -3, 'Y': -2,
	'Z': -1,
}

// TryteFromValue returns the Tryte with the given value.
func TryteFromValue(value int) (tryte Tryte, err error) {
	if value < MinTryteValue || value > MaxTryteValue {
		err = errors.Errorf("%d is not within [%d, %d]: %w", value, MinTryteValue, MaxTryteValue, ErrValueOutOfRange)
		return
	}

	return Tryte(value), nil
}

// TryteFromChar returns the Tryte that is represented by the given symbol.
func TryteFromChar(char byte) (tryte Tryte, err error) {
	tryte, exists := tryteValuesByChar[char]
	if !exists {
		err = errors.Errorf("symbol %q is not part of the tryte alphabet: %w", char, ErrInvalidSymbol)
		return
	}

	return tryte, nil
}

// MustTryteFromChar works like TryteFromChar but panics if the symbol is invalid.
func MustTryteFromChar(char byte) Tryte {
	tryte, err := TryteFromChar(char)
	if err != nil {
		panic(err)
	}

	return tryte
}

// IsValid returns true if the value of the Tryte is within [MinTryteValue, MaxTryteValue].
func (t Tryte) IsValid() bool {
	return t >= MinTryteValue && t <= MaxTryteValue
}

// Value returns the balanced value of the Tryte.
func (t Tryte) Value() int8 {
	return int8(t)
}

// Char returns the canonical symbol of the Tryte.
func (t Tryte) Char() byte {
	return tryteCharsByValue[int(t)-MinTryteValue]
}

// Index returns the position of the Tryte in the TryteAlphabet (its unbalanced value in [0, 26]).
func (t Tryte) Index() int {
	if t < 0 {
		return int(t) + len(TryteAlphabet)
	}

	return int(t)
}

// Trits returns the balanced trits of the Tryte, least significant trit first.
func (t Tryte) Trits() Trits {
	trits := make(Trits, TritsPerTryte)

	value := int(t)
	for i := 0; i < TritsPerTryte; i++ {
		remainder := value % 3
		value /= 3

		switch remainder {
		case 2:
			remainder = -1
			value++
		case -2:
			remainder = 1
			value--
		}

		trits[i] = int8(remainder)
	}

	return trits
}

// String returns a human-readable version of the Tryte.
func (t Tryte) String() string {
	return string(t.Char())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Trits ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Trits is a sequence of balanced ternary digits (-1, 0 or 1).
type Trits []int8

// TryteFromTrits returns the Tryte that is made up by the given (least significant first) trits.
func TryteFromTrits(trits Trits) (tryte Tryte, err error) {
	if len(trits) != TritsPerTryte {
		err = errors.Errorf("expected %d trits but got %d: %w", TritsPerTryte, len(trits), ErrInvalidTrit)
		return
	}

	value := 0
	for i := TritsPerTryte - 1; i >= 0; i-- {
		if trits[i] < -1 || trits[i] > 1 {
			err = errors.Errorf("trit %d at position %d: %w", trits[i], i, ErrInvalidTrit)
			return
		}

		value = value*3 + int(trits[i])
	}

	return Tryte(value), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
