package ternary

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// region TryteSequence ////////////////////////////////////////////////////////////////////////////////////////////////

// TryteSequence is implemented by everything that can be compared to a TryteString.
type TryteSequence interface {
	// Trytes returns the trytes of the sequence in encoding order.
	Trytes() []Tryte
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TryteString //////////////////////////////////////////////////////////////////////////////////////////////////

// TryteString is an ordered sequence of Trytes - the native string representation of the ledger.
//
// A TryteString is read-only after construction except for Pad, which only ever appends. Pad is not synchronized, so
// concurrent calls on the same instance need external locking.
type TryteString struct {
	trytes []Tryte
}

// NewTryteString creates a TryteString that wraps a copy of the given Trytes. The Trytes are not checked, so they
// have to be valid (see Tryte). Use TryteStringFromTrytes for Trytes of unknown origin.
func NewTryteString(trytes ...Tryte) *TryteString {
	return &TryteString{
		trytes: append(make([]Tryte, 0, len(trytes)), trytes...),
	}
}

// TryteStringFromTrytes works like NewTryteString but fails with ErrValueOutOfRange if one of the Trytes is invalid.
func TryteStringFromTrytes(trytes ...Tryte) (tryteString *TryteString, err error) {
	for i, tryte := range trytes {
		if !tryte.IsValid() {
			err = errors.Errorf("tryte %d at position %d is not within [%d, %d]: %w", tryte, i, MinTryteValue, MaxTryteValue, ErrValueOutOfRange)
			return
		}
	}

	return NewTryteString(trytes...), nil
}

// TryteStringFromString parses the canonical text representation of a TryteString. If a padLength is given, the result
// is padded with zero trytes until it has at least that length.
func TryteStringFromString(text string, padLength ...int) (tryteString *TryteString, err error) {
	trytes := make([]Tryte, len(text))
	for i := 0; i < len(text); i++ {
		tryte, exists := tryteValuesByChar[text[i]]
		if !exists {
			err = errors.Errorf("symbol %q at position %d is not part of the tryte alphabet: %w", text[i], i, ErrInvalidSymbol)
			return
		}

		trytes[i] = tryte
	}

	tryteString = &TryteString{trytes: trytes}
	if len(padLength) > 0 {
		tryteString.Pad(padLength[0])
	}

	return tryteString, nil
}

// MustTryteStringFromString works like TryteStringFromString but panics if the text contains invalid symbols.
func MustTryteStringFromString(text string, padLength ...int) *TryteString {
	tryteString, err := TryteStringFromString(text, padLength...)
	if err != nil {
		panic(err)
	}

	return tryteString
}

// Pad appends zero trytes until the TryteString has at least the given length. It never removes trytes and returns
// the TryteString itself to allow chaining.
func (t *TryteString) Pad(length int) *TryteString {
	for len(t.trytes) < length {
		t.trytes = append(t.trytes, ZeroTryte)
	}

	return t
}

// Len returns the amount of Trytes in the TryteString.
func (t *TryteString) Len() int {
	return len(t.trytes)
}

// IsEmpty returns true if the TryteString contains no Trytes.
func (t *TryteString) IsEmpty() bool {
	return len(t.trytes) == 0
}

// At returns the Tryte at the given position.
func (t *TryteString) At(index int) Tryte {
	return t.trytes[index]
}

// Trytes returns a copy of the Trytes of the TryteString.
func (t *TryteString) Trytes() []Tryte {
	return append(make([]Tryte, 0, len(t.trytes)), t.trytes...)
}

// Trits returns the balanced trits of all Trytes, each Tryte least significant trit first.
func (t *TryteString) Trits() Trits {
	trits := make(Trits, 0, len(t.trytes)*TritsPerTryte)
	for _, tryte := range t.trytes {
		trits = append(trits, tryte.Trits()...)
	}

	return trits
}

// Clone returns an independent copy of the TryteString.
func (t *TryteString) Clone() *TryteString {
	return NewTryteString(t.trytes...)
}

// Equals compares the TryteString to another TryteSequence element by element. Comparing it to something that is not
// a TryteSequence (raw bytes, strings, nil) is an error instead of a simple mismatch.
func (t *TryteString) Equals(other interface{}) (equal bool, err error) {
	sequence, isSequence := other.(TryteSequence)
	if !isSequence || isNilSequence(sequence) {
		err = errors.Errorf("cannot compare TryteString with %T: %w", other, ErrIncomparable)
		return
	}

	if otherTryteString, isTryteString := sequence.(*TryteString); isTryteString {
		return equalTrytes(t.trytes, otherTryteString.trytes), nil
	}

	return equalTrytes(t.trytes, sequence.Trytes()), nil
}

// MarshalText returns the canonical text representation of the TryteString.
func (t *TryteString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the canonical text representation into the TryteString.
func (t *TryteString) UnmarshalText(text []byte) error {
	parsed, err := TryteStringFromString(string(text))
	if err != nil {
		return err
	}

	t.trytes = parsed.trytes

	return nil
}

// String returns the canonical text representation of the TryteString.
func (t *TryteString) String() string {
	var builder strings.Builder
	builder.Grow(len(t.trytes))
	for _, tryte := range t.trytes {
		builder.WriteByte(tryte.Char())
	}

	return builder.String()
}

func equalTrytes(a, b []Tryte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func isNilSequence(sequence TryteSequence) bool {
	tryteString, isTryteString := sequence.(*TryteString)

	return isTryteString && tryteString == nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
