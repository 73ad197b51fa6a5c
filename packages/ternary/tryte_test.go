package ternary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/magiconair/properties/assert"
	"github.com/stretchr/testify/require"
)

func TestTryteFromValue(t *testing.T) {
	for value := MinTryteValue; value <= MaxTryteValue; value++ {
		tryte, err := TryteFromValue(value)
		require.NoError(t, err)

		assert.Equal(t, int(tryte.Value()), value)

		restored, err := TryteFromChar(tryte.Char())
		require.NoError(t, err)
		assert.Equal(t, restored, tryte)
	}

	for _, value := range []int{-14, 14, 27, -128} {
		_, err := TryteFromValue(value)
		assert.Equal(t, errors.Is(err, ErrValueOutOfRange), true)
	}
}

func TestTryteFromChar(t *testing.T) {
	for index := 0; index < len(TryteAlphabet); index++ {
		tryte, err := TryteFromChar(TryteAlphabet[index])
		require.NoError(t, err)

		assert.Equal(t, tryte.Index(), index)
		assert.Equal(t, tryte.String(), TryteAlphabet[index:index+1])
	}

	assert.Equal(t, MustTryteFromChar('9').Value(), int8(0))
	assert.Equal(t, MustTryteFromChar('A').Value(), int8(1))
	assert.Equal(t, MustTryteFromChar('M').Value(), int8(13))
	assert.Equal(t, MustTryteFromChar('N').Value(), int8(-13))
	assert.Equal(t, MustTryteFromChar('Z').Value(), int8(-1))

	for _, char := range []byte{'a', 'z', '0', '8', ' ', '?', 0xff} {
		_, err := TryteFromChar(char)
		assert.Equal(t, errors.Is(err, ErrInvalidSymbol), true)
	}
}

func TestTryte_Trits(t *testing.T) {
	assert.Equal(t, MustTryteFromChar('9').Trits(), Trits{0, 0, 0})
	assert.Equal(t, MustTryteFromChar('M').Trits(), Trits{1, 1, 1})
	assert.Equal(t, MustTryteFromChar('N').Trits(), Trits{-1, -1, -1})
	assert.Equal(t, MustTryteFromChar('E').Trits(), Trits{-1, -1, 1})

	for value := MinTryteValue; value <= MaxTryteValue; value++ {
		tryte := Tryte(value)

		restored, err := TryteFromTrits(tryte.Trits())
		require.NoError(t, err)
		assert.Equal(t, restored, tryte)
	}

	_, err := TryteFromTrits(Trits{0, 2, 0})
	assert.Equal(t, errors.Is(err, ErrInvalidTrit), true)

	_, err = TryteFromTrits(Trits{0, 1})
	assert.Equal(t, errors.Is(err, ErrInvalidTrit), true)
}
