package ternary

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryteStringFromString(t *testing.T) {
	trytes, err := TryteStringFromString("RBTC9D9DCDQAEASBYBCCKBFA")
	require.NoError(t, err)

	assert.Equal(t, 24, trytes.Len())
	assert.Equal(t, "RBTC9D9DCDQAEASBYBCCKBFA", trytes.String())
	assert.Equal(t, MustTryteFromChar('R'), trytes.At(0))
	assert.False(t, trytes.IsEmpty())

	empty, err := TryteStringFromString("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestTryteStringFromString_InvalidSymbol(t *testing.T) {
	_, err := TryteStringFromString("ABCdEF")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSymbol))
	assert.Contains(t, err.Error(), "position 3")

	_, err = TryteStringFromString("ABC DEF")
	assert.True(t, errors.Is(err, ErrInvalidSymbol))

	assert.Panics(t, func() {
		MustTryteStringFromString("HELLO WORLD")
	})
}

func TestTryteStringFromTrytes(t *testing.T) {
	trytes, err := TryteStringFromTrytes(MustTryteFromChar('R'), MustTryteFromChar('B'), ZeroTryte)
	require.NoError(t, err)
	assert.Equal(t, "RB9", trytes.String())

	for _, invalid := range []Tryte{Tryte(20), Tryte(-14), Tryte(MaxTryteValue + 1)} {
		assert.False(t, invalid.IsValid())

		_, err = TryteStringFromTrytes(ZeroTryte, invalid)
		assert.True(t, errors.Is(err, ErrValueOutOfRange))
		assert.Contains(t, err.Error(), "position 1")
	}

	for value := MinTryteValue; value <= MaxTryteValue; value++ {
		assert.True(t, Tryte(value).IsValid())
	}
}

func TestTryteString_Padding(t *testing.T) {
	trytes, err := TryteStringFromString(
		"ZJVYUGTDRPDYFGFXMKOTV9ZWSGFK9CFPXTITQL"+
			"QNLPPG9YNAARMKNKYQO9GSCSBIOTGMLJUFLZWSY",
		81,
	)
	require.NoError(t, err)

	assert.Equal(t,
		"ZJVYUGTDRPDYFGFXMKOTV9ZWSGFK9CFPXTITQLQN"+
			"LPPG9YNAARMKNKYQO9GSCSBIOTGMLJUFLZWSY9999",
		trytes.String(),
	)
	assert.Equal(t, 81, trytes.Len())

	// padding is a floor, not a cap
	assert.Equal(t, 81, trytes.Pad(10).Len())
	assert.Equal(t, 81, trytes.Pad(81).Len())

	short := MustTryteStringFromString("ABC", 2)
	assert.Equal(t, "ABC", short.String())

	assert.Equal(t, "ABC99", short.Pad(5).String())
	assert.Equal(t, "ABC99", short.Pad(5).String())
}

func TestTryteString_Equals(t *testing.T) {
	trytes1 := MustTryteStringFromString("RBTC9D9DCDQAEASBYBCCKBFA")
	trytes2 := MustTryteStringFromString("RBTC9D9DCDQAEASBYBCCKBFA")
	trytes3 := MustTryteStringFromString("CCPCBDVC9DTCEAKDXC9D9DEARCWCPCBDVCTCEAHDWCTCEAKDCDFD9DSCSA")

	equal, err := trytes1.Equals(trytes2)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = trytes1.Equals(trytes3)
	require.NoError(t, err)
	assert.False(t, equal)

	// padded strings only equal their padded counterparts
	equal, err = MustTryteStringFromString("ABC").Equals(MustTryteStringFromString("ABC9"))
	require.NoError(t, err)
	assert.False(t, equal)

	assert.Same(t, trytes1, trytes1)
	assert.NotSame(t, trytes1, trytes2)
	assert.NotSame(t, trytes1, trytes3)
}

type tryteSlice []Tryte

func (t tryteSlice) Trytes() []Tryte {
	return t
}

func TestTryteString_EqualsTryteSequence(t *testing.T) {
	trytes := MustTryteStringFromString("ABZ9")

	equal, err := trytes.Equals(tryteSlice{1, 2, -1, 0})
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = trytes.Equals(tryteSlice{1, 2, -1})
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestTryteString_EqualsWrongType(t *testing.T) {
	trytes := MustTryteStringFromString("RBTC9D9DCDQAEASBYBCCKBFA")

	for _, other := range []interface{}{
		[]byte("RBTC9D9DCDQAEASBYBCCKBFA"),
		bytes.NewBufferString("RBTC9D9DCDQAEASBYBCCKBFA"),
		"RBTC9D9DCDQAEASBYBCCKBFA",
		nil,
		(*TryteString)(nil),
	} {
		_, err := trytes.Equals(other)
		assert.True(t, errors.Is(err, ErrIncomparable), "%T", other)
	}
}

func TestTryteString_Immutability(t *testing.T) {
	source := []Tryte{1, 2, 3}
	trytes := NewTryteString(source...)
	source[0] = 0

	assert.Equal(t, "ABC", trytes.String())

	copied := trytes.Trytes()
	copied[0] = 0
	assert.Equal(t, "ABC", trytes.String())

	clone := trytes.Clone().Pad(5)
	assert.Equal(t, "ABC", trytes.String())
	assert.Equal(t, "ABC99", clone.String())
}

func TestTryteString_Trits(t *testing.T) {
	assert.Equal(t, Trits{1, 0, 0, -1, -1, -1, 0, 0, 0}, MustTryteStringFromString("AN9").Trits())
}

func TestTryteString_JSON(t *testing.T) {
	type request struct {
		Trytes []*TryteString `json:"trytes"`
	}

	marshaled, err := json.Marshal(request{Trytes: []*TryteString{MustTryteStringFromString("RBTC9D")}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"trytes":["RBTC9D"]}`, string(marshaled))

	var restored request
	require.NoError(t, json.Unmarshal(marshaled, &restored))
	require.Len(t, restored.Trytes, 1)
	assert.Equal(t, "RBTC9D", restored.Trytes[0].String())

	err = json.Unmarshal([]byte(`{"trytes":["rbtc"]}`), &restored)
	assert.True(t, errors.Is(err, ErrInvalidSymbol))
}
