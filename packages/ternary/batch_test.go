package ternary

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EasonC13/iota.go/packages/workerpool"
)

func TestEncodeAllDecodeAll(t *testing.T) {
	pool, err := workerpool.New(4)
	require.NoError(t, err)
	defer pool.Release()

	payloads := make([][]byte, 50)
	for i := range payloads {
		payloads[i] = []byte(fmt.Sprintf("message #%d", i))
	}

	tryteStrings, err := EncodeAll(pool, payloads)
	require.NoError(t, err)
	require.Len(t, tryteStrings, len(payloads))
	for i, tryteString := range tryteStrings {
		assert.Equal(t, TryteStringFromBytes(payloads[i]).String(), tryteString.String())
	}

	decoded, err := DecodeAll(pool, tryteStrings, DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, payloads, decoded)
}

func TestDecodeAll_Strict(t *testing.T) {
	pool, err := workerpool.New(2)
	require.NoError(t, err)
	defer pool.Release()

	tryteStrings := []*TryteString{
		MustTryteStringFromString("RBTC"),
		MustTryteStringFromString("RBT"),
		MustTryteStringFromString("ZJ"),
	}

	_, err = DecodeAll(pool, tryteStrings, DecodeStrict)
	assert.True(t, errors.Is(err, ErrOddLength))
	assert.Contains(t, err.Error(), "TryteString 1")

	decoded, err := DecodeAll(pool, tryteStrings, DecodeLenient)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("He"), []byte("H?"), []byte("?")}, decoded)
}
