package ternary

import (
	"github.com/cockroachdb/errors"

	"github.com/EasonC13/iota.go/packages/workerpool"
)

// EncodeAll encodes every payload into a TryteString using the given WorkerPool. The results keep the input order.
func EncodeAll(pool *workerpool.WorkerPool, payloads [][]byte) (tryteStrings []*TryteString, err error) {
	tryteStrings = make([]*TryteString, len(payloads))
	if err = pool.Map(len(payloads), func(index int) {
		tryteStrings[index] = TryteStringFromBytes(payloads[index])
	}); err != nil {
		return nil, errors.Wrap(err, "failed to encode payloads")
	}

	return tryteStrings, nil
}

// DecodeAll decodes every TryteString into bytes using the given WorkerPool and DecodeMode. The results keep the input
// order. If decoding fails for several TryteStrings, the error of the first one (by position) is returned.
func DecodeAll(pool *workerpool.WorkerPool, tryteStrings []*TryteString, mode DecodeMode) (payloads [][]byte, err error) {
	payloads = make([][]byte, len(tryteStrings))
	decodeErrors := make([]error, len(tryteStrings))
	if err = pool.Map(len(tryteStrings), func(index int) {
		payloads[index], decodeErrors[index] = tryteStrings[index].DecodeBytes(mode)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to decode trytes")
	}

	for index, decodeErr := range decodeErrors {
		if decodeErr != nil {
			return nil, errors.Wrapf(decodeErr, "failed to decode TryteString %d", index)
		}
	}

	return payloads, nil
}
