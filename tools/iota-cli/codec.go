package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/EasonC13/iota.go/packages/ternary"
	"github.com/EasonC13/iota.go/packages/workerpool"
)

func runEncode(out io.Writer, pool *workerpool.WorkerPool, args []string) error {
	payloads := make([][]byte, len(args))
	for i, arg := range args {
		payloads[i] = []byte(arg)
	}

	tryteStrings, err := ternary.EncodeAll(pool, payloads)
	if err != nil {
		return err
	}

	for _, tryteString := range tryteStrings {
		if _, err = fmt.Fprintln(out, tryteString); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func runDecode(out io.Writer, pool *workerpool.WorkerPool, args []string, mode ternary.DecodeMode) error {
	tryteStrings, err := parseTryteStrings(args)
	if err != nil {
		return err
	}

	payloads, err := ternary.DecodeAll(pool, tryteStrings, mode)
	if err != nil {
		return err
	}

	for _, payload := range payloads {
		if _, err = fmt.Fprintf(out, "%q\n", payload); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func runPad(out io.Writer, args []string, length int) error {
	for i, arg := range args {
		tryteString, err := ternary.TryteStringFromString(arg, length)
		if err != nil {
			return errors.Wrapf(err, "argument %d", i)
		}

		if _, err = fmt.Fprintln(out, tryteString); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func parseTryteStrings(args []string) ([]*ternary.TryteString, error) {
	tryteStrings := make([]*ternary.TryteString, len(args))
	for i, arg := range args {
		tryteString, err := ternary.TryteStringFromString(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}

		tryteStrings[i] = tryteString
	}

	return tryteStrings, nil
}
