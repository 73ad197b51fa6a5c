package main

import (
	"context"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"

	"github.com/EasonC13/iota.go/client"
	"github.com/EasonC13/iota.go/packages/ternary"
	"github.com/EasonC13/iota.go/packages/workerpool"
)

// errAborted is returned if the user declines to send the trytes.
var errAborted = errors.New("aborted by user")

// confirmFunc asks the user whether to continue.
type confirmFunc func(message string) (bool, error)

func surveyConfirm(message string) (confirmed bool, err error) {
	if err = survey.AskOne(&survey.Confirm{Message: message}, &confirmed); err != nil {
		return false, errors.Wrap(err, "failed to ask for confirmation")
	}

	return confirmed, nil
}

type sendDependencies struct {
	config *viper.Viper
	api    *client.IotaAPI
	pool   *workerpool.WorkerPool
	log    *logger.Logger
}

func runSend(ctx context.Context, out io.Writer, deps sendDependencies, args []string, confirm confirmFunc) error {
	if len(args) == 0 {
		return errors.New("nothing to send")
	}

	trytes, err := sendPayload(deps, args)
	if err != nil {
		return err
	}

	if !deps.config.GetBool(CfgSendYes) {
		confirmed, confirmErr := confirm(fmt.Sprintf("Send %d transaction(s) to %s?", len(trytes), deps.config.GetString(CfgNodeURL)))
		if confirmErr != nil {
			return confirmErr
		}
		if !confirmed {
			return errAborted
		}
	}

	attached, err := deps.api.SendTrytes(ctx, deps.config.GetInt(CfgSendDepth), deps.config.GetInt(CfgSendMinWeightMagnitude), trytes)
	if err != nil {
		return err
	}

	deps.log.Infow("transactions attached", "count", len(attached))
	for _, tryteString := range attached {
		if _, err = fmt.Fprintln(out, tryteString); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func sendPayload(deps sendDependencies, args []string) ([]*ternary.TryteString, error) {
	if deps.config.GetBool(CfgSendRaw) {
		return parseTryteStrings(args)
	}

	payloads := make([][]byte, len(args))
	for i, arg := range args {
		payloads[i] = []byte(arg)
	}

	return ternary.EncodeAll(deps.pool, payloads)
}
