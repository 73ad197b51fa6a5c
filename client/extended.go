package client

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/EasonC13/iota.go/packages/ternary"
)

const (
	// CommandBroadcastAndStore is the name of the extended command that broadcasts and stores transactions.
	CommandBroadcastAndStore = "broadcastAndStore"
	// CommandSendTrytes is the name of the extended command that attaches, broadcasts and stores transactions.
	CommandSendTrytes = "sendTrytes"
)

// BroadcastAndStore broadcasts the given attached transaction trytes and stores them afterwards.
func (api *IotaAPI) BroadcastAndStore(ctx context.Context, trytes []*ternary.TryteString) error {
	if err := validateTrytes(trytes); err != nil {
		return errors.Wrapf(err, "%s failed", CommandBroadcastAndStore)
	}

	if err := api.BroadcastTransactions(ctx, trytes); err != nil {
		return errors.Wrapf(err, "%s failed", CommandBroadcastAndStore)
	}

	if err := api.StoreTransactions(ctx, trytes); err != nil {
		return errors.Wrapf(err, "%s failed", CommandBroadcastAndStore)
	}

	return nil
}

// SendTrytes attaches the given transaction trytes to the Tangle and broadcasts and stores the result. The steps are
// executed one after another and the first failing step aborts the whole command. Nothing is retried.
func (api *IotaAPI) SendTrytes(ctx context.Context, depth int, minWeightMagnitude int, trytes []*ternary.TryteString) (attachedTrytes []*ternary.TryteString, err error) {
	if err = validateTrytes(trytes); err != nil {
		return nil, errors.Wrapf(err, "%s failed", CommandSendTrytes)
	}

	tips, err := api.GetTransactionsToApprove(ctx, depth)
	if err != nil {
		return nil, errors.Wrapf(err, "%s failed to select tips", CommandSendTrytes)
	}

	api.log.Debugw("selected tips", "trunk", tips.TrunkTransaction, "branch", tips.BranchTransaction)

	if attachedTrytes, err = api.AttachToTangle(ctx, tips.TrunkTransaction, tips.BranchTransaction, minWeightMagnitude, trytes); err != nil {
		return nil, errors.Wrapf(err, "%s failed to attach trytes", CommandSendTrytes)
	}

	if err = api.BroadcastAndStore(ctx, attachedTrytes); err != nil {
		return nil, errors.Wrapf(err, "%s failed to publish attached trytes", CommandSendTrytes)
	}

	api.log.Infow("sent trytes", "transactions", len(attachedTrytes))

	return attachedTrytes, nil
}

func validateTrytes(trytes []*ternary.TryteString) error {
	if len(trytes) == 0 {
		return errors.Errorf("trytes must not be empty: %w", ErrInvalidRequest)
	}

	for i, tryteString := range trytes {
		if tryteString == nil || tryteString.IsEmpty() {
			return errors.Errorf("trytes[%d] must not be empty: %w", i, ErrInvalidRequest)
		}
	}

	return nil
}
