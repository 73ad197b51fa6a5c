package client

import (
	"context"

	"github.com/EasonC13/iota.go/packages/jsonmodels"
	"github.com/EasonC13/iota.go/packages/ternary"
)

// GetTransactionsToApprove asks the node for a trunk and a branch transaction that new transactions can be attached
// to. The depth controls how many milestones the node walks back for the tip selection.
func (api *IotaAPI) GetTransactionsToApprove(ctx context.Context, depth int) (*jsonmodels.GetTransactionsToApproveResponse, error) {
	res := &jsonmodels.GetTransactionsToApproveResponse{}
	if err := api.do(ctx, jsonmodels.CommandGetTransactionsToApprove, &jsonmodels.GetTransactionsToApproveRequest{
		Command: jsonmodels.Command{Command: jsonmodels.CommandGetTransactionsToApprove},
		Depth:   depth,
	}, res); err != nil {
		return nil, err
	}

	return res, nil
}

// AttachToTangle lets the node do the proof-of-work for the given transaction trytes and returns the attached trytes.
func (api *IotaAPI) AttachToTangle(ctx context.Context, trunkTransaction, branchTransaction *ternary.TryteString, minWeightMagnitude int, trytes []*ternary.TryteString) ([]*ternary.TryteString, error) {
	res := &jsonmodels.AttachToTangleResponse{}
	if err := api.do(ctx, jsonmodels.CommandAttachToTangle, &jsonmodels.AttachToTangleRequest{
		Command:            jsonmodels.Command{Command: jsonmodels.CommandAttachToTangle},
		TrunkTransaction:   trunkTransaction,
		BranchTransaction:  branchTransaction,
		MinWeightMagnitude: minWeightMagnitude,
		Trytes:             trytes,
	}, res); err != nil {
		return nil, err
	}

	return res.Trytes, nil
}

// BroadcastTransactions sends the given attached transaction trytes to the neighbors of the node.
func (api *IotaAPI) BroadcastTransactions(ctx context.Context, trytes []*ternary.TryteString) error {
	return api.do(ctx, jsonmodels.CommandBroadcastTransactions, &jsonmodels.BroadcastTransactionsRequest{
		Command: jsonmodels.Command{Command: jsonmodels.CommandBroadcastTransactions},
		Trytes:  trytes,
	}, &jsonmodels.BroadcastTransactionsResponse{})
}

// StoreTransactions makes the node persist the given attached transaction trytes.
func (api *IotaAPI) StoreTransactions(ctx context.Context, trytes []*ternary.TryteString) error {
	return api.do(ctx, jsonmodels.CommandStoreTransactions, &jsonmodels.StoreTransactionsRequest{
		Command: jsonmodels.Command{Command: jsonmodels.CommandStoreTransactions},
		Trytes:  trytes,
	}, &jsonmodels.StoreTransactionsResponse{})
}
