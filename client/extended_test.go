package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EasonC13/iota.go/packages/jsonmodels"
	"github.com/EasonC13/iota.go/packages/mocknode"
	"github.com/EasonC13/iota.go/packages/ternary"
)

// recordingAdapter answers every command from memory and remembers the order of the calls.
type recordingAdapter struct {
	commands []string
	failAt   string
	attached []*ternary.TryteString
}

func (r *recordingAdapter) Send(_ context.Context, command string, request interface{}, response interface{}) error {
	r.commands = append(r.commands, command)
	if command == r.failAt {
		return errors.Errorf("%w: %s refused", ErrBadRequest, command)
	}

	switch res := response.(type) {
	case *jsonmodels.GetTransactionsToApproveResponse:
		res.TrunkTransaction = ternary.MustTryteStringFromString("T", mocknode.HashLength)
		res.BranchTransaction = ternary.MustTryteStringFromString("B", mocknode.HashLength)
	case *jsonmodels.AttachToTangleResponse:
		res.Trytes = r.attached
	case *jsonmodels.BroadcastTransactionsResponse:
		return r.expectAttached(request.(*jsonmodels.BroadcastTransactionsRequest).Trytes)
	case *jsonmodels.StoreTransactionsResponse:
		return r.expectAttached(request.(*jsonmodels.StoreTransactionsRequest).Trytes)
	}

	return nil
}

func (r *recordingAdapter) expectAttached(trytes []*ternary.TryteString) error {
	if len(trytes) != len(r.attached) || trytes[0] != r.attached[0] {
		return errors.New("received trytes that were not attached")
	}

	return nil
}

func TestIotaAPI_SendTrytes(t *testing.T) {
	trunk := ternary.MustTryteStringFromString("TRUNK", mocknode.HashLength)
	branch := ternary.MustTryteStringFromString("BRANCH", mocknode.HashLength)
	api, node := newTestSetup(t, []mocknode.Option{mocknode.WithTips(trunk, branch)})

	trytes := []*ternary.TryteString{
		ternary.TryteStringFromBytes([]byte("Hello, IOTA!")),
		ternary.MustTryteStringFromString("CCPCBDVC9DTC"),
	}

	attached, err := api.SendTrytes(context.Background(), 3, 14, trytes)
	require.NoError(t, err)
	require.Len(t, attached, 2)
	assert.Equal(t, "RBTC9D9DCDQAEASBYBCCKBFA", attached[0].String())
	assert.Equal(t, []byte("Hello, IOTA!"), attached[0].Bytes())

	attachRequest := node.LastAttachRequest()
	require.NotNil(t, attachRequest)
	assert.Equal(t, trunk.String(), attachRequest.TrunkTransaction.String())
	assert.Equal(t, branch.String(), attachRequest.BranchTransaction.String())
	assert.Equal(t, 14, attachRequest.MinWeightMagnitude)

	assert.EqualValues(t, 1, node.CommandCount(jsonmodels.CommandGetTransactionsToApprove))
	assert.EqualValues(t, 1, node.CommandCount(jsonmodels.CommandAttachToTangle))
	assert.EqualValues(t, 1, node.CommandCount(jsonmodels.CommandBroadcastTransactions))
	assert.EqualValues(t, 1, node.CommandCount(jsonmodels.CommandStoreTransactions))
	assert.EqualValues(t, 2, node.BroadcastedTransactions())
	assert.Len(t, node.StoredTransactions(), 2)
}

func TestIotaAPI_SendTrytesAbortsOnFailure(t *testing.T) {
	api, node := newTestSetup(t, []mocknode.Option{
		mocknode.WithFailure(jsonmodels.CommandAttachToTangle, http.StatusInternalServerError, "proof-of-work failed"),
	})

	_, err := api.SendTrytes(context.Background(), 3, 14, []*ternary.TryteString{ternary.MustTryteStringFromString("RBTC")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternalServerError))
	assert.Contains(t, err.Error(), "proof-of-work failed")
	assert.Contains(t, err.Error(), "failed to attach trytes")

	assert.EqualValues(t, 1, node.CommandCount(jsonmodels.CommandGetTransactionsToApprove))
	assert.EqualValues(t, 0, node.CommandCount(jsonmodels.CommandBroadcastTransactions))
	assert.EqualValues(t, 0, node.CommandCount(jsonmodels.CommandStoreTransactions))
	assert.Empty(t, node.StoredTransactions())
}

func TestIotaAPI_SendTrytesOrder(t *testing.T) {
	attached := []*ternary.TryteString{ternary.MustTryteStringFromString("ATTACHED")}

	for failAt, expectedCommands := range map[string][]string{
		"": {
			jsonmodels.CommandGetTransactionsToApprove,
			jsonmodels.CommandAttachToTangle,
			jsonmodels.CommandBroadcastTransactions,
			jsonmodels.CommandStoreTransactions,
		},
		jsonmodels.CommandGetTransactionsToApprove: {
			jsonmodels.CommandGetTransactionsToApprove,
		},
		jsonmodels.CommandBroadcastTransactions: {
			jsonmodels.CommandGetTransactionsToApprove,
			jsonmodels.CommandAttachToTangle,
			jsonmodels.CommandBroadcastTransactions,
		},
		jsonmodels.CommandStoreTransactions: {
			jsonmodels.CommandGetTransactionsToApprove,
			jsonmodels.CommandAttachToTangle,
			jsonmodels.CommandBroadcastTransactions,
			jsonmodels.CommandStoreTransactions,
		},
	} {
		adapter := &recordingAdapter{failAt: failAt, attached: attached}
		api := NewIotaAPI("", WithAdapter(adapter))

		result, err := api.SendTrytes(context.Background(), 3, 14, []*ternary.TryteString{ternary.MustTryteStringFromString("RAW")})
		if failAt == "" {
			require.NoError(t, err)
			assert.Same(t, attached[0], result[0])
		} else {
			assert.True(t, errors.Is(err, ErrBadRequest), failAt)
			assert.Nil(t, result)
		}

		assert.Equal(t, expectedCommands, adapter.commands, failAt)
	}
}

func TestIotaAPI_SendTrytesInvalidRequest(t *testing.T) {
	adapter := &recordingAdapter{}
	api := NewIotaAPI("", WithAdapter(adapter))

	for _, trytes := range [][]*ternary.TryteString{
		nil,
		{},
		{nil},
		{ternary.MustTryteStringFromString("RBTC"), ternary.NewTryteString()},
	} {
		_, err := api.SendTrytes(context.Background(), 3, 14, trytes)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	}

	assert.Empty(t, adapter.commands)
}

func TestIotaAPI_BroadcastAndStore(t *testing.T) {
	api, node := newTestSetup(t, nil)

	require.NoError(t, api.BroadcastAndStore(context.Background(), []*ternary.TryteString{ternary.MustTryteStringFromString("RBTC")}))
	assert.EqualValues(t, 1, node.BroadcastedTransactions())
	assert.Len(t, node.StoredTransactions(), 1)

	err := api.BroadcastAndStore(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}
