package jsonmodels

import (
	"github.com/EasonC13/iota.go/packages/ternary"
)

const (
	// APIVersionHeader is the header that tells the node which version of the command API is used.
	APIVersionHeader = "X-IOTA-API-Version"
	// APIVersion is the only version of the command API that is supported.
	APIVersion = "1"
)

// Names of the node API commands.
const (
	CommandGetTransactionsToApprove = "getTransactionsToApprove"
	CommandAttachToTangle           = "attachToTangle"
	CommandBroadcastTransactions    = "broadcastTransactions"
	CommandStoreTransactions        = "storeTransactions"
)

// region Command //////////////////////////////////////////////////////////////////////////////////////////////////////

// Command is the part that every request to the node API shares.
type Command struct {
	Command string `json:"command"`
}

// ErrorResponse is the response that is returned by the node if a command fails.
type ErrorResponse struct {
	Error     string `json:"error,omitempty"`
	Exception string `json:"exception,omitempty"`
}

// Message returns the human-readable error of the response.
func (e *ErrorResponse) Message() string {
	if e.Error != "" {
		return e.Error
	}

	return e.Exception
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region GetTransactionsToApprove /////////////////////////////////////////////////////////////////////////////////////

// GetTransactionsToApproveRequest requests two tips to attach new transactions to.
type GetTransactionsToApproveRequest struct {
	Command
	Depth     int                  `json:"depth"`
	Reference *ternary.TryteString `json:"reference,omitempty"`
}

// GetTransactionsToApproveResponse contains the selected trunk and branch transactions.
type GetTransactionsToApproveResponse struct {
	TrunkTransaction  *ternary.TryteString `json:"trunkTransaction"`
	BranchTransaction *ternary.TryteString `json:"branchTransaction"`
	Duration          int64                `json:"duration"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AttachToTangle ///////////////////////////////////////////////////////////////////////////////////////////////

// AttachToTangleRequest asks the node to do the proof-of-work for the given transaction trytes.
type AttachToTangleRequest struct {
	Command
	TrunkTransaction   *ternary.TryteString   `json:"trunkTransaction"`
	BranchTransaction  *ternary.TryteString   `json:"branchTransaction"`
	MinWeightMagnitude int                    `json:"minWeightMagnitude"`
	Trytes             []*ternary.TryteString `json:"trytes"`
}

// AttachToTangleResponse contains the attached transaction trytes.
type AttachToTangleResponse struct {
	Trytes   []*ternary.TryteString `json:"trytes"`
	Duration int64                  `json:"duration"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BroadcastTransactions ////////////////////////////////////////////////////////////////////////////////////////

// BroadcastTransactionsRequest asks the node to send the given transaction trytes to its neighbors.
type BroadcastTransactionsRequest struct {
	Command
	Trytes []*ternary.TryteString `json:"trytes"`
}

// BroadcastTransactionsResponse is the (empty) response of a broadcastTransactions command.
type BroadcastTransactionsResponse struct {
	Duration int64 `json:"duration"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region StoreTransactions ////////////////////////////////////////////////////////////////////////////////////////////

// StoreTransactionsRequest asks the node to persist the given transaction trytes.
type StoreTransactionsRequest struct {
	Command
	Trytes []*ternary.TryteString `json:"trytes"`
}

// StoreTransactionsResponse is the (empty) response of a storeTransactions command.
type StoreTransactionsResponse struct {
	Duration int64 `json:"duration"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
