package mocknode

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo"

	"github.com/EasonC13/iota.go/packages/jsonmodels"
	"github.com/EasonC13/iota.go/packages/ternary"
)

// commandRequest is the union of the fields of all supported commands.
type commandRequest struct {
	Command            string                 `json:"command"`
	Depth              int                    `json:"depth"`
	TrunkTransaction   *ternary.TryteString   `json:"trunkTransaction"`
	BranchTransaction  *ternary.TryteString   `json:"branchTransaction"`
	MinWeightMagnitude int                    `json:"minWeightMagnitude"`
	Trytes             []*ternary.TryteString `json:"trytes"`
}

func (n *Node) handleCommand(c echo.Context) error {
	start := time.Now()

	if version := c.Request().Header.Get(APIVersionHeader); version != jsonmodels.APIVersion {
		return badRequest(c, fmt.Sprintf("invalid API version [%s]", version))
	}

	var request commandRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, fmt.Sprintf("invalid request: %s", err))
	}

	counter, supported := n.counters[request.Command]
	if !supported {
		return badRequest(c, fmt.Sprintf("command [%s] is unknown", request.Command))
	}
	counter.Inc()

	n.log.Debugw("received command", "command", request.Command)

	if failure, shouldFail := n.options.failures[request.Command]; shouldFail {
		return c.JSON(failure.statusCode, jsonmodels.ErrorResponse{Exception: failure.message})
	}

	switch request.Command {
	case jsonmodels.CommandGetTransactionsToApprove:
		return n.getTransactionsToApprove(c, &request, start)
	case jsonmodels.CommandAttachToTangle:
		return n.attachToTangle(c, &request, start)
	case jsonmodels.CommandBroadcastTransactions:
		return n.broadcastTransactions(c, &request, start)
	default:
		return n.storeTransactions(c, &request, start)
	}
}

func (n *Node) getTransactionsToApprove(c echo.Context, request *commandRequest, start time.Time) error {
	if request.Depth < 1 {
		return badRequest(c, "invalid depth input")
	}

	return c.JSON(http.StatusOK, jsonmodels.GetTransactionsToApproveResponse{
		TrunkTransaction:  n.options.trunkTransaction,
		BranchTransaction: n.options.branchTransaction,
		Duration:          milliseconds(start),
	})
}

func (n *Node) attachToTangle(c echo.Context, request *commandRequest, start time.Time) error {
	if !isHash(request.TrunkTransaction) {
		return badRequest(c, "invalid trunk transaction")
	}
	if !isHash(request.BranchTransaction) {
		return badRequest(c, "invalid branch transaction")
	}
	if request.MinWeightMagnitude < 1 {
		return badRequest(c, "invalid minWeightMagnitude input")
	}
	if !hasTrytes(request.Trytes) {
		return badRequest(c, "invalid trytes input")
	}

	n.lastAttachRequestMutex.Lock()
	n.lastAttachRequest = &jsonmodels.AttachToTangleRequest{
		Command:            jsonmodels.Command{Command: request.Command},
		TrunkTransaction:   request.TrunkTransaction,
		BranchTransaction:  request.BranchTransaction,
		MinWeightMagnitude: request.MinWeightMagnitude,
		Trytes:             request.Trytes,
	}
	n.lastAttachRequestMutex.Unlock()

	attached := make([]*ternary.TryteString, len(request.Trytes))
	for i, trytes := range request.Trytes {
		attached[i] = trytes.Clone()
	}

	return c.JSON(http.StatusOK, jsonmodels.AttachToTangleResponse{
		Trytes:   attached,
		Duration: milliseconds(start),
	})
}

func (n *Node) broadcastTransactions(c echo.Context, request *commandRequest, start time.Time) error {
	if !hasTrytes(request.Trytes) {
		return badRequest(c, "invalid trytes input")
	}

	n.broadcasted.Add(uint64(len(request.Trytes)))

	return c.JSON(http.StatusOK, jsonmodels.BroadcastTransactionsResponse{
		Duration: milliseconds(start),
	})
}

func (n *Node) storeTransactions(c echo.Context, request *commandRequest, start time.Time) error {
	if !hasTrytes(request.Trytes) {
		return badRequest(c, "invalid trytes input")
	}

	for _, trytes := range request.Trytes {
		if err := n.transactions.Set(trytes.String(), trytes); err != nil {
			n.log.Errorw("failed to store transaction", "err", err)

			return c.JSON(http.StatusInternalServerError, jsonmodels.ErrorResponse{Exception: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, jsonmodels.StoreTransactionsResponse{
		Duration: milliseconds(start),
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, jsonmodels.ErrorResponse{Error: message})
}

func isHash(trytes *ternary.TryteString) bool {
	return trytes != nil && trytes.Len() == HashLength
}

func hasTrytes(trytes []*ternary.TryteString) bool {
	if len(trytes) == 0 {
		return false
	}

	for _, tryteString := range trytes {
		if tryteString == nil || tryteString.IsEmpty() {
			return false
		}
	}

	return true
}

func milliseconds(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
