package mocknode

import (
	"time"

	"github.com/iotaledger/hive.go/logger"

	"github.com/EasonC13/iota.go/packages/ternary"
)

// HashLength is the amount of trytes of a transaction hash.
const HashLength = 81

type failure struct {
	statusCode int
	message    string
}

type options struct {
	trunkTransaction  *ternary.TryteString
	branchTransaction *ternary.TryteString
	retention         time.Duration
	failures          map[string]failure
	log               *logger.Logger
}

func defaultOptions() *options {
	return &options{
		trunkTransaction:  ternary.NewTryteString().Pad(HashLength),
		branchTransaction: ternary.NewTryteString().Pad(HashLength),
		failures:          make(map[string]failure),
	}
}

// Option configures a Node.
type Option func(*options)

// WithTips sets the trunk and branch transaction that are returned by getTransactionsToApprove.
func WithTips(trunkTransaction, branchTransaction *ternary.TryteString) Option {
	return func(o *options) {
		o.trunkTransaction = trunkTransaction
		o.branchTransaction = branchTransaction
	}
}

// WithRetention removes stored transactions after the given duration. Zero keeps them forever.
func WithRetention(retention time.Duration) Option {
	return func(o *options) {
		o.retention = retention
	}
}

// WithFailure makes the given command always fail with the given status code and message.
func WithFailure(command string, statusCode int, message string) Option {
	return func(o *options) {
		o.failures[command] = failure{
			statusCode: statusCode,
			message:    message,
		}
	}
}

// WithLogger sets the logger that is used by the Node.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
