// Package mocknode implements an in-memory stand-in for the command API of an IOTA node. It validates and answers
// commands like a node would, but it neither does proof-of-work nor gossips transactions.
package mocknode

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/EasonC13/iota.go/packages/jsonmodels"
	"github.com/EasonC13/iota.go/packages/ternary"
)

// APIVersionHeader is the header that every request has to carry with the value jsonmodels.APIVersion.
const APIVersionHeader = jsonmodels.APIVersionHeader

var supportedCommands = []string{
	jsonmodels.CommandGetTransactionsToApprove,
	jsonmodels.CommandAttachToTangle,
	jsonmodels.CommandBroadcastTransactions,
	jsonmodels.CommandStoreTransactions,
}

// Node answers the commands of the IOTA node API from memory.
type Node struct {
	server       *echo.Echo
	options      *options
	transactions *ttlcache.Cache
	counters     map[string]*atomic.Uint64
	broadcasted  *atomic.Uint64
	log          *logger.Logger

	lastAttachRequest      *jsonmodels.AttachToTangleRequest
	lastAttachRequestMutex sync.RWMutex
}

// New creates a Node. The returned Node can be served via Start or mounted anywhere as an http.Handler.
func New(opts ...Option) (*Node, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.log == nil {
		options.log = zap.NewNop().Sugar()
	}

	transactions := ttlcache.NewCache()
	transactions.SkipTTLExtensionOnHit(true)
	if err := transactions.SetTTL(options.retention); err != nil {
		return nil, errors.Wrapf(err, "failed to set retention of %s", options.retention)
	}

	n := &Node{
		options:      options,
		transactions: transactions,
		counters:     make(map[string]*atomic.Uint64, len(supportedCommands)),
		broadcasted:  atomic.NewUint64(0),
		log:          options.log,
	}
	for _, command := range supportedCommands {
		n.counters[command] = atomic.NewUint64(0)
	}

	n.server = echo.New()
	n.server.HideBanner = true
	n.server.HidePort = true
	n.server.Logger.SetLevel(log.OFF)
	n.server.Use(middleware.Recover())
	n.server.POST("/", n.handleCommand)

	return n, nil
}

// Handler returns the http.Handler that serves the command API.
func (n *Node) Handler() http.Handler {
	return n.server
}

// Start serves the command API on the given address until Shutdown is called.
func (n *Node) Start(bindAddress string) error {
	n.log.Infow("mock node started", "bindAddress", bindAddress)

	if err := n.server.Start(bindAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "failed to serve on %s", bindAddress)
	}

	return nil
}

// Shutdown stops the server and drops all stored transactions.
func (n *Node) Shutdown(ctx context.Context) error {
	if err := n.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "failed to stop server")
	}

	if err := n.transactions.Close(); err != nil {
		return errors.Wrap(err, "failed to close transaction storage")
	}

	return nil
}

// CommandCount returns how often the given command was received.
func (n *Node) CommandCount(command string) uint64 {
	counter, exists := n.counters[command]
	if !exists {
		return 0
	}

	return counter.Load()
}

// BroadcastedTransactions returns the amount of transactions that were broadcasted.
func (n *Node) BroadcastedTransactions() uint64 {
	return n.broadcasted.Load()
}

// StoredTransactions returns the stored transaction trytes in lexical order.
func (n *Node) StoredTransactions() []*ternary.TryteString {
	keys := n.transactions.GetKeys()
	sort.Strings(keys)

	stored := make([]*ternary.TryteString, 0, len(keys))
	for _, key := range keys {
		value, err := n.transactions.Get(key)
		if err != nil {
			continue
		}

		stored = append(stored, value.(*ternary.TryteString))
	}

	return stored
}

// LastAttachRequest returns the last attachToTangle request that was accepted.
func (n *Node) LastAttachRequest() *jsonmodels.AttachToTangleRequest {
	n.lastAttachRequestMutex.RLock()
	defer n.lastAttachRequestMutex.RUnlock()

	return n.lastAttachRequest
}
