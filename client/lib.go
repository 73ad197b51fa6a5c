// Package client implements a very simple wrapper for the command API of an IOTA node.
package client

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized defines the "unauthorized" error.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
	// ErrNotImplemented defines the "operation not implemented/supported/available" error.
	ErrNotImplemented = errors.New("operation not implemented/supported/available")
	// ErrInvalidRequest is returned if a command is called with arguments that can never succeed.
	ErrInvalidRequest = errors.New("invalid request")
)

// Adapter sends a single command to a node and decodes the answer into response.
type Adapter interface {
	Send(ctx context.Context, command string, request interface{}, response interface{}) error
}

// region IotaAPI //////////////////////////////////////////////////////////////////////////////////////////////////////

// IotaAPI is an API wrapper over the command API of an IOTA node.
type IotaAPI struct {
	adapter Adapter
	events  *Events
	metrics *metrics
	pending *atomic.Int64
	log     *logger.Logger
}

// NewIotaAPI returns a new *IotaAPI that talks to the node at the given baseURL.
func NewIotaAPI(baseURL string, opts ...Option) *IotaAPI {
	options := defaultOptions(baseURL)
	for _, opt := range opts {
		opt(options)
	}

	if options.log == nil {
		options.log = zap.NewNop().Sugar()
	}

	if options.adapter == nil {
		options.adapter = NewHTTPAdapter(options.baseURL, options.httpOptions...)
	}

	return &IotaAPI{
		adapter: options.adapter,
		events:  newEvents(),
		metrics: newMetrics(options.registerer, options.log),
		pending: atomic.NewInt64(0),
		log:     options.log,
	}
}

// Events returns the events that are triggered for every executed command.
func (api *IotaAPI) Events() *Events {
	return api.events
}

// PendingCommands returns the amount of commands that are currently waiting for an answer of the node.
func (api *IotaAPI) PendingCommands() int64 {
	return api.pending.Load()
}

// CommandsPerSecond returns the amount of commands that were sent during the last second.
func (api *IotaAPI) CommandsPerSecond() int64 {
	return api.metrics.rate.Rate()
}

func (api *IotaAPI) do(ctx context.Context, command string, request interface{}, response interface{}) (err error) {
	api.pending.Inc()
	defer api.pending.Dec()

	api.log.Debugw("sending command", "command", command)

	start := time.Now()
	err = api.adapter.Send(ctx, command, request, response)
	duration := time.Since(start)

	api.metrics.observe(command, duration, err)

	if err != nil {
		api.log.Warnw("command failed", "command", command, "duration", duration, "err", err)
		api.events.CommandFailed.Trigger(command, err)

		return err
	}

	api.log.Debugw("command succeeded", "command", command, "duration", duration)
	api.events.CommandSucceeded.Trigger(command, duration)

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
