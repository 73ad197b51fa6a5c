package client

import (
	"time"

	"github.com/iotaledger/hive.go/events"
)

// Events contains the events that are triggered by the IotaAPI.
type Events struct {
	// CommandSucceeded is triggered with the name and the duration of every successful command.
	CommandSucceeded *events.Event
	// CommandFailed is triggered with the name and the error of every failed command.
	CommandFailed *events.Event
}

func newEvents() *Events {
	return &Events{
		CommandSucceeded: events.NewEvent(commandSucceededCaller),
		CommandFailed:    events.NewEvent(commandFailedCaller),
	}
}

func commandSucceededCaller(handler interface{}, params ...interface{}) {
	handler.(func(string, time.Duration))(params[0].(string), params[1].(time.Duration))
}

func commandFailedCaller(handler interface{}, params ...interface{}) {
	handler.(func(string, error))(params[0].(string), params[1].(error))
}
