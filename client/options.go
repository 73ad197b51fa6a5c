package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/iotaledger/hive.go/logger"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	baseURL     string
	adapter     Adapter
	httpOptions []HTTPOption
	registerer  prometheus.Registerer
	log         *logger.Logger
}

func defaultOptions(baseURL string) *options {
	return &options{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Option configures an IotaAPI.
type Option func(*options)

// WithAdapter replaces the HTTP transport of the IotaAPI.
func WithAdapter(adapter Adapter) Option {
	return func(o *options) {
		o.adapter = adapter
	}
}

// WithHTTPClient makes the default HTTPAdapter use the given http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpOptions = append(o.httpOptions, WithAdapterHTTPClient(httpClient))
	}
}

// WithTimeout limits the duration of every request of the default HTTPAdapter.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.httpOptions = append(o.httpOptions, WithAdapterTimeout(timeout))
	}
}

// WithAuthToken adds the given bearer token to every request of the default HTTPAdapter.
func WithAuthToken(token string) Option {
	return func(o *options) {
		o.httpOptions = append(o.httpOptions, WithAdapterAuthToken(token))
	}
}

// WithRegisterer registers the command metrics of the IotaAPI at the given prometheus.Registerer.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = registerer
	}
}

// WithLogger sets the logger that is used by the IotaAPI.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
