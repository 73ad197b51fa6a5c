package client

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/paulbellamy/ratecounter"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type metrics struct {
	commands  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	rate      *ratecounter.RateCounter
}

func newMetrics(registerer prometheus.Registerer, log *logger.Logger) *metrics {
	m := &metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iota_client_commands_total",
				Help: "Number of commands sent to the node.",
			},
			[]string{
				"command",
				"result",
			},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "iota_client_command_duration_seconds",
				Help:    "Time until the node answered a command.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{
				"command",
			},
		),
		rate: ratecounter.NewRateCounter(time.Second),
	}

	if registerer == nil {
		return m
	}

	if err := registerer.Register(m.commands); err != nil {
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &alreadyRegistered) {
			log.Warnw("failed to register command counter", "err", err)
		} else if existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec); ok {
			m.commands = existing
		}
	}

	if err := registerer.Register(m.durations); err != nil {
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &alreadyRegistered) {
			log.Warnw("failed to register command duration histogram", "err", err)
		} else if existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec); ok {
			m.durations = existing
		}
	}

	return m
}

func (m *metrics) observe(command string, duration time.Duration, err error) {
	m.rate.Incr(1)

	result := resultSuccess
	if err != nil {
		result = resultFailure
	}

	m.commands.WithLabelValues(command, result).Inc()
	m.durations.WithLabelValues(command).Observe(duration.Seconds())
}
