package main

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/EasonC13/iota.go/client"
	"github.com/EasonC13/iota.go/packages/workerpool"
)

// newContainer wires the components of the CLI that are built from the given config.
func newContainer(config *viper.Viper) (*dig.Container, error) {
	container := dig.New()

	for _, constructor := range []interface{}{
		func() *viper.Viper { return config },
		newLogger,
		newWorkerPool,
		newIotaAPI,
	} {
		if err := container.Provide(constructor); err != nil {
			return nil, errors.Wrap(err, "failed to provide component")
		}
	}

	return container, nil
}

func newLogger(config *viper.Viper) (*logger.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(config.GetString(CfgLoggerLevel))); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", CfgLoggerLevel)
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = level
	zapConfig.DisableStacktrace = true

	root, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return root.Sugar().Named("iota-cli"), nil
}

func newWorkerPool(config *viper.Viper) (*workerpool.WorkerPool, error) {
	return workerpool.New(config.GetInt(CfgCodecWorkers))
}

func newIotaAPI(config *viper.Viper, log *logger.Logger) *client.IotaAPI {
	return client.NewIotaAPI(config.GetString(CfgNodeURL),
		client.WithTimeout(config.GetDuration(CfgNodeTimeout)),
		client.WithLogger(log.Named("client")),
	)
}
