package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/EasonC13/iota.go/packages/mocknode"
)

const (
	// CfgBindAddress defines the bind address of the mock node.
	CfgBindAddress = "mocknode.bindAddress"
	// CfgRetention defines how long stored transactions are kept.
	CfgRetention = "mocknode.retention"
)

func main() {
	flag.String(CfgBindAddress, "127.0.0.1:14265", "the bind address of the mock node API")
	flag.Duration(CfgRetention, 0, "how long stored transactions are kept (0 = forever)")
	flag.Parse()

	config := viper.New()
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	if err := config.BindPFlags(flag.CommandLine); err != nil {
		fail(err)
	}

	root, err := zap.NewDevelopment()
	if err != nil {
		fail(err)
	}
	log := root.Sugar().Named("mocknode")

	node, err := mocknode.New(
		mocknode.WithRetention(config.GetDuration(CfgRetention)),
		mocknode.WithLogger(log),
	)
	if err != nil {
		fail(err)
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		if err := node.Start(config.GetString(CfgBindAddress)); err != nil {
			log.Errorf("Error serving: %s", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case <-signals:
	case <-stopped:
	}

	log.Info("Stopping mock node ...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := node.Shutdown(ctx); err != nil {
		log.Errorf("Error stopping: %s", err)
	}
	log.Info("Stopping mock node ... done")
}

func fail(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "ERROR:\n  %s\n", err)
	os.Exit(1)
}
