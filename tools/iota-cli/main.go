package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	flag "github.com/spf13/pflag"

	"github.com/EasonC13/iota.go/client"
	"github.com/EasonC13/iota.go/packages/ternary"
	"github.com/EasonC13/iota.go/packages/workerpool"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(nil)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR:\n  %s\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	switch command {
	case "encode", "decode", "pad", "send":
	case "help":
		printUsage(nil)
		return nil
	default:
		printUsage(nil)
		return errors.Errorf("unknown [COMMAND]: %s", command)
	}

	flags := newFlagSet(command)
	config, err := loadConfig(flags, args)
	if err != nil {
		printUsage(flags)
		return err
	}

	container, err := newContainer(config)
	if err != nil {
		return err
	}

	return container.Invoke(func(pool *workerpool.WorkerPool, api *client.IotaAPI, log *logger.Logger) error {
		defer pool.Release()
		defer func() {
			_ = log.Sync()
		}()

		switch command {
		case "encode":
			return runEncode(os.Stdout, pool, flags.Args())
		case "decode":
			mode := ternary.DecodeLenient
			if config.GetBool(CfgCodecStrict) {
				mode = ternary.DecodeStrict
			}
			return runDecode(os.Stdout, pool, flags.Args(), mode)
		case "pad":
			return runPad(os.Stdout, flags.Args(), config.GetInt(CfgPadLength))
		default:
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runSend(ctx, os.Stdout, sendDependencies{
				config: config,
				api:    api,
				pool:   pool,
				log:    log,
			}, flags.Args(), surveyConfirm)
		}
	})
}

func printUsage(flags *flag.FlagSet) {
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  " + filepath.Base(os.Args[0]) + " [COMMAND] [OPTIONS] [ARGUMENTS]")
	fmt.Println()

	if flags != nil {
		fmt.Println("OPTIONS:")
		flags.PrintDefaults()
		return
	}

	fmt.Println("COMMANDS:")
	fmt.Println("  encode TEXT...")
	fmt.Println("        encode text into trytes")
	fmt.Println("  decode TRYTES...")
	fmt.Println("        decode trytes into bytes (undecodable trytes become '?' unless --codec.strict is set)")
	fmt.Println("  pad TRYTES...")
	fmt.Println("        pad trytes with '9' until they reach --pad.length")
	fmt.Println("  send TEXT...")
	fmt.Println("        attach, broadcast and store the given payloads (use --send.raw to send trytes)")
	fmt.Println("  help")
	fmt.Println("        display this help screen")
}
