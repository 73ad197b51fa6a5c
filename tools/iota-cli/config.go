package main

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgConfigFile defines the optional config file (json, toml, yaml or properties).
	CfgConfigFile = "config"
	// CfgNodeURL defines the URL of the node that commands are sent to.
	CfgNodeURL = "node.url"
	// CfgNodeTimeout defines how long to wait for an answer of the node.
	CfgNodeTimeout = "node.timeout"
	// CfgSendDepth defines the depth that is used for the tip selection.
	CfgSendDepth = "send.depth"
	// CfgSendMinWeightMagnitude defines the minimum weight magnitude of the proof-of-work.
	CfgSendMinWeightMagnitude = "send.minWeightMagnitude"
	// CfgSendYes skips the confirmation before sending.
	CfgSendYes = "send.yes"
	// CfgSendRaw treats the arguments of send as trytes instead of text.
	CfgSendRaw = "send.raw"
	// CfgPadLength defines the minimum length of padded trytes.
	CfgPadLength = "pad.length"
	// CfgCodecWorkers defines the amount of workers that encode and decode in parallel.
	CfgCodecWorkers = "codec.workers"
	// CfgCodecStrict makes decoding fail instead of replacing undecodable trytes with '?'.
	CfgCodecStrict = "codec.strict"
	// CfgLoggerLevel defines the log level.
	CfgLoggerLevel = "logger.level"

	envPrefix = "IOTA_CLI"
)

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringP(CfgConfigFile, "c", "", "path to an optional config file")
	flags.String(CfgNodeURL, "http://localhost:14265", "the URL of the node API")
	flags.Duration(CfgNodeTimeout, 30*time.Second, "the timeout of a single command")
	flags.Int(CfgSendDepth, 3, "the depth of the tip selection")
	flags.Int(CfgSendMinWeightMagnitude, 14, "the minimum weight magnitude of the proof-of-work")
	flags.Bool(CfgSendYes, false, "send without asking for confirmation")
	flags.Bool(CfgSendRaw, false, "treat the arguments as trytes instead of text")
	flags.Int(CfgPadLength, 81, "the minimum length of padded trytes")
	flags.Int(CfgCodecWorkers, 0, "the amount of codec workers (0 = twice the number of CPUs)")
	flags.Bool(CfgCodecStrict, false, "fail on trytes that do not decode to bytes")
	flags.String(CfgLoggerLevel, "info", "the log level (debug, info, warn, error)")

	return flags
}

// loadConfig parses the arguments of a sub command and merges them with the environment and the config file.
func loadConfig(flags *flag.FlagSet, args []string) (*viper.Viper, error) {
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "failed to parse flags")
	}

	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	if configFile := config.GetString(CfgConfigFile); configFile != "" {
		config.SetConfigFile(configFile)
		if err := config.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	return config, nil
}
