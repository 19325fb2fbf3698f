package command

import (
	"fmt"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tliron/glsp/server"
	"github.com/tminor/procls/config"
	"github.com/tminor/procls/implementation"
)

const toolName = "procls"

var log = logging.MustGetLogger("command")

var configPath string
var protocolName string
var address string
var logTo string
var verbose int

func newRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:           toolName,
		Short:         "Start the procedure definition language server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config_, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if err := configureLogging(config_.Verbose, config_.Log); err != nil {
				return err
			}

			applyServerInfo(config_)
			return run(config_)
		},
	}

	flags := command.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "configuration file (YAML, JSON or Jsonnet)")
	flags.StringVar(&protocolName, "protocol", config.ProtocolStdio, "protocol (\"stdio\", \"tcp\" or \"websocket\")")
	flags.StringVar(&address, "address", ":4389", "listen address for tcp and websocket")
	flags.StringVarP(&logTo, "log", "l", "", "log to file (defaults to stderr)")
	flags.CountVarP(&verbose, "verbose", "v", "add a log verbosity level (can be used twice)")

	return command
}

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

// resolveConfig loads the configuration file, if any, and applies the flags
// that were set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	config_ := config.Default()
	if configPath != "" {
		var err error
		if config_, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("protocol") {
		config_.Protocol = protocolName
	}
	if flags.Changed("address") {
		config_.Address = address
	}
	if flags.Changed("log") {
		config_.Log = logTo
	}
	if flags.Changed("verbose") {
		config_.Verbose = verbose
	}

	if err := config_.Validate(); err != nil {
		return nil, err
	}
	return config_, nil
}

func applyServerInfo(config_ *config.Config) {
	implementation.ServerName = config_.ServerName
	if config_.ServerVersion != "" {
		implementation.ServerVersion = config_.ServerVersion
	}
}

func run(config_ *config.Config) error {
	server_ := server.NewServer(&implementation.Handler, toolName, config_.Verbose > 1)

	switch config_.Protocol {
	case config.ProtocolStdio:
		log.Info("serving on stdio")
		return server_.RunStdio()
	case config.ProtocolTCP:
		log.Infof("serving on tcp %s", config_.Address)
		return server_.RunTCP(config_.Address)
	case config.ProtocolWebSocket:
		log.Infof("serving on websocket %s", config_.Address)
		return server_.RunWebSocket(config_.Address)
	default:
		return fmt.Errorf("unsupported protocol: %q", config_.Protocol)
	}
}
