// urncode40 - URN Code 40 codec CLI tool
//
// Usage:
//
//	urncode40 encode [text...]                 Encode text (or stdin lines)
//	urncode40 decode [--preserve-padding] [hex...]  Decode hex (or stdin lines)
//	urncode40 validate [text...]               Check that text can be encoded
//	urncode40 inspect hex                      Print the blocks of a stream
//	urncode40 batch encode|decode [file]       Process a file line by line
//	urncode40 version                          Print version info
//
// Files ending in .gz or .zst are decompressed. Settings may be read from a
// YAML file given by --config or $URNCODE40_CONFIG.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Neumenon/urncode40/internal/config"
)

const libVersion = "0.3.0"

// errFailed is returned after per-input failures have been reported.
var errFailed = errors.New("one or more inputs failed")

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "urncode40:", err)
		}
		os.Exit(1)
	}
}

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *logrus.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetOutput(stderr)

	root := &cobra.Command{
		Use:           "urncode40",
		Short:         "URN Code 40 codec",
		Long:          "Pack container and cargo identifiers into compact hexadecimal, and back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		a.encodeCmd(),
		a.decodeCmd(),
		a.validateCmd(),
		a.inspectCmd(),
		a.batchCmd(),
		versionCmd(),
	)
	return root
}

// setup loads the config file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(level)
	if cfg.LogFormat == "json" {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	a.cfg = cfg
	a.log.WithField("config", a.configPath).Debug("configuration loaded")
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "urncode40 %s\n", libVersion)
		},
	}
}
