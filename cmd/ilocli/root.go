package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"ilo_monitor/internal/config"
	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/ribcl"
	"ilo_monitor/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// app holds what every subcommand shares: flags and a lazily built client.
type app struct {
	configPath string
	output     string
	verbose    bool
	// diag receives -v logging so stdout stays machine-readable.
	diag io.Writer

	// connect builds the controller from a validated config.
	connect func(cfg *config.Config, log *logger.Logger) service.Controller
}

func newApp() *app {
	return &app{
		output: outputJSON,
		diag:   os.Stderr,
		connect: func(cfg *config.Config, log *logger.Logger) service.Controller {
			return ribcl.NewClient(cfg.ILO, ribcl.WithLogger(log))
		},
	}
}

func (a *app) logger() *logger.Logger {
	if a.verbose {
		return logger.New(a.diag, logger.DebugLevel)
	}
	return logger.Nop()
}

// controller loads the config and returns a client for the configured host.
func (a *app) controller() (service.Controller, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateClient(); err != nil {
		return nil, err
	}
	return a.connect(cfg, a.logger()), nil
}

func (a *app) print(w io.Writer, v any) error {
	switch a.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", a.output)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ilocli",
		Short:         "Drive an HP iLO controller over RIBCL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.diag = cmd.ErrOrStderr()
			a.output = strings.ToLower(strings.TrimSpace(a.output))
			if a.output != outputJSON && a.output != outputYAML {
				return fmt.Errorf("unknown output format %q (want json or yaml)", a.output)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to config.yml (default: configs/config.yml)")
	flags.StringVarP(&a.output, "output", "o", outputJSON, "output format: json or yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log controller traffic to stderr")

	root.AddCommand(
		newPowerCmd(a),
		newUIDCmd(a),
		newInfoCmd(a),
		newEventLogCmd(a),
		newResetControllerCmd(a),
		newCatalogCmd(a),
	)
	return root
}
