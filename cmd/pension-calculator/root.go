package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iwvelando/pension-calculator/internal/config"
	"github.com/iwvelando/pension-calculator/internal/session"
	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/reference"
	"github.com/iwvelando/pension-calculator/pkg/validation"
)

// app carries the state shared by every subcommand once the root command
// has loaded configuration.
type app struct {
	v            *viper.Viper
	conf         *config.Configuration
	logger       *zap.Logger
	tables       *reference.Tables
	outputFormat string

	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:      config.NewViper(),
		tables: reference.Default(),
	}

	root := &cobra.Command{
		Use:           "pension-calculator",
		Short:         "Estimate a monthly pension from salary and contribution history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.String("output-format", constants.OutputFormatPretty, "type of output override: pretty, csv, json, yaml")
	_ = a.v.BindPFlag(config.KeyOutputFormat, flags.Lookup("output-format"))

	root.AddCommand(
		newCalculateCommand(a),
		newInteractiveCommand(a),
		newCitiesCommand(a),
		newPayoutMonthsCommand(a),
		newConfigCommand(a),
	)

	return root
}

// setup loads configuration, builds the logger and validates the output
// format. An explicitly named config file must exist; the default one may be
// absent.
func (a *app) setup(cmd *cobra.Command) error {
	conf, err := config.Load(a.v, a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", a.configPath, err)
		return err
	}
	a.conf = conf

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return err
	}
	a.logger = logger

	a.outputFormat = conf.Output.Format
	if a.outputFormat == "" {
		a.outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(a.outputFormat); err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("op", "main"),
		zap.String("config", a.configPath),
		zap.String("outputFormat", a.outputFormat),
	)
	return nil
}

// warnConfiguration logs configuration warnings for commands that use the
// configured inputs.
func (a *app) warnConfiguration() {
	for _, warning := range a.conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
}

// newController returns a session controller recording its notices.
func (a *app) newController() (*session.Controller, *session.Recorder) {
	recorder := &session.Recorder{}
	return session.NewController(a.logger, session.WithNotifier(recorder)), recorder
}

// printFailures writes failure notices to w.
func printFailures(w io.Writer, notices []session.Notice) {
	for _, n := range notices {
		if n.Level == session.LevelFailure {
			fmt.Fprintf(w, "%s: %s\n", n.Title, n.Message)
		}
	}
}
