package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/pension-calculator/pkg/output"
)

func newCitiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the local average salary of each city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.RenderCities(cmd.OutOrStdout(), a.outputFormat, a.tables)
		},
	}
}

func newPayoutMonthsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "payout-months",
		Short: "List the personal account payout months by retirement age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.RenderPayoutMonths(cmd.OutOrStdout(), a.outputFormat, a.tables)
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.warnConfiguration()
			out, err := a.conf.Export()
			if err != nil {
				a.logger.Error("failed to export configuration",
					zap.String("op", "main.config"),
					zap.Error(err),
				)
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
