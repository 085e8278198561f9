package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/pension-calculator/internal/config"
	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/output"
)

func newCalculateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute one pension estimate from configuration and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.calculate(cmd)
		},
	}

	flags := cmd.Flags()
	flags.Float64("salary", constants.DefaultMonthlySalary, "current monthly salary")
	flags.Int("years", constants.DefaultContributionYears, "contribution years")
	flags.Int("age", constants.DefaultRetirementAge, "retirement age")
	flags.String("city", "", "city whose average salary is used")
	flags.Float64("average-salary", 0, "custom local average salary, used when no city is given")

	_ = a.v.BindPFlag(config.KeyMonthlySalary, flags.Lookup("salary"))
	_ = a.v.BindPFlag(config.KeyContributionYears, flags.Lookup("years"))
	_ = a.v.BindPFlag(config.KeyRetirementAge, flags.Lookup("age"))
	_ = a.v.BindPFlag(config.KeyCity, flags.Lookup("city"))
	_ = a.v.BindPFlag(config.KeyAverageSalary, flags.Lookup("average-salary"))

	return cmd
}

func (a *app) calculate(cmd *cobra.Command) error {
	// A custom average on the command line wins over a configured city.
	if cmd.Flags().Changed("average-salary") && !cmd.Flags().Changed("city") {
		a.conf.Inputs.City = constants.CustomCity
	}
	a.warnConfiguration()

	in, err := a.conf.Inputs.ToInputs(a.tables)
	if err != nil {
		a.logger.Error("failed to resolve inputs",
			zap.String("op", "main.calculate"),
			zap.Error(err),
		)
		return err
	}

	controller, recorder := a.newController()
	view, err := controller.Submit(in)
	notices := recorder.Drain()
	if err != nil {
		printFailures(cmd.ErrOrStderr(), notices)
		return err
	}

	return output.Render(cmd.OutOrStdout(), a.outputFormat, view, notices)
}
