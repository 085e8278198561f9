package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/pension-calculator/internal/form"
	"github.com/iwvelando/pension-calculator/internal/session"
	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/format"
	"github.com/iwvelando/pension-calculator/pkg/output"
)

const interactiveCommands = `Commands:
  salary <amount>    set the current monthly salary
  years <n>          set the contribution years
  age <n>            set the retirement age
  city <name>        use the average salary of a city
  custom [amount]    toggle custom average salary, or set it
  calc               compute the pension
  back               leave the result and edit the inputs again
  show               print the current inputs
  cities             list the available cities
  help               print this help
  quit               exit
`

// interactiveHelp lists the commands and the typical range of each field.
func interactiveHelp() string {
	var b strings.Builder
	b.WriteString(interactiveCommands)
	b.WriteString("Typical ranges:\n")
	for _, bound := range form.Bounds {
		fmt.Fprintf(&b, "  %-18s %g-%g, step %g\n", bound.Field, bound.Min, bound.Max, bound.Step)
	}
	return b.String()
}

func newInteractiveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Edit inputs and compute pensions in a line-oriented session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.warnConfiguration()
			in, err := a.conf.Inputs.ToInputs(a.tables)
			if err != nil {
				return err
			}
			r := newRepl(a, form.FromInputs(a.tables, in), cmd.OutOrStdout())
			return r.run(cmd.InOrStdin())
		},
	}
}

// repl drives a form and a session controller from text commands.
type repl struct {
	a          *app
	form       *form.Form
	controller *session.Controller
	recorder   *session.Recorder
	out        io.Writer
}

func newRepl(a *app, f *form.Form, out io.Writer) *repl {
	controller, recorder := a.newController()
	return &repl{a: a, form: f, controller: controller, recorder: recorder, out: out}
}

func (r *repl) run(in io.Reader) error {
	fmt.Fprint(r.out, interactiveHelp())
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(r.out, "[%s]> ", r.controller.State())
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if quit := r.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// handle executes one command line and reports whether the session ended.
func (r *repl) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command, args := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")

	switch command {
	case "salary":
		r.set(form.FieldMonthlySalary, args)
	case "years":
		r.set(form.FieldContributionYears, args)
	case "age":
		r.set(form.FieldRetirementAge, args)
	case "city":
		if err := r.form.SelectCity(args); err != nil {
			fmt.Fprintf(r.out, "%v; run \"cities\" for the list\n", err)
		}
	case "custom":
		if args == "" {
			r.form.ToggleCustom()
			r.show()
			return false
		}
		r.set(form.FieldAverageSalary, args)
	case "calc":
		r.calculate()
	case "back":
		if err := r.controller.Reset(); err != nil {
			fmt.Fprintln(r.out, "no result is shown")
		}
	case "show":
		r.show()
	case "cities":
		if err := output.RenderCities(r.out, constants.OutputFormatPretty, r.a.tables); err != nil {
			fmt.Fprintln(r.out, err)
		}
	case "help":
		fmt.Fprint(r.out, interactiveHelp())
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(r.out, "unknown command %q; type \"help\"\n", command)
	}
	return false
}

func (r *repl) set(field, text string) {
	applied, err := r.form.Set(field, text)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	if !applied {
		fmt.Fprintf(r.out, "ignored %q: not a valid value\n", text)
	}
}

func (r *repl) calculate() {
	in, err := r.form.Inputs()
	if err != nil {
		r.a.logger.Warn("form inputs rejected",
			zap.String("op", "main.interactive"),
			zap.Error(err),
		)
		fmt.Fprintf(r.out, "Computation failed, check your inputs: %v\n", err)
		return
	}

	view, err := r.controller.Submit(in)
	notices := r.recorder.Drain()
	if err != nil {
		printFailures(r.out, notices)
		return
	}
	if err := output.Render(r.out, r.a.outputFormat, view, notices); err != nil {
		fmt.Fprintln(r.out, err)
	}
}

func (r *repl) show() {
	in, err := r.form.Inputs()
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	mode := "city"
	if r.form.Custom() {
		mode = "custom"
	}
	fmt.Fprintf(r.out, "salary %s, years %d, age %d, average salary %s (%s: %s)\n",
		format.Currency(in.MonthlySalary), in.ContributionYears, in.RetirementAge,
		format.Currency(in.AverageSalary), mode, in.City)
}
