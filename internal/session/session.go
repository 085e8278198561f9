// Package session sequences the two-stage calculator interaction: collect
// inputs, then show the computed result until the user resets.
//
// A Controller is driven by a single UI event loop and is not safe for
// concurrent use.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/pension"
	"github.com/iwvelando/pension-calculator/pkg/reference"
	"github.com/iwvelando/pension-calculator/pkg/validation"
)

// State is the stage a session is in.
type State int

const (
	// AwaitingInput is the initial state: the form is shown.
	AwaitingInput State = iota
	// ShowingResult holds a computed result until Reset.
	ShowingResult
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case ShowingResult:
		return "ShowingResult"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrCalculationFailed wraps every failed submission.
	ErrCalculationFailed = errors.New("calculation failed")

	// ErrNotShowingResult is returned by Reset when there is no result to discard.
	ErrNotShowingResult = errors.New("no result is being shown")
)

// Engine computes a pension result from submitted inputs.
type Engine interface {
	Calculate(pension.Inputs) pension.Result
	Tables() *reference.Tables
}

// View is what the result collaborator renders.
type View struct {
	CalculationID string         `json:"calculationId" yaml:"calculationId"`
	Inputs        pension.Inputs `json:"inputs" yaml:"inputs"`
	Result        pension.Result `json:"result" yaml:"result"`
	MonthlySalary float64        `json:"monthlySalary" yaml:"monthlySalary"`
	BelowMinimum  bool           `json:"belowMinimumContribution" yaml:"belowMinimumContribution"`
	Warnings      []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Controller holds the current inputs and the last computed result.
type Controller struct {
	logger   *zap.Logger
	engine   Engine
	notifier Notifier
	newID    func() string

	state      State
	lastInputs *pension.Inputs
	current    *View
}

// Option configures a Controller.
type Option func(*Controller)

// WithEngine replaces the default pension calculator.
func WithEngine(engine Engine) Option {
	return func(c *Controller) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithNotifier sets where notices are delivered.
func WithNotifier(notifier Notifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithIDGenerator overrides how calculation ids are produced.
func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) {
		if newID != nil {
			c.newID = newID
		}
	}
}

// NewController returns a Controller in the AwaitingInput state.
func NewController(logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		logger:   logger,
		engine:   pension.NewCalculator(nil),
		notifier: discard{},
		newID:    func() string { return uuid.New().String() },
		state:    AwaitingInput,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// View returns the active result view, if a result is being shown.
func (c *Controller) View() (View, bool) {
	if c.state != ShowingResult || c.current == nil {
		return View{}, false
	}
	return *c.current, true
}

// LastInputs returns the most recently accepted inputs, which the form can
// re-show after a reset.
func (c *Controller) LastInputs() (pension.Inputs, bool) {
	if c.lastInputs == nil {
		return pension.Inputs{}, false
	}
	return *c.lastInputs, true
}

// Submit computes a result for in and moves to ShowingResult. It may be
// called again while a result is shown to recompute. Contribution histories
// below the minimum raise an advisory notice but still produce a result.
// On failure the session is left in AwaitingInput with no result and a
// failure notice is raised.
func (c *Controller) Submit(in pension.Inputs) (view View, err error) {
	defer func() {
		if r := recover(); r != nil {
			view = View{}
			err = c.fail(in, fmt.Errorf("%w: %v", ErrCalculationFailed, r))
		}
	}()

	if verr := validation.ValidateInputs(in); verr != nil {
		return View{}, c.fail(in, fmt.Errorf("%w: %w", ErrCalculationFailed, verr))
	}

	if in.BelowMinimumContribution() {
		c.logger.Info("contribution years below minimum",
			zap.String("op", "session.Submit"),
			zap.Int("contributionYears", in.ContributionYears),
			zap.Int("minimum", constants.MinimumContributionYears),
		)
		c.notifier.Notify(Notice{
			Level: LevelAdvisory,
			Code:  CodeBelowMinimumContribution,
			Title: "Pension advisory",
			Message: fmt.Sprintf("Contribution years below the %d-year minimum required to draw a pension; result is indicative only.",
				constants.MinimumContributionYears),
		})
	}

	warnings := validation.InputWarnings(in, c.engine.Tables())
	for _, warning := range warnings {
		c.logger.Warn("input warning: "+warning,
			zap.String("op", "session.Submit"),
		)
		c.notifier.Notify(Notice{
			Level:   LevelAdvisory,
			Code:    CodeInputOutOfRange,
			Title:   "Input advisory",
			Message: warning,
		})
	}

	result := c.engine.Calculate(in)

	snapshot := in
	c.lastInputs = &snapshot
	c.current = &View{
		CalculationID: c.newID(),
		Inputs:        snapshot,
		Result:        result,
		MonthlySalary: snapshot.MonthlySalary,
		BelowMinimum:  snapshot.BelowMinimumContribution(),
		Warnings:      warnings,
	}
	c.state = ShowingResult

	c.logger.Debug("pension computed",
		zap.String("op", "session.Submit"),
		zap.String("calculationId", c.current.CalculationID),
		zap.Float64("totalPension", result.TotalPension),
		zap.Float64("replacementRate", result.ReplacementRate),
	)

	return *c.current, nil
}

// Reset discards the shown result and returns to AwaitingInput. The last
// inputs are kept.
func (c *Controller) Reset() error {
	if c.state != ShowingResult {
		return ErrNotShowingResult
	}

	c.logger.Debug("session reset",
		zap.String("op", "session.Reset"),
		zap.String("calculationId", c.current.CalculationID),
	)
	c.current = nil
	c.state = AwaitingInput
	return nil
}

func (c *Controller) fail(in pension.Inputs, err error) error {
	c.current = nil
	c.state = AwaitingInput

	c.logger.Error("pension computation failed",
		zap.String("op", "session.Submit"),
		zap.Float64("monthlySalary", in.MonthlySalary),
		zap.Int("contributionYears", in.ContributionYears),
		zap.Int("retirementAge", in.RetirementAge),
		zap.Float64("averageSalary", in.AverageSalary),
		zap.Error(err),
	)
	c.notifier.Notify(Notice{
		Level:   LevelFailure,
		Code:    CodeCalculationFailed,
		Title:   "Computation failed",
		Message: "Computation failed, check your inputs.",
	})
	return err
}
