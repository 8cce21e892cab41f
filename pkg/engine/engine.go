package engine

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/factorlab/craftbench/pkg/coefficient"
	cberrors "github.com/factorlab/craftbench/pkg/errors"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/overclock"
	"github.com/factorlab/craftbench/pkg/recipe"
)

const maxSuggestions = 3

// CapFunc is the parallel-count capping step applied after the raw parallel
// coefficient resolves. It is bypassed for machines that set
// IgnoreParallelLimit.
type CapFunc func(ctx coefficient.Context, parallels float64) float64

// DefaultFactory builds the default overclock algorithm for a machine,
// binding the machine's optional perfect-overclock coefficient.
type DefaultFactory func(perfect coefficient.Coefficient) machine.OverclockFunc

// StandardParallelCap is the reference capping step: four parallels per
// voltage tier above the recipe's native tier, minimum one operation.
func StandardParallelCap(ctx coefficient.Context, parallels float64) float64 {
	gap := ctx.VoltageTier() - ctx.Recipe().VoltageTier
	if gap < 0 {
		gap = 0
	}
	limit := float64(4 * (gap + 1))
	if parallels > limit {
		return limit
	}
	return parallels
}

// Request describes one evaluation.
type Request struct {
	// Machine is the registry name of the machine to evaluate.
	Machine string `json:"machine" yaml:"machine"`

	// Recipe is the active recipe.
	Recipe *recipe.Recipe `json:"-" yaml:"-"`

	// VoltageTier is the caller-selected voltage tier. Machines with a
	// fixed tier override it.
	VoltageTier int `json:"voltageTier" yaml:"voltageTier"`

	// Choices holds the raw user choices; missing declared choices default.
	Choices map[string]float64 `json:"choices,omitempty" yaml:"choices,omitempty"`

	// TierBudget is the overclock tier budget available.
	TierBudget int `json:"tierBudget" yaml:"tierBudget"`
}

// Evaluation is the outcome of one machine/recipe calculation.
type Evaluation struct {
	ID          string                  `json:"id" yaml:"id"`
	Machine     string                  `json:"machine" yaml:"machine"`
	RecipeID    string                  `json:"recipeId" yaml:"recipeId"`
	VoltageTier int                     `json:"voltageTier" yaml:"voltageTier"`
	Speed       float64                 `json:"speed" yaml:"speed"`
	Power       float64                 `json:"power" yaml:"power"`
	Parallels   float64                 `json:"parallels" yaml:"parallels"`
	Overclock   machine.OverclockResult `json:"overclock" yaml:"overclock"`
	Choices     map[string]float64      `json:"choices,omitempty" yaml:"choices,omitempty"`
	Items       []recipe.Item           `json:"items" yaml:"items"`
	Info        string                  `json:"info,omitempty" yaml:"info,omitempty"`
}

// Engine evaluates machines against recipes. Safe for concurrent use: all
// state is read-only after construction.
type Engine struct {
	registry  *machine.Registry
	defaultOC DefaultFactory
	capFn     CapFunc
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithDefaultOverclock replaces the default overclock algorithm factory.
func WithDefaultOverclock(f DefaultFactory) Option {
	return func(e *Engine) {
		e.defaultOC = f
	}
}

// WithParallelCap replaces the parallel-count capping step.
func WithParallelCap(f CapFunc) Option {
	return func(e *Engine) {
		e.capFn = f
	}
}

// New creates an Engine over the given registry with the provided options.
func New(reg *machine.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry:  reg,
		defaultOC: overclock.Default,
		capFn:     StandardParallelCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's machine registry.
func (e *Engine) Registry() *machine.Registry {
	return e.registry
}

// Evaluate runs one calculation: constraints, coefficients, overclock,
// parallel cap, item rewrite, in that order.
func (e *Engine) Evaluate(ctx context.Context, req Request) (*Evaluation, error) {
	if req.Recipe == nil {
		return nil, cberrors.New(cberrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	start := time.Now()
	ev, err := e.evaluate(req)
	outcome := "success"
	if err != nil {
		outcome = string(cberrors.CodeOf(err))
	}
	evaluateTotal.WithLabelValues(outcome).Inc()
	evaluateDuration.Observe(time.Since(start).Seconds())
	return ev, err
}

func (e *Engine) evaluate(req Request) (*Evaluation, error) {
	def, ok := e.registry.Lookup(req.Machine)
	if !ok {
		return nil, cberrors.NewWithContext(
			cberrors.ErrCodeNotFound,
			"machine not found",
			map[string]any{
				"machine":     req.Machine,
				"suggestions": e.registry.Suggest(req.Machine, maxSuggestions),
			},
		)
	}

	tier := req.VoltageTier
	if def.FixedVoltageTier != nil {
		tier = *def.FixedVoltageTier
	}

	choices := machine.DefaultChoices(def.Choices, req.Choices)
	calc := newCalculation(req.Recipe, tier, choices, req.TierBudget)

	def.EnforceConstraints(calc, choices)
	if err := def.ValidateChoices(choices); err != nil {
		return nil, err
	}

	speed := def.Speed.ResolveOr(calc, 1)
	power := def.Power.ResolveOr(calc, 1)
	parallels := def.Parallels.ResolveOr(calc, 1)

	ocFn := def.Overclock
	if ocFn == nil {
		ocFn = e.defaultOC(def.PerfectOverclock)
	}
	oc := ocFn(calc, req.TierBudget)

	speed *= oc.SpeedMultiplier
	power *= oc.PowerMultiplier

	if !def.IgnoreParallelLimit && e.capFn != nil {
		parallels = e.capFn(calc, parallels)
	}
	if err := checkQuantity("parallels", parallels, req.Machine); err != nil {
		return nil, err
	}
	if err := checkQuantity("speed", speed, req.Machine); err != nil {
		return nil, err
	}

	items := def.RewriteItems(calc, choices, req.Recipe.Items)

	slog.Debug("evaluated machine",
		"machine", req.Machine,
		"recipe", req.Recipe.ID,
		"tier", recipe.TierName(tier),
		"speed", speed,
		"power", power,
		"parallels", parallels,
		"overclock", oc.DisplayName,
	)

	return &Evaluation{
		ID:          uuid.New().String(),
		Machine:     req.Machine,
		RecipeID:    req.Recipe.ID,
		VoltageTier: tier,
		Speed:       speed,
		Power:       power,
		Parallels:   parallels,
		Overclock:   oc,
		Choices:     choices,
		Items:       items,
		Info:        def.Info,
	}, nil
}

// checkQuantity rejects non-finite or negative values where a non-negative
// quantity is required. Such a value is a defect in the machine's
// coefficient, reported rather than clamped.
func checkQuantity(name string, v float64, machineName string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return cberrors.NewWithContext(
			cberrors.ErrCodeInternal,
			"machine coefficient produced an invalid quantity",
			map[string]any{"machine": machineName, "quantity": name, "value": v},
		)
	}
	return nil
}

// EvaluateAll evaluates every machine eligible for the recipe in parallel,
// with default choices, returning results in registry order.
func (e *Engine) EvaluateAll(ctx context.Context, rec *recipe.Recipe, voltageTier, tierBudget int) ([]*Evaluation, error) {
	if rec == nil {
		return nil, cberrors.New(cberrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}

	names := e.registry.Eligible(rec)
	results := make([]*Evaluation, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			ev, err := e.Evaluate(gctx, Request{
				Machine:     name,
				Recipe:      rec,
				VoltageTier: voltageTier,
				TierBudget:  tierBudget,
			})
			if err != nil {
				return err
			}
			results[i] = ev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
