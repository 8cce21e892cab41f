package machine

import (
	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// OverclockResult is the output contract of every overclock algorithm,
// custom or default.
type OverclockResult struct {
	// SpeedMultiplier scales the machine's processing speed.
	SpeedMultiplier float64 `json:"speedMultiplier" yaml:"speedMultiplier"`

	// PowerMultiplier scales the machine's energy consumption.
	PowerMultiplier float64 `json:"powerMultiplier" yaml:"powerMultiplier"`

	// PerfectOverclocks counts overclock steps taken with no power penalty.
	PerfectOverclocks int `json:"perfectOverclocks" yaml:"perfectOverclocks"`

	// DisplayName describes the applied overclocks for end users, e.g.
	// "OC x2, Laser OC x1". Empty when no overclock applied.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// NoOverclock is the identity result: no extra scaling.
func NoOverclock() OverclockResult {
	return OverclockResult{SpeedMultiplier: 1, PowerMultiplier: 1}
}

// OverclockFunc computes extra speed/power scaling for one calculation.
// Implementations must be pure and terminate in bounded steps.
type OverclockFunc func(ctx coefficient.Context, tierBudget int) OverclockResult

// RewriteFunc transforms the recipe's item list before quantities are
// finalized. Implementations must be copy-on-write: the input slice and its
// records remain usable by the caller afterwards.
type RewriteFunc func(ctx coefficient.Context, choices map[string]float64, items []recipe.Item) []recipe.Item

// ConstraintFunc auto-corrects a choice-value map against the active recipe.
// It mutates only the supplied map, must be idempotent, and must never fail
// for any valid starting map.
type ConstraintFunc func(ctx coefficient.Context, choices map[string]float64)

// EligibleFunc decides whether a machine variant may process a recipe at
// all. It is pure and reads only recipe metadata tags.
type EligibleFunc func(r *recipe.Recipe) bool

// Definition is the immutable behavior bundle for one machine variant.
// Multiple registry names may alias the same instance.
type Definition struct {
	// Info is free text surfaced to end users documenting known simulation
	// gaps. Not used in computation.
	Info string

	// Choices declares the machine's user-adjustable parameters.
	Choices map[string]ChoiceSpec

	// Speed, Power, and Parallels are the machine's base coefficients.
	// An absent coefficient resolves to 1.
	Speed     coefficient.Coefficient
	Power     coefficient.Coefficient
	Parallels coefficient.Coefficient

	// PerfectOverclock optionally marks that many leading default-overclock
	// steps as power-free.
	PerfectOverclock coefficient.Coefficient

	// Overclock replaces the default overclock algorithm when set.
	Overclock OverclockFunc

	// Rewrite transforms recipe items when set; nil passes them through.
	Rewrite RewriteFunc

	// Constrain auto-corrects user choices against the recipe when set.
	Constrain ConstraintFunc

	// Eligible filters the recipes this variant may process; nil accepts all.
	Eligible EligibleFunc

	// IgnoreParallelLimit bypasses the caller's parallel-count cap.
	IgnoreParallelLimit bool

	// FixedVoltageTier pins the calculation to a tier regardless of the
	// caller's selection (steam-era machines). Nil follows the caller.
	FixedVoltageTier *int
}

// EnforceConstraints applies the machine's constraint enforcer to the
// supplied choice map. A nil enforcer is a no-op.
func (d *Definition) EnforceConstraints(ctx coefficient.Context, choices map[string]float64) {
	if d.Constrain != nil {
		d.Constrain(ctx, choices)
	}
}

// ValidateChoices checks every declared choice against its domain. It is
// meant to run after EnforceConstraints; out-of-domain values at that point
// are caller-visible configuration errors.
func (d *Definition) ValidateChoices(choices map[string]float64) error {
	for name, spec := range d.Choices {
		if err := spec.Validate(name, choices[name]); err != nil {
			return err
		}
	}
	return nil
}

// RewriteItems applies the machine's item rewriter. A nil rewriter returns
// the input slice unchanged.
func (d *Definition) RewriteItems(ctx coefficient.Context, choices map[string]float64, items []recipe.Item) []recipe.Item {
	if d.Rewrite == nil {
		return items
	}
	return d.Rewrite(ctx, choices, items)
}

// IsEligible reports whether the machine may process the recipe. A nil
// predicate accepts every recipe.
func (d *Definition) IsEligible(r *recipe.Recipe) bool {
	if d.Eligible == nil {
		return true
	}
	return d.Eligible(r)
}
