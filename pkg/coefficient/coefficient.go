package coefficient

import "github.com/factorlab/craftbench/pkg/recipe"

// Context supplies the computation inputs a coefficient formula may read.
// Implementations are owned per-calculation by the caller; the core never
// mutates them except through the constraint-enforcer contract.
type Context interface {
	// Recipe returns the active recipe.
	Recipe() *recipe.Recipe

	// VoltageTier returns the effective voltage tier of the calculation.
	VoltageTier() int

	// Choices returns the resolved choice-value map. Discrete choices are
	// stored as their option index.
	Choices() map[string]float64

	// Choice returns the resolved value of a single named choice, or 0 when
	// the choice is absent.
	Choice(name string) float64

	// ItemInputs returns the number of recipe inputs (items and fluids).
	ItemInputs() int

	// ItemOutputs returns the number of recipe outputs (items and fluids).
	ItemOutputs() int

	// TierBudget returns the overclock tier budget available.
	TierBudget() int
}

// Func is a pure coefficient formula. It must be total for any valid context
// and must not read external mutable state beyond the supplied arguments.
type Func func(ctx Context, choices map[string]float64) float64

// Coefficient is either a literal number or a formula.
// The zero Coefficient is absent; resolving it yields the caller's fallback.
type Coefficient struct {
	literal float64
	formula Func
	set     bool
}

// Literal returns a constant coefficient. Literals are trusted as-is and are
// never floor-clamped.
func Literal(v float64) Coefficient {
	return Coefficient{literal: v, set: true}
}

// FromFunc returns a formula coefficient.
func FromFunc(f Func) Coefficient {
	return Coefficient{formula: f, set: true}
}

// IsSet reports whether the coefficient is present.
func (c Coefficient) IsSet() bool {
	return c.set
}

// Resolve evaluates the coefficient with the default floor of 0.
func (c Coefficient) Resolve(ctx Context) float64 {
	return c.ResolveFloor(ctx, 0)
}

// ResolveFloor evaluates the coefficient. Literals are returned unchanged;
// formula results below floor clamp to floor.
func (c Coefficient) ResolveFloor(ctx Context, floor float64) float64 {
	if c.formula == nil {
		return c.literal
	}
	v := c.formula(ctx, ctx.Choices())
	if v < floor {
		return floor
	}
	return v
}

// ResolveOptional evaluates the coefficient when present. An absent
// coefficient returns (0, false) without invoking anything.
func (c Coefficient) ResolveOptional(ctx Context) (float64, bool) {
	if !c.set {
		return 0, false
	}
	return c.Resolve(ctx), true
}

// ResolveOr evaluates the coefficient when present, or returns fallback.
func (c Coefficient) ResolveOr(ctx Context, fallback float64) float64 {
	if !c.set {
		return fallback
	}
	return c.Resolve(ctx)
}
