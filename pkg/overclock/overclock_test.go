package overclock

import (
	"math"
	"testing"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// stubContext is a minimal coefficient.Context for overclock tests.
type stubContext struct {
	rec     *recipe.Recipe
	tier    int
	choices map[string]float64
	budget  int
}

func (c *stubContext) Recipe() *recipe.Recipe      { return c.rec }
func (c *stubContext) VoltageTier() int            { return c.tier }
func (c *stubContext) Choices() map[string]float64 { return c.choices }
func (c *stubContext) Choice(name string) float64  { return c.choices[name] }
func (c *stubContext) ItemInputs() int             { return c.rec.InputCount() }
func (c *stubContext) ItemOutputs() int            { return c.rec.OutputCount() }
func (c *stubContext) TierBudget() int             { return c.budget }

func ctxAt(recipeTier, calcTier int, choices map[string]float64) *stubContext {
	if choices == nil {
		choices = map[string]float64{}
	}
	return &stubContext{
		rec:     &recipe.Recipe{ID: "test", VoltageTier: recipeTier},
		tier:    calcTier,
		choices: choices,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNone(t *testing.T) {
	fn := None()
	res := fn(ctxAt(recipe.TierLV, recipe.TierIV, nil), 10)
	if res.SpeedMultiplier != 1 || res.PowerMultiplier != 1 {
		t.Errorf("None() = %+v, want identity", res)
	}
}

func TestDefaultStepsCappedByHeadroom(t *testing.T) {
	fn := Default(coefficient.Coefficient{})

	// Two tiers of headroom, generous budget: two regular steps.
	res := fn(ctxAt(recipe.TierLV, recipe.TierHV, nil), 10)
	if res.SpeedMultiplier != 4 || res.PowerMultiplier != 4 {
		t.Errorf("got speed %v power %v, want 4/4", res.SpeedMultiplier, res.PowerMultiplier)
	}
	if res.DisplayName != "OC x2" {
		t.Errorf("DisplayName = %q, want OC x2", res.DisplayName)
	}
}

func TestDefaultStepsCappedByBudget(t *testing.T) {
	fn := Default(coefficient.Coefficient{})

	// Four tiers of headroom but budget 1: one step.
	res := fn(ctxAt(recipe.TierLV, recipe.TierIV, nil), 1)
	if res.SpeedMultiplier != 2 || res.PowerMultiplier != 2 {
		t.Errorf("got speed %v power %v, want 2/2", res.SpeedMultiplier, res.PowerMultiplier)
	}
}

func TestDefaultNoHeadroom(t *testing.T) {
	fn := Default(coefficient.Coefficient{})

	// Calculation below the recipe tier: no steps, no penalty.
	res := fn(ctxAt(recipe.TierEV, recipe.TierLV, nil), 10)
	if res.SpeedMultiplier != 1 || res.PowerMultiplier != 1 || res.DisplayName != "" {
		t.Errorf("got %+v, want identity", res)
	}
}

func TestDefaultPerfectSteps(t *testing.T) {
	fn := Default(coefficient.Literal(1))

	// Three steps, first one perfect: 4*2*2 speed, 1*2*2 power.
	res := fn(ctxAt(recipe.TierLV, recipe.TierEV, nil), 10)
	if res.SpeedMultiplier != 16 || res.PowerMultiplier != 4 {
		t.Errorf("got speed %v power %v, want 16/4", res.SpeedMultiplier, res.PowerMultiplier)
	}
	if res.PerfectOverclocks != 1 {
		t.Errorf("PerfectOverclocks = %d, want 1", res.PerfectOverclocks)
	}
	if res.DisplayName != "Perfect OC x1, OC x2" {
		t.Errorf("DisplayName = %q", res.DisplayName)
	}
}

func TestGated(t *testing.T) {
	inner := Default(coefficient.Coefficient{})
	fn := Gated("coolant", inner)

	// Gate closed: identity even with headroom.
	res := fn(ctxAt(recipe.TierLV, recipe.TierHV, map[string]float64{"coolant": 0}), 10)
	if res.SpeedMultiplier != 1 || res.PowerMultiplier != 1 {
		t.Errorf("gated-off = %+v, want identity", res)
	}

	// Gate open: inner algorithm applies.
	res = fn(ctxAt(recipe.TierLV, recipe.TierHV, map[string]float64{"coolant": 1}), 10)
	if res.SpeedMultiplier != 4 {
		t.Errorf("gated-on speed = %v, want 4", res.SpeedMultiplier)
	}
}

func TestPerfectTierDelta(t *testing.T) {
	rec := &recipe.Recipe{
		ID:          "mk1-fuel",
		VoltageTier: recipe.TierLV,
		Meta:        map[string]float64{recipe.MetaNaquadahTier: 1},
	}
	fn := PerfectTierDelta(3, recipe.MetaNaquadahTier, 4)

	// Building tier 3, recipe demands 1, plenty of headroom: two steps.
	ctx := &stubContext{rec: rec, tier: recipe.TierUV}
	res := fn(ctx, 0)
	if res.SpeedMultiplier != 16 || res.PowerMultiplier != 1 {
		t.Errorf("got speed %v power %v, want 16/1", res.SpeedMultiplier, res.PowerMultiplier)
	}
	if res.PerfectOverclocks != 2 {
		t.Errorf("PerfectOverclocks = %d, want 2", res.PerfectOverclocks)
	}
}

func TestPerfectTierDeltaHeadroomCap(t *testing.T) {
	rec := &recipe.Recipe{
		ID:          "mk1-fuel",
		VoltageTier: recipe.TierLV,
		Meta:        map[string]float64{recipe.MetaNaquadahTier: 1},
	}
	fn := PerfectTierDelta(3, recipe.MetaNaquadahTier, 4)

	// Only one tier of headroom caps the count at 1 and marks the display.
	ctx := &stubContext{rec: rec, tier: recipe.TierMV}
	res := fn(ctx, 0)
	if res.PerfectOverclocks != 1 || res.SpeedMultiplier != 4 {
		t.Errorf("got %+v, want one capped step", res)
	}
	if res.DisplayName != "Perfect OC x1, (tier capped)" {
		t.Errorf("DisplayName = %q", res.DisplayName)
	}
}

func TestPerfectTierDeltaUnderTiered(t *testing.T) {
	rec := &recipe.Recipe{
		ID:          "mk3-fuel",
		VoltageTier: recipe.TierLV,
		Meta:        map[string]float64{recipe.MetaNaquadahTier: 4},
	}
	fn := PerfectTierDelta(3, recipe.MetaNaquadahTier, 4)

	res := fn(&stubContext{rec: rec, tier: recipe.TierUV}, 0)
	if res.SpeedMultiplier != 1 || res.PerfectOverclocks != 0 {
		t.Errorf("got %+v, want no overclock for under-tiered building", res)
	}
}
