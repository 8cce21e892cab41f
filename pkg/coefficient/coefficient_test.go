package coefficient

import (
	"testing"

	"github.com/factorlab/craftbench/pkg/recipe"
)

// fakeContext is a minimal Context for coefficient tests.
type fakeContext struct {
	rec     *recipe.Recipe
	tier    int
	choices map[string]float64
	budget  int
}

func (c *fakeContext) Recipe() *recipe.Recipe      { return c.rec }
func (c *fakeContext) VoltageTier() int            { return c.tier }
func (c *fakeContext) Choices() map[string]float64 { return c.choices }
func (c *fakeContext) Choice(name string) float64  { return c.choices[name] }
func (c *fakeContext) ItemInputs() int             { return c.rec.InputCount() }
func (c *fakeContext) ItemOutputs() int            { return c.rec.OutputCount() }
func (c *fakeContext) TierBudget() int             { return c.budget }

func testCtx() *fakeContext {
	return &fakeContext{
		rec:     &recipe.Recipe{ID: "test", VoltageTier: recipe.TierHV},
		tier:    recipe.TierEV,
		choices: map[string]float64{"coil": 3},
		budget:  2,
	}
}

func TestLiteralResolve(t *testing.T) {
	c := Literal(2.2)
	if got := c.Resolve(testCtx()); got != 2.2 {
		t.Errorf("Resolve() = %v, want 2.2", got)
	}
}

func TestLiteralBypassesFloor(t *testing.T) {
	// Literals are trusted as-is even below the floor.
	c := Literal(-1)
	if got := c.ResolveFloor(testCtx(), 0); got != -1 {
		t.Errorf("ResolveFloor() = %v, want -1", got)
	}
}

func TestFromFuncResolve(t *testing.T) {
	c := FromFunc(func(ctx Context, choices map[string]float64) float64 {
		return choices["coil"] * 2
	})
	if got := c.Resolve(testCtx()); got != 6 {
		t.Errorf("Resolve() = %v, want 6", got)
	}
}

func TestFromFuncFloorsNegative(t *testing.T) {
	c := FromFunc(func(Context, map[string]float64) float64 { return -5 })
	if got := c.Resolve(testCtx()); got != 0 {
		t.Errorf("Resolve() = %v, want 0 (floored)", got)
	}
	if got := c.ResolveFloor(testCtx(), 1); got != 1 {
		t.Errorf("ResolveFloor(1) = %v, want 1", got)
	}
}

func TestZeroCoefficientIsAbsent(t *testing.T) {
	var c Coefficient
	if c.IsSet() {
		t.Error("zero Coefficient should be absent")
	}
	if _, ok := c.ResolveOptional(testCtx()); ok {
		t.Error("ResolveOptional on absent coefficient should report false")
	}
	if got := c.ResolveOr(testCtx(), 7); got != 7 {
		t.Errorf("ResolveOr() = %v, want fallback 7", got)
	}
}

func TestResolveOrPresent(t *testing.T) {
	c := Literal(3)
	if got := c.ResolveOr(testCtx(), 7); got != 3 {
		t.Errorf("ResolveOr() = %v, want 3", got)
	}
}

func TestFormulaReadsContext(t *testing.T) {
	c := FromFunc(func(ctx Context, _ map[string]float64) float64 {
		return float64(ctx.VoltageTier() + ctx.TierBudget())
	})
	if got := c.Resolve(testCtx()); got != float64(recipe.TierEV+2) {
		t.Errorf("Resolve() = %v, want %v", got, recipe.TierEV+2)
	}
}

func TestFormulaPurity(t *testing.T) {
	// Resolving twice with the same context yields the same value.
	c := FromFunc(func(ctx Context, choices map[string]float64) float64 {
		return choices["coil"] + float64(ctx.VoltageTier())
	})
	ctx := testCtx()
	first := c.Resolve(ctx)
	second := c.Resolve(ctx)
	if first != second {
		t.Errorf("coefficient not stable: %v vs %v", first, second)
	}
}
