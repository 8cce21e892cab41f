package machine

import (
	"testing"

	cberrors "github.com/factorlab/craftbench/pkg/errors"
	"github.com/factorlab/craftbench/pkg/recipe"
)

func TestDefinitionValidateChoices(t *testing.T) {
	def := &Definition{Choices: map[string]ChoiceSpec{
		"coil": Options("a", "b"),
		"amps": Numeric(1),
	}}

	if err := def.ValidateChoices(map[string]float64{"coil": 1, "amps": 16}); err != nil {
		t.Errorf("valid choices rejected: %v", err)
	}

	err := def.ValidateChoices(map[string]float64{"coil": 5, "amps": 16})
	if err == nil {
		t.Fatal("expected error for out-of-range option index")
	}
	if !cberrors.IsCode(err, cberrors.ErrCodeInvalidChoice) {
		t.Errorf("expected INVALID_CHOICE, got %v", err)
	}
}

func TestDefinitionNilHooks(t *testing.T) {
	def := &Definition{}
	rec := &recipe.Recipe{ID: "r"}
	items := []recipe.Item{{Kind: recipe.KindItemOutput, Goods: "x", Quantity: 1}}

	// Nil enforcer is a no-op.
	def.EnforceConstraints(nil, map[string]float64{})

	// Nil rewriter passes items through unchanged.
	got := def.RewriteItems(nil, nil, items)
	if len(got) != 1 || got[0].Goods != "x" {
		t.Errorf("RewriteItems() = %v, want pass-through", got)
	}

	// Nil eligibility accepts everything.
	if !def.IsEligible(rec) {
		t.Error("nil Eligible must accept every recipe")
	}
}

func TestDefinitionEligible(t *testing.T) {
	def := &Definition{Eligible: func(r *recipe.Recipe) bool {
		return r.VoltageTier >= recipe.TierLuV
	}}

	if def.IsEligible(&recipe.Recipe{VoltageTier: recipe.TierHV}) {
		t.Error("expected HV recipe rejected")
	}
	if !def.IsEligible(&recipe.Recipe{VoltageTier: recipe.TierZPM}) {
		t.Error("expected ZPM recipe accepted")
	}
}

func TestNoOverclock(t *testing.T) {
	res := NoOverclock()
	if res.SpeedMultiplier != 1 || res.PowerMultiplier != 1 {
		t.Errorf("NoOverclock() = %+v, want identity multipliers", res)
	}
	if res.PerfectOverclocks != 0 || res.DisplayName != "" {
		t.Errorf("NoOverclock() = %+v, want zero extras", res)
	}
}
