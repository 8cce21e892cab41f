package catalog

import (
	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// New builds the full machine registry. Call once at startup; the returned
// registry is read-only afterwards.
func New() *machine.Registry {
	reg := machine.NewRegistry()
	registerSteam(reg)
	registerElectric(reg)
	registerBlast(reg)
	registerFusion(reg)
	registerAdvanced(reg)
	return reg
}

// Coefficient shorthands for the table.

func lit(v float64) coefficient.Coefficient {
	return coefficient.Literal(v)
}

func formula(f coefficient.Func) coefficient.Coefficient {
	return coefficient.FromFunc(f)
}

func fixedTier(t int) *int {
	return &t
}

// fullBudgetPerfect marks every default-overclock step perfect, for machines
// that overclock losslessly at any tier.
func fullBudgetPerfect() coefficient.Coefficient {
	return formula(func(ctx coefficient.Context, _ map[string]float64) float64 {
		return float64(ctx.TierBudget())
	})
}

// requiresTag accepts only recipes carrying the metadata tag.
func requiresTag(key string) machine.EligibleFunc {
	return func(r *recipe.Recipe) bool {
		_, ok := r.Metadata(key)
		return ok
	}
}

// tagAtMost accepts recipes whose tag is absent or at most max.
func tagAtMost(key string, max float64) machine.EligibleFunc {
	return func(r *recipe.Recipe) bool {
		v, ok := r.Metadata(key)
		return !ok || v <= max
	}
}

// requiresTagAtMost accepts only recipes carrying the tag with value at most max.
func requiresTagAtMost(key string, max float64) machine.EligibleFunc {
	return func(r *recipe.Recipe) bool {
		v, ok := r.Metadata(key)
		return ok && v <= max
	}
}

// coilNames is the coil choice domain shared by the heated multiblocks.
var coilNames = []string{
	"Cupronickel", "Kanthal", "Nichrome", "TPV-Alloy", "HSS-G",
	"Naquadah", "Naquadah Alloy", "Trinium", "Electrum Flux", "Awakened Draconium",
	"Infinity", "Hypogen", "Eternal", "Universium",
}
