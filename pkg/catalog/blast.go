package catalog

import (
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/overclock"
	"github.com/factorlab/craftbench/pkg/recipe"
	"github.com/factorlab/craftbench/pkg/rewrite"
)

// blastChoices is the shared choice set of the heated blast multiblocks:
// the installed coil tier and the muffler hatch tier controlling how much of
// the CO2 byproduct escapes.
func blastChoices() map[string]machine.ChoiceSpec {
	return map[string]machine.ChoiceSpec{
		"coil":    machine.Options(coilNames...),
		"muffler": machine.Options("LV", "MV", "HV", "EV", "IV", "LuV", "ZPM", "UV"),
	}
}

// blastConstraints raises the coil choice to the tier the recipe's heat
// demands. Re-applying is a no-op once the floor holds.
func blastConstraints() machine.ConstraintFunc {
	return machine.FloorFromMetadata("coil", recipe.MetaHeatK, func(heat float64) float64 {
		return float64(overclock.CoilTierForHeat(heat))
	})
}

func registerBlast(reg *machine.Registry) {
	reg.Register("Electric Blast Furnace", &machine.Definition{
		Choices:   blastChoices(),
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
		Overclock: overclock.CoilDecay("coil"),
		Constrain: blastConstraints(),
		Rewrite:   rewrite.ByproductFraction("muffler", "carbon-dioxide", 0.125),
		Eligible:  requiresTag(recipe.MetaHeatK),
	})

	reg.Register("Volcanus", &machine.Definition{
		Info:      "Pyrotheum consumption is not modeled.",
		Choices:   blastChoices(),
		Speed:     lit(2.2),
		Power:     lit(0.9),
		Parallels: lit(8),
		Overclock: overclock.CoilDecay("coil"),
		Constrain: blastConstraints(),
		Rewrite:   rewrite.ByproductFraction("muffler", "carbon-dioxide", 0.125),
		Eligible:  requiresTag(recipe.MetaHeatK),
	})

	reg.Register("Mega Blast Furnace", &machine.Definition{
		Choices:             blastChoices(),
		Speed:               lit(1),
		Power:               lit(1),
		Parallels:           lit(256),
		Overclock:           overclock.CoilDecay("coil"),
		Constrain:           blastConstraints(),
		Rewrite:             rewrite.ByproductFraction("muffler", "carbon-dioxide", 0.125),
		Eligible:            requiresTag(recipe.MetaHeatK),
		IgnoreParallelLimit: true,
	})
}
