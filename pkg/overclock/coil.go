package overclock

import (
	"math"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/recipe"
)

const (
	coilMinTier = 0
	coilMaxTier = 13
)

// RecipeCoilTier derives the base coil tier a blast recipe demands from its
// heat tag. Recipes without a heat tag demand tier 0.
func RecipeCoilTier(r *recipe.Recipe) int {
	heat, ok := r.Metadata(recipe.MetaHeatK)
	if !ok {
		return coilMinTier
	}
	return CoilTierForHeat(heat)
}

// CoilTierForHeat maps a heat requirement in kelvin to a coil tier: tier 0
// covers heat up to 1800K, each further 900K one tier more, clamped into
// [0, 13].
func CoilTierForHeat(heat float64) int {
	tier := int(math.Floor((heat - 901) / 900))
	if tier < coilMinTier {
		return coilMinTier
	}
	if tier > coilMaxTier {
		return coilMaxTier
	}
	return tier
}

// CoilDecay returns the coil-tier power-decay overclock used by the electric
// blast furnace family. Every two coil tiers above the recipe's base coil
// tier turn one overclock step perfect; the power multiplier decays by 0.95
// per surplus coil tier and exceeds 1 when the coils are under-tiered.
// Regular tier-based doubling still applies up to the budget.
func CoilDecay(coilChoice string) machine.OverclockFunc {
	return func(ctx coefficient.Context, tierBudget int) machine.OverclockResult {
		delta := int(ctx.Choice(coilChoice)) - RecipeCoilTier(ctx.Recipe())

		perfect := 0
		if delta > 0 {
			perfect = delta / 2
		}

		steps := headroom(ctx)
		if steps > tierBudget {
			steps = tierBudget
		}

		res := machine.NoOverclock()
		for i := 0; i < steps; i++ {
			if i < perfect {
				res.SpeedMultiplier *= 4
			} else {
				res.SpeedMultiplier *= 2
				res.PowerMultiplier *= 2
			}
		}
		res.PowerMultiplier *= math.Pow(0.95, float64(delta))
		res.PerfectOverclocks = perfect

		used := min(perfect, steps)
		res.DisplayName = joinDisplay(
			countLabel("Perfect OC", used),
			countLabel("OC", steps-used),
		)
		return res
	}
}
