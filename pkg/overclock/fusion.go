package overclock

import (
	"math"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// fusionStartupThresholds maps fusion startup cost in EU to reactor tiers:
// costs at or below threshold i demand tier i+1.
var fusionStartupThresholds = []float64{160e6, 320e6, 640e6}

const fusionMaxTier = 4

// Fusion returns the fusion-reactor multiplier-per-tier-gap overclock for a
// reactor of the given fixed mark. The tier a recipe demands is the maximum
// of three independent signals: its declared plasma tier tag, the tier its
// startup cost implies, and the tier its native voltage implies. Speed
// multiplies by base per tier of surplus; power is unchanged.
func Fusion(fixedTier int, base float64) machine.OverclockFunc {
	return func(ctx coefficient.Context, _ int) machine.OverclockResult {
		required := RecipeFusionTier(ctx.Recipe())

		count := fixedTier - required
		if count < 0 {
			count = 0
		}

		return machine.OverclockResult{
			SpeedMultiplier:   math.Pow(base, float64(count)),
			PowerMultiplier:   1,
			PerfectOverclocks: count,
			DisplayName:       countLabel("Fusion OC", count),
		}
	}
}

// RecipeFusionTier derives the reactor tier a fusion recipe demands.
func RecipeFusionTier(r *recipe.Recipe) int {
	tier := 1

	if v, ok := r.Metadata(recipe.MetaFusionTier); ok && int(v) > tier {
		tier = int(v)
	}

	if startup, ok := r.Metadata(recipe.MetaFusionStartupEU); ok {
		t := fusionMaxTier
		for i, threshold := range fusionStartupThresholds {
			if startup <= threshold {
				t = i + 1
				break
			}
		}
		if t > tier {
			tier = t
		}
	}

	// LuV-native recipes imply mark 1, each tier above one mark more.
	if t := r.VoltageTier - recipe.TierLuV + 1; t > tier {
		tier = t
	}

	return tier
}
