package overclock

import (
	"math"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
)

// PerfectTierDelta returns the tier-delta-capped perfect overclock used by
// the naquadah refinery, nano-forge, and PCB factory families.
//
// The perfect count is the gap between the building's tier parameter and the
// tier the recipe demands through the given metadata tag, never negative,
// further capped by the voltage-tier headroom. Speed multiplies by base per
// count; power is unchanged. The display name marks a count that hit the
// headroom cap.
func PerfectTierDelta(buildingTier int, metaKey string, base float64) machine.OverclockFunc {
	return func(ctx coefficient.Context, _ int) machine.OverclockResult {
		required := 0
		if v, ok := ctx.Recipe().Metadata(metaKey); ok {
			required = int(v)
		}

		count := buildingTier - required
		if count < 0 {
			count = 0
		}

		capped := false
		if gap := headroom(ctx); count > gap {
			count = gap
			capped = true
		}

		res := machine.OverclockResult{
			SpeedMultiplier:   math.Pow(base, float64(count)),
			PowerMultiplier:   1,
			PerfectOverclocks: count,
			DisplayName:       countLabel("Perfect OC", count),
		}
		if capped {
			res.DisplayName = joinDisplay(res.DisplayName, "(tier capped)")
		}
		return res
	}
}
