package overclock

import (
	"math"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// LaserAmperage returns the two-phase amperage/laser overclock. The
// available energy is the voltage table entry at the calculation's tier
// multiplied by the input amperage read from the named choice.
//
// Phase 1 takes regular steps (consumption x4, speed x2, power x2) while the
// next step still fits in the available energy and the voltage-tier headroom
// is not exhausted. Phase 2 takes laser steps with a growing multiplier
// 4.0 + 0.3*(n+1) (speed x2, power x multiplier/2), stopping when the next
// step would meet or exceed the available energy, or unconditionally once
// the total step count exceeds tierBudget + log4(amperage). The log4 term is
// evaluated on the raw amperage value, fractional amperages included.
func LaserAmperage(amperageChoice string) machine.OverclockFunc {
	return func(ctx coefficient.Context, tierBudget int) machine.OverclockResult {
		r := ctx.Recipe()

		amps := ctx.Choice(amperageChoice)
		if amps < 1 {
			amps = 1
		}
		available := recipe.Voltage(ctx.VoltageTier()) * amps
		consumption := r.EUt

		res := machine.NoOverclock()

		regular := 0
		for gap := headroom(ctx); consumption*4 < available && regular < gap; {
			consumption *= 4
			res.SpeedMultiplier *= 2
			res.PowerMultiplier *= 2
			regular++
		}

		stepLimit := float64(tierBudget) + math.Log(amps)/math.Log(4)
		laser := 0
		for {
			multiplier := 4.0 + 0.3*float64(laser+1)
			if consumption*multiplier >= available {
				break
			}
			consumption *= multiplier
			res.SpeedMultiplier *= 2
			res.PowerMultiplier *= multiplier / 2
			laser++
			if float64(regular+laser) > stepLimit {
				break
			}
		}

		res.DisplayName = joinDisplay(
			countLabel("OC", regular),
			countLabel("Laser OC", laser),
		)
		return res
	}
}
