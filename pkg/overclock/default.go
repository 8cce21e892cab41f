package overclock

import (
	"fmt"
	"strings"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
)

// None returns the identity algorithm: no extra scaling, ever. Used by
// machines whose energy model is deliberately unmodeled (steam-era
// machines).
func None() machine.OverclockFunc {
	return func(coefficient.Context, int) machine.OverclockResult {
		return machine.NoOverclock()
	}
}

// Default returns the standard tier-based algorithm: one overclock step per
// tier of headroom between the calculation's voltage tier and the recipe's
// native tier, capped by the supplied budget. A regular step doubles speed
// and power; the perfect coefficient marks that many leading steps as
// perfect (speed x4, no power penalty).
func Default(perfect coefficient.Coefficient) machine.OverclockFunc {
	return func(ctx coefficient.Context, tierBudget int) machine.OverclockResult {
		steps := headroom(ctx)
		if steps > tierBudget {
			steps = tierBudget
		}

		perfectCount := 0
		if p, ok := perfect.ResolveOptional(ctx); ok && p > 0 {
			perfectCount = int(p)
		}

		res := machine.NoOverclock()
		for i := 0; i < steps; i++ {
			if i < perfectCount {
				res.SpeedMultiplier *= 4
				res.PerfectOverclocks++
			} else {
				res.SpeedMultiplier *= 2
				res.PowerMultiplier *= 2
			}
		}
		res.DisplayName = joinDisplay(
			countLabel("Perfect OC", res.PerfectOverclocks),
			countLabel("OC", steps-res.PerfectOverclocks),
		)
		return res
	}
}

// headroom returns the non-negative tier gap between the calculation and the
// recipe's native tier.
func headroom(ctx coefficient.Context) int {
	gap := ctx.VoltageTier() - ctx.Recipe().VoltageTier
	if gap < 0 {
		return 0
	}
	return gap
}

// countLabel formats a step counter, empty when zero.
func countLabel(label string, n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%s x%d", label, n)
}

// joinDisplay comma-joins non-empty display fragments.
func joinDisplay(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
