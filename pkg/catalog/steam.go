package catalog

import (
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/overclock"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// steamInfo is shared by the whole steam era: their boiler economy is not
// simulated, so energy figures are nominal.
const steamInfo = "Steam consumption and boiler throughput are not modeled; power figures are nominal."

// steamMachine builds one steam-era bundle. Steam machines run at a pinned
// LV-equivalent tier and never overclock.
func steamMachine(speed float64) *machine.Definition {
	return &machine.Definition{
		Info:             steamInfo,
		Speed:            lit(speed),
		Power:            lit(1),
		Parallels:        lit(1),
		Overclock:        overclock.None(),
		FixedVoltageTier: fixedTier(recipe.TierLV),
	}
}

func registerSteam(reg *machine.Registry) {
	reg.Register("Steam Macerator", steamMachine(0.5))
	reg.Register("Steam Compressor", steamMachine(0.5))
	reg.Register("Steam Forge Hammer", steamMachine(0.5))
	reg.Register("Steam Alloy Smelter", steamMachine(0.5))

	// High pressure variants run twice as fast for twice the (unmodeled) steam.
	reg.Register("High Pressure Steam Macerator", steamMachine(1))
	reg.Register("High Pressure Steam Compressor", steamMachine(1))
	reg.Register("High Pressure Steam Forge Hammer", steamMachine(1))

	primitive := &machine.Definition{
		Info:             "Charcoal burn time is not modeled.",
		Speed:            lit(0.25),
		Power:            lit(1),
		Parallels:        lit(1),
		Overclock:        overclock.None(),
		Eligible:         requiresTagAtMost(recipe.MetaHeatK, 1800),
		FixedVoltageTier: fixedTier(recipe.TierULV),
	}
	reg.Register("Bricked Blast Furnace", primitive)
}
