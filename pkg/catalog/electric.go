package catalog

import (
	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/overclock"
	"github.com/factorlab/craftbench/pkg/rewrite"
)

// simple builds a plain electric singleblock: base coefficients of 1 and the
// default overclock.
func simple() *machine.Definition {
	return &machine.Definition{
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
	}
}

func registerElectric(reg *machine.Registry) {
	reg.Register("Macerator", simple())
	reg.Register("Compressor", simple())
	reg.Register("Assembling Machine", simple())
	reg.Register("Chemical Reactor", simple())
	reg.Register("Arc Furnace", simple())
	reg.Register("Distillery", simple())
	reg.Register("Fluid Heater", simple())

	reg.Register("Cutting Machine", &machine.Definition{
		Choices: map[string]machine.ChoiceSpec{
			"lubricant": machine.Options("Water", "Distilled Water", "Lubricant"),
		},
		Speed: formula(func(_ coefficient.Context, choices map[string]float64) float64 {
			switch choices["lubricant"] {
			case 2:
				return 1
			case 1:
				return 0.75
			default:
				return 0.5
			}
		}),
		Power:     lit(1),
		Parallels: lit(1),
	})

	reg.Register("Dissolution Tank", &machine.Definition{
		Info: "Solute ratio checks are not enforced; pick the pressure the recipe expects.",
		Choices: map[string]machine.ChoiceSpec{
			"pressure": machine.Options("Normal", "High"),
		},
		Speed: formula(func(_ coefficient.Context, choices map[string]float64) float64 {
			if choices["pressure"] == 1 {
				return 1.25
			}
			return 0.625
		}),
		Power:     lit(1),
		Parallels: lit(1),
	})

	// Lossless overclocking at every tier.
	reg.Register("Large Chemical Reactor", &machine.Definition{
		Speed:            lit(1),
		Power:            lit(1),
		Parallels:        lit(1),
		PerfectOverclock: fullBudgetPerfect(),
	})

	reg.Register("Industrial Maceration Stack", &machine.Definition{
		Speed: lit(1.6),
		Power: lit(1),
		Parallels: formula(func(ctx coefficient.Context, _ map[string]float64) float64 {
			return float64(8 * (ctx.VoltageTier() + 1))
		}),
	})

	reg.Register("Ore Washing Plant", &machine.Definition{
		Speed:     lit(2),
		Power:     lit(1),
		Parallels: lit(4),
	})

	// Assumes hatches are topped up every batch, hence the fluid scaling.
	reg.Register("Industrial Brewery", &machine.Definition{
		Speed:     lit(1.5),
		Power:     lit(0.75),
		Parallels: lit(6),
		Rewrite:   rewrite.ScaleFluids(2),
	})

	reg.Register("Pyrolyse Oven", &machine.Definition{
		Choices: map[string]machine.ChoiceSpec{
			"coil": machine.Options(coilNames...),
		},
		Speed: formula(func(_ coefficient.Context, choices map[string]float64) float64 {
			return 0.5 * (choices["coil"] + 1)
		}),
		Power:     lit(1),
		Parallels: lit(1),
	})

	reg.Register("Cryogenic Freezer", &machine.Definition{
		Info: "Coolant is consumed per operation in game; only the speed effect is modeled.",
		Choices: map[string]machine.ChoiceSpec{
			"coolant": machine.Options("None", "Subcooled Helium"),
		},
		Speed: formula(func(_ coefficient.Context, choices map[string]float64) float64 {
			return 1 + choices["coolant"]
		}),
		Power:     lit(1),
		Parallels: lit(1),
		Overclock: overclock.Gated("coolant", overclock.Default(coefficient.Coefficient{})),
	})

	// Early table entry; the processing line below supersedes it deliberately.
	reg.Register("Distillation Tower", &machine.Definition{
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
	})
}
