package catalog

import (
	"fmt"
	"math"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/overclock"
	"github.com/factorlab/craftbench/pkg/recipe"
	"github.com/factorlab/craftbench/pkg/rewrite"
)

func registerAdvanced(reg *machine.Registry) {
	reg.Register("Naquadah Fuel Refinery", &machine.Definition{
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
		Overclock: overclock.PerfectTierDelta(3, recipe.MetaNaquadahTier, 4),
		Eligible:  requiresTagAtMost(recipe.MetaNaquadahTier, 3),
	})

	for t := 1; t <= 3; t++ {
		reg.Register(fmt.Sprintf("Nano-Forge T%d", t), &machine.Definition{
			Speed:     lit(1),
			Power:     lit(1),
			Parallels: lit(1),
			Overclock: overclock.PerfectTierDelta(t, recipe.MetaNanoTier, 4),
			Eligible:  requiresTagAtMost(recipe.MetaNanoTier, float64(t)),
		})
	}

	for t := 1; t <= 3; t++ {
		reg.Register(fmt.Sprintf("PCB Factory T%d", t), &machine.Definition{
			Info: "Cooling upgrades beyond the nanite bath are not modeled.",
			Choices: map[string]machine.ChoiceSpec{
				"nanites": machine.NumericRange(1, 1<<30),
			},
			Speed: lit(1),
			Power: lit(1),
			Parallels: formula(func(_ coefficient.Context, choices map[string]float64) float64 {
				return math.Sqrt(choices["nanites"])
			}),
			Overclock: overclock.PerfectTierDelta(t, recipe.MetaPCBTier, 4),
			Eligible:  requiresTagAtMost(recipe.MetaPCBTier, float64(t)),
		})
	}

	reg.Register("Quantum Force Transformer", &machine.Definition{
		Info: "Catalyst quality tiers are collapsed into a single catalyst fluid.",
		Choices: map[string]machine.ChoiceSpec{
			"focus": machine.Options("None", "Output 1", "Output 2", "Output 3", "Output 4"),
		},
		Speed:            lit(1),
		Power:            lit(1),
		Parallels:        lit(64),
		PerfectOverclock: fullBudgetPerfect(),
		Constrain:        machine.ClampToOutputs("focus"),
		Rewrite: rewrite.Chain(
			rewrite.InjectCatalyst("quantum-catalyst", 1e6, "depleted-catalyst"),
			rewrite.FocusOutputs("focus", 4),
			rewrite.FloorOutputs(),
		),
	})

	reg.Register("Industrial Laser Engraver", &machine.Definition{
		Info: "Laser source hatches above 4096A are not simulated.",
		Choices: map[string]machine.ChoiceSpec{
			"amperage": machine.NumericRange(1, 4096),
		},
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
		Overclock: overclock.LaserAmperage("amperage"),
	})

	hip := &machine.Definition{
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
		Eligible:  tagAtMost(recipe.MetaCompressionTier, 1),
	}
	reg.Register("Hot Isostatic Pressurizer", hip)

	reg.Register("Black Hole Compressor", &machine.Definition{
		Speed:            lit(1),
		Power:            lit(1),
		Parallels:        lit(1),
		PerfectOverclock: fullBudgetPerfect(),
		Eligible:         tagAtMost(recipe.MetaCompressionTier, 2),
	})

	mixer := &machine.Definition{
		Speed:     lit(3.5),
		Power:     lit(1),
		Parallels: lit(8),
	}
	reg.Register("Industrial Mixing Machine", mixer)
	// Renamed in a later version; both names stay valid and share the bundle.
	reg.Register("Industrial Mixer", mixer)

	// Supersedes the plain entry registered with the electric singleblocks;
	// relies on the registry's last-write-wins rule.
	reg.Register("Distillation Tower", &machine.Definition{
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(4),
		Rewrite:   rewrite.FloorOutputs(),
	})
}
