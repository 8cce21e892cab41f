package catalog

import (
	"fmt"

	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/overclock"
	"github.com/factorlab/craftbench/pkg/recipe"
)

var fusionMarks = []string{"I", "II", "III"}

// fusionReactor builds one reactor mark. The mark bounds which recipes the
// reactor may even start (its eligibility) and feeds the per-tier-gap
// overclock.
func fusionReactor(mark int) *machine.Definition {
	return &machine.Definition{
		Info:      "Startup energy is paid once per batch in game; it is not amortized here.",
		Speed:     lit(1),
		Power:     lit(1),
		Parallels: lit(1),
		Overclock: overclock.Fusion(mark, 2),
		Eligible: func(r *recipe.Recipe) bool {
			return overclock.RecipeFusionTier(r) <= mark
		},
	}
}

func registerFusion(reg *machine.Registry) {
	for i, roman := range fusionMarks {
		mark := i + 1
		reg.Register(fmt.Sprintf("Fusion Reactor Mk-%s", roman), fusionReactor(mark))
	}

	// The compact array trades the x2 base for x4 at a fixed mark.
	array := fusionReactor(4)
	array.Overclock = overclock.Fusion(4, 4)
	array.Parallels = lit(64)
	reg.Register("Advanced Fusion Array", array)
}
