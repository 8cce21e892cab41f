package overclock

import (
	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
)

// Gated returns a conditional algorithm for machines whose overclocking
// depends on a cooling (or similar) choice: with the gating choice at its
// lowest setting the machine takes no overclock at all, otherwise the inner
// algorithm applies. The gating choice's lowest setting is its zero value
// (option index 0 for discrete choices).
func Gated(choice string, inner machine.OverclockFunc) machine.OverclockFunc {
	identity := None()
	return func(ctx coefficient.Context, tierBudget int) machine.OverclockResult {
		if ctx.Choice(choice) <= 0 {
			return identity(ctx, tierBudget)
		}
		return inner(ctx, tierBudget)
	}
}
