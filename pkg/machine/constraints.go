package machine

import "github.com/factorlab/craftbench/pkg/coefficient"

// Constraint combinators. Each returned ConstraintFunc mutates only the
// supplied choice map and is idempotent, so any composition of them is too.

// AllConstraints applies the given enforcers in order.
func AllConstraints(fns ...ConstraintFunc) ConstraintFunc {
	return func(ctx coefficient.Context, choices map[string]float64) {
		for _, fn := range fns {
			fn(ctx, choices)
		}
	}
}

// FloorFromMetadata raises a choice to a floor derived from a recipe
// metadata tag. The transform maps the raw tag value to the choice domain;
// recipes without the tag leave the choice untouched.
func FloorFromMetadata(choice, metaKey string, transform func(float64) float64) ConstraintFunc {
	return func(ctx coefficient.Context, choices map[string]float64) {
		raw, ok := ctx.Recipe().Metadata(metaKey)
		if !ok {
			return
		}
		required := raw
		if transform != nil {
			required = transform(raw)
		}
		if choices[choice] < required {
			choices[choice] = required
		}
	}
}

// Implies forces one choice's value whenever another choice holds a
// triggering value (mutual exclusion expressed as implication).
func Implies(when string, whenValue float64, then string, thenValue float64) ConstraintFunc {
	return func(_ coefficient.Context, choices map[string]float64) {
		if choices[when] == whenValue {
			choices[then] = thenValue
		}
	}
}

// ClampToOutputs narrows an index choice to the recipe's output count, for
// choices that select one of the recipe's output slots (index 0 reserved for
// "none"). This is a documented auto-repair rule, not a validation error.
func ClampToOutputs(choice string) ConstraintFunc {
	return func(ctx coefficient.Context, choices map[string]float64) {
		limit := float64(ctx.ItemOutputs())
		if choices[choice] > limit {
			choices[choice] = limit
		}
	}
}
