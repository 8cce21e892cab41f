package rewrite

import (
	"math"

	"github.com/factorlab/craftbench/pkg/coefficient"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/recipe"
)

// clone copies the item list. Items are value records, so copying the slice
// copies every record.
func clone(items []recipe.Item) []recipe.Item {
	return append([]recipe.Item(nil), items...)
}

// Chain composes rewriters left to right. Each stage is itself
// copy-on-write, so the chain never touches the original list.
func Chain(fns ...machine.RewriteFunc) machine.RewriteFunc {
	return func(ctx coefficient.Context, choices map[string]float64, items []recipe.Item) []recipe.Item {
		for _, fn := range fns {
			items = fn(ctx, choices, items)
		}
		return items
	}
}

// ScaleFluids scales every fluid quantity by a fixed multiplier, for
// machines whose simulation assumes a full batch fill of their hatches.
func ScaleFluids(mult float64) machine.RewriteFunc {
	return func(_ coefficient.Context, _ map[string]float64, items []recipe.Item) []recipe.Item {
		out := clone(items)
		for i := range out {
			if out[i].Kind.IsFluid() {
				out[i].Quantity *= mult
			}
		}
		return out
	}
}

// ByproductFraction recomputes the quantity of the named byproduct output as
// a fraction of a pollution-control choice: each step of the choice removes
// perStep of the byproduct, down to zero.
func ByproductFraction(choice, goods string, perStep float64) machine.RewriteFunc {
	return func(ctx coefficient.Context, choices map[string]float64, items []recipe.Item) []recipe.Item {
		factor := 1 - perStep*choices[choice]
		if factor < 0 {
			factor = 0
		}
		out := clone(items)
		for i := range out {
			if out[i].Kind.IsOutput() && out[i].Goods == goods {
				out[i].Quantity *= factor
			}
		}
		return out
	}
}

// InjectCatalyst appends a synthetic catalyst fluid input sized by the
// recipe's energy accounting (one liter per euPerLiter of consumed energy)
// and, when residueGoods is non-empty, a residue fluid output rounded down
// to whole liters.
func InjectCatalyst(catalystGoods string, euPerLiter float64, residueGoods string) machine.RewriteFunc {
	return func(ctx coefficient.Context, _ map[string]float64, items []recipe.Item) []recipe.Item {
		liters := ctx.Recipe().TotalEU() / euPerLiter

		out := clone(items)
		out = append(out, recipe.Item{
			Kind:        recipe.KindFluidInput,
			Goods:       catalystGoods,
			Slot:        nextSlot(out, recipe.KindFluidInput),
			Quantity:    liters,
			Probability: 1,
		})
		if residueGoods != "" {
			out = append(out, recipe.Item{
				Kind:        recipe.KindFluidOutput,
				Goods:       residueGoods,
				Slot:        nextSlot(out, recipe.KindFluidOutput),
				Quantity:    math.Floor(liters),
				Probability: 1,
			})
		}
		return out
	}
}

// nextSlot returns the first free slot index for the given item kind.
func nextSlot(items []recipe.Item, kind recipe.ItemKind) int {
	n := 0
	for _, it := range items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// FocusOutputs redistributes success probability across the recipe's
// weighted outputs under a focus mechanic. The focus choice selects one of
// the recipe's output slots (index 0 means unfocused); the focused output's
// weight multiplies by factor and all output probabilities renormalize so
// the total probability mass is preserved, individual values capped at 1.
func FocusOutputs(choice string, factor float64) machine.RewriteFunc {
	return func(_ coefficient.Context, choices map[string]float64, items []recipe.Item) []recipe.Item {
		target := int(choices[choice])
		if target <= 0 {
			return items
		}

		var outputs []int
		total := 0.0
		for i, it := range items {
			if it.Kind.IsOutput() {
				outputs = append(outputs, i)
				total += it.Probability
			}
		}
		if target > len(outputs) || total <= 0 {
			return items
		}
		focused := outputs[target-1]

		weighted := 0.0
		for _, i := range outputs {
			w := items[i].Probability
			if i == focused {
				w *= factor
			}
			weighted += w
		}

		out := clone(items)
		for _, i := range outputs {
			w := out[i].Probability
			if i == focused {
				w *= factor
			}
			p := w / weighted * total
			if p > 1 {
				p = 1
			}
			out[i].Probability = p
		}
		return out
	}
}

// FloorOutputs floors every integer-counted item output quantity, applied
// after a non-integer production multiplier.
func FloorOutputs() machine.RewriteFunc {
	return func(_ coefficient.Context, _ map[string]float64, items []recipe.Item) []recipe.Item {
		out := clone(items)
		for i := range out {
			if out[i].Kind == recipe.KindItemOutput {
				out[i].Quantity = math.Floor(out[i].Quantity)
			}
		}
		return out
	}
}
