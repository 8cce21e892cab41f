package recipe

// ItemKind identifies the role an item plays in a recipe.
type ItemKind string

// ItemKind constants for the four recipe item roles.
const (
	KindItemInput   ItemKind = "item-input"
	KindItemOutput  ItemKind = "item-output"
	KindFluidInput  ItemKind = "fluid-input"
	KindFluidOutput ItemKind = "fluid-output"
)

// IsInput reports whether the kind is consumed by the recipe.
func (k ItemKind) IsInput() bool {
	return k == KindItemInput || k == KindFluidInput
}

// IsOutput reports whether the kind is produced by the recipe.
func (k ItemKind) IsOutput() bool {
	return k == KindItemOutput || k == KindFluidOutput
}

// IsFluid reports whether the kind refers to a fluid rather than a solid item.
func (k ItemKind) IsFluid() bool {
	return k == KindFluidInput || k == KindFluidOutput
}

// Item is one recorded recipe input or output. Items are value records: they
// are read from the recipe, optionally cloned and edited by a machine's item
// rewriter, and never mutated after being returned.
type Item struct {
	// Kind tags the item role (item/fluid, input/output).
	Kind ItemKind `json:"kind" yaml:"kind"`

	// Goods references the underlying goods definition by identifier.
	Goods string `json:"goods" yaml:"goods"`

	// Slot is the item's position within its kind group.
	Slot int `json:"slot" yaml:"slot"`

	// Quantity is the item count (or liters for fluids).
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// Probability is the success chance of this item, in (0, 1].
	// Omitted values normalize to 1 when the recipe is loaded.
	Probability float64 `json:"probability,omitempty" yaml:"probability,omitempty"`
}

// Recipe is one crafting operation definition. Recipes are immutable once
// loaded; machine rewriters operate on copies of the item list.
type Recipe struct {
	// ID is the unique recipe identifier.
	ID string `json:"id" yaml:"id"`

	// Type is the recipe category (e.g. "blast-furnace", "fusion").
	Type string `json:"type" yaml:"type"`

	// VoltageTier is the recipe's native voltage tier index.
	VoltageTier int `json:"voltageTier" yaml:"voltageTier"`

	// EUt is the nominal energy draw per tick at the native tier.
	EUt float64 `json:"eut" yaml:"eut"`

	// DurationTicks is the nominal processing time in ticks.
	DurationTicks float64 `json:"durationTicks" yaml:"durationTicks"`

	// Items lists the recipe inputs and outputs.
	Items []Item `json:"items" yaml:"items"`

	// Meta holds named numeric metadata tags (heat, startup cost, etc.).
	Meta map[string]float64 `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Metadata returns the named numeric metadata tag and whether it is present.
func (r *Recipe) Metadata(key string) (float64, bool) {
	if r == nil || r.Meta == nil {
		return 0, false
	}
	v, ok := r.Meta[key]
	return v, ok
}

// CountKind returns the number of items of the given kind.
func (r *Recipe) CountKind(kind ItemKind) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, it := range r.Items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// InputCount returns the number of item and fluid inputs.
func (r *Recipe) InputCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, it := range r.Items {
		if it.Kind.IsInput() {
			n++
		}
	}
	return n
}

// OutputCount returns the number of item and fluid outputs.
func (r *Recipe) OutputCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, it := range r.Items {
		if it.Kind.IsOutput() {
			n++
		}
	}
	return n
}

// TotalEU returns the nominal energy consumed by one full operation.
func (r *Recipe) TotalEU() float64 {
	if r == nil {
		return 0
	}
	return r.EUt * r.DurationTicks
}
