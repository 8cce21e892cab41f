package recipe

import "testing"

func TestItemKindPredicates(t *testing.T) {
	tests := []struct {
		kind     ItemKind
		isInput  bool
		isOutput bool
		isFluid  bool
	}{
		{kind: KindItemInput, isInput: true},
		{kind: KindItemOutput, isOutput: true},
		{kind: KindFluidInput, isInput: true, isFluid: true},
		{kind: KindFluidOutput, isOutput: true, isFluid: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsInput(); got != tt.isInput {
				t.Errorf("IsInput() = %v, want %v", got, tt.isInput)
			}
			if got := tt.kind.IsOutput(); got != tt.isOutput {
				t.Errorf("IsOutput() = %v, want %v", got, tt.isOutput)
			}
			if got := tt.kind.IsFluid(); got != tt.isFluid {
				t.Errorf("IsFluid() = %v, want %v", got, tt.isFluid)
			}
		})
	}
}

func TestRecipeCounts(t *testing.T) {
	r := &Recipe{
		Items: []Item{
			{Kind: KindItemInput, Goods: "iron-dust"},
			{Kind: KindFluidInput, Goods: "oxygen"},
			{Kind: KindItemOutput, Goods: "steel-ingot"},
			{Kind: KindFluidOutput, Goods: "carbon-dioxide"},
			{Kind: KindItemOutput, Goods: "slag"},
		},
	}

	if got := r.InputCount(); got != 2 {
		t.Errorf("InputCount() = %d, want 2", got)
	}
	if got := r.OutputCount(); got != 3 {
		t.Errorf("OutputCount() = %d, want 3", got)
	}
	if got := r.CountKind(KindItemOutput); got != 2 {
		t.Errorf("CountKind(KindItemOutput) = %d, want 2", got)
	}
}

func TestRecipeCountsNilReceiver(t *testing.T) {
	var r *Recipe
	if got := r.InputCount(); got != 0 {
		t.Errorf("nil InputCount() = %d, want 0", got)
	}
	if got := r.OutputCount(); got != 0 {
		t.Errorf("nil OutputCount() = %d, want 0", got)
	}
	if got := r.TotalEU(); got != 0 {
		t.Errorf("nil TotalEU() = %v, want 0", got)
	}
	if _, ok := r.Metadata("heat-k"); ok {
		t.Error("nil Metadata() should report absent")
	}
}

func TestRecipeMetadata(t *testing.T) {
	r := &Recipe{Meta: map[string]float64{MetaHeatK: 1800}}

	v, ok := r.Metadata(MetaHeatK)
	if !ok || v != 1800 {
		t.Errorf("Metadata(MetaHeatK) = (%v, %v), want (1800, true)", v, ok)
	}
	if _, ok := r.Metadata(MetaFusionTier); ok {
		t.Error("Metadata(MetaFusionTier) should report absent")
	}
}

func TestRecipeTotalEU(t *testing.T) {
	r := &Recipe{EUt: 120, DurationTicks: 400}
	if got := r.TotalEU(); got != 48000 {
		t.Errorf("TotalEU() = %v, want 48000", got)
	}
}
