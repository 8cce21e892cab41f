package cli

import (
	"testing"

	"github.com/factorlab/craftbench/pkg/catalog"
	"github.com/factorlab/craftbench/pkg/recipe"
)

func TestParseTierArg(t *testing.T) {
	tests := []struct {
		arg     string
		def     int
		want    int
		wantErr bool
	}{
		{arg: "", def: recipe.TierMV, want: recipe.TierMV},
		{arg: "LV", want: recipe.TierLV},
		{arg: "lv", want: recipe.TierLV},
		{arg: "luv", want: recipe.TierLuV},
		{arg: "3", want: 3},
		{arg: "0", want: 0},
		{arg: "13", want: 13},
		{arg: "14", wantErr: true},
		{arg: "-1", wantErr: true},
		{arg: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseTierArg(tt.arg, tt.def)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseTierArg(%q) expected error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTierArg(%q) failed: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("parseTierArg(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseChoiceArgs(t *testing.T) {
	choices, err := parseChoiceArgs([]string{"coil=3", "MUFFLER=1", " amperage = 16 "})
	if err != nil {
		t.Fatalf("parseChoiceArgs failed: %v", err)
	}
	if choices["coil"] != 3 {
		t.Errorf("coil = %v, want 3", choices["coil"])
	}
	// Names are case-folded to match the catalog's lowercase convention.
	if choices["muffler"] != 1 {
		t.Errorf("muffler = %v, want 1", choices["muffler"])
	}
	if choices["amperage"] != 16 {
		t.Errorf("amperage = %v, want 16", choices["amperage"])
	}
}

func TestParseChoiceArgsEmpty(t *testing.T) {
	choices, err := parseChoiceArgs(nil)
	if err != nil {
		t.Fatalf("parseChoiceArgs(nil) failed: %v", err)
	}
	if choices != nil {
		t.Errorf("expected nil map, got %v", choices)
	}
}

func TestParseChoiceArgsInvalid(t *testing.T) {
	if _, err := parseChoiceArgs([]string{"coil"}); err == nil {
		t.Error("expected error for missing '='")
	}
	if _, err := parseChoiceArgs([]string{"coil=three"}); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestResolveMachineName(t *testing.T) {
	reg := catalog.New()

	tests := []struct {
		input string
		want  string
	}{
		{input: "Macerator", want: "Macerator"},
		{input: "macerator", want: "Macerator"},
		{input: "electric blast furnace", want: "Electric Blast Furnace"},
		// Unknown names pass through for the engine's suggestion path.
		{input: "macerater", want: "macerater"},
	}

	for _, tt := range tests {
		if got := resolveMachineName(reg, tt.input); got != tt.want {
			t.Errorf("resolveMachineName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
