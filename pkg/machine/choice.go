package machine

import (
	"math"

	cberrors "github.com/factorlab/craftbench/pkg/errors"
)

// ChoiceSpec declares one user-adjustable configuration axis on a machine:
// either an ordered set of labeled discrete options selected by index, or a
// bounded numeric range.
type ChoiceSpec struct {
	// Options holds the labels of a discrete choice, selected by index.
	// Empty for numeric choices.
	Options []string

	// Min is the lower bound of a numeric choice.
	Min float64

	// Max is the optional upper bound of a numeric choice.
	Max *float64
}

// Options declares a discrete choice with the given ordered labels.
func Options(labels ...string) ChoiceSpec {
	return ChoiceSpec{Options: labels}
}

// Numeric declares an unbounded-above numeric choice with the given floor.
func Numeric(min float64) ChoiceSpec {
	return ChoiceSpec{Min: min}
}

// NumericRange declares a numeric choice bounded on both sides.
func NumericRange(min, max float64) ChoiceSpec {
	return ChoiceSpec{Min: min, Max: &max}
}

// IsDiscrete reports whether the choice is index-valued.
func (s ChoiceSpec) IsDiscrete() bool {
	return len(s.Options) > 0
}

// Default returns the value a caller should assume when the user has not
// set the choice: index 0 for discrete choices, the floor for numeric ones.
func (s ChoiceSpec) Default() float64 {
	if s.IsDiscrete() {
		return 0
	}
	return s.Min
}

// Validate checks a resolved value against the declared domain. Discrete
// choices must resolve to an integer in [0, len(Options)); numeric choices
// must satisfy the declared bounds.
func (s ChoiceSpec) Validate(name string, v float64) error {
	if s.IsDiscrete() {
		idx := int(v)
		if float64(idx) != v || idx < 0 || idx >= len(s.Options) {
			return cberrors.NewWithContext(
				cberrors.ErrCodeInvalidChoice,
				"choice index outside declared option range",
				map[string]any{"choice": name, "value": v, "options": len(s.Options)},
			)
		}
		return nil
	}
	if math.IsNaN(v) || v < s.Min || (s.Max != nil && v > *s.Max) {
		return cberrors.NewWithContext(
			cberrors.ErrCodeInvalidChoice,
			"choice value outside declared numeric range",
			map[string]any{"choice": name, "value": v, "min": s.Min},
		)
	}
	return nil
}

// DefaultChoices returns a fresh choice-value map holding the default value
// of every declared choice, overlaid with the supplied raw user values.
func DefaultChoices(specs map[string]ChoiceSpec, raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(specs))
	for name, spec := range specs {
		out[name] = spec.Default()
	}
	for name, v := range raw {
		out[name] = v
	}
	return out
}
