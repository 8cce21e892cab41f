package recipe

import "strings"

// Voltage tier indexes. Higher tiers run recipes faster and larger.
const (
	TierULV = iota
	TierLV
	TierMV
	TierHV
	TierEV
	TierIV
	TierLuV
	TierZPM
	TierUV
	TierUHV
	TierUEV
	TierUIV
	TierUXV
	TierMAX
)

// tierNames is the canonical tier display order.
var tierNames = []string{
	"ULV", "LV", "MV", "HV", "EV", "IV", "LuV",
	"ZPM", "UV", "UHV", "UEV", "UIV", "UXV", "MAX",
}

// TierCount is the number of voltage tiers in the table.
const TierCount = 14

// Voltage returns the nominal voltage for a tier index. Each tier carries
// four times the voltage of the one below it, starting at 8 for ULV.
// Out-of-range tiers clamp to the table bounds.
func Voltage(tier int) float64 {
	if tier < 0 {
		tier = 0
	}
	if tier >= TierCount {
		tier = TierCount - 1
	}
	v := 8.0
	for i := 0; i < tier; i++ {
		v *= 4
	}
	return v
}

// TierName returns the display name for a tier index, or "?" when the index
// is outside the table.
func TierName(tier int) string {
	if tier < 0 || tier >= len(tierNames) {
		return "?"
	}
	return tierNames[tier]
}

// ParseTier resolves a tier display name to its index. Matching is
// case-insensitive. The second return value reports whether the name was
// recognized.
func ParseTier(name string) (int, bool) {
	for i, n := range tierNames {
		if strings.EqualFold(n, name) {
			return i, true
		}
	}
	return 0, false
}
