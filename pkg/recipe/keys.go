package recipe

// Well-known recipe metadata tag keys. Tags are numeric annotations used by
// machine eligibility predicates, constraint enforcers, and overclock
// algorithms.
const (
	// MetaHeatK is the coil heat a blast recipe requires, in kelvin.
	MetaHeatK = "heat-k"

	// MetaFusionTier is the declared plasma tier of a fusion recipe.
	MetaFusionTier = "fusion-tier"

	// MetaFusionStartupEU is the fusion startup cost in EU.
	MetaFusionStartupEU = "fusion-startup-eu"

	// MetaCompressionTier is the minimum compression tier (HIP/black hole).
	MetaCompressionTier = "compression-tier"

	// MetaNaquadahTier is the refinery stage of a naquadah fuel recipe.
	MetaNaquadahTier = "naquadah-tier"

	// MetaNanoTier is the nano-forge tier a recipe requires.
	MetaNanoTier = "nano-tier"

	// MetaPCBTier is the PCB factory upgrade tier a recipe requires.
	MetaPCBTier = "pcb-tier"
)
