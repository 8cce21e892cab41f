// Package recipe provides the read-only recipe and goods data model consumed
// by the machine behavior engine.
//
// A Recipe describes one crafting operation: its input and output items, its
// native voltage tier, its energy draw, and a set of named numeric metadata
// tags (coil heat, fusion startup cost, compression tier, and so on) used by
// machine eligibility predicates and overclock algorithms.
//
// The package also owns the voltage tier table (ULV through MAX) and an
// embedded YAML fixture store loaded once per process.
package recipe
