// Package engine runs the machine evaluation pipeline: it resolves a machine
// from the registry, repairs and validates the caller's choices, evaluates
// the speed/power/parallels coefficients, applies the machine's custom or
// the default overclock algorithm, caps parallels, and rewrites the recipe's
// item list.
//
// A single evaluation is strictly sequential; evaluations for different
// recipes or machines share no state beyond the read-only registry and may
// run fully in parallel.
package engine
