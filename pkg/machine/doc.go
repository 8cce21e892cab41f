// Package machine defines the polymorphic machine capability model: the
// immutable behavior bundle each machine variant contributes (coefficients,
// choice specs, and the optional overclock, rewriter, constraint, and
// eligibility hooks) plus the process-wide registry that maps machine names
// to bundles.
//
// Definitions are created once at startup and never mutated afterwards; the
// registry is safe for unlimited concurrent reads once constructed. Absent
// hooks have documented defaults: no custom overclock means the caller's
// default algorithm applies, no rewriter passes items through unchanged, no
// constraint enforcer means no constraints, and no eligibility predicate
// means the machine accepts every recipe.
package machine
