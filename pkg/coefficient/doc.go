// Package coefficient implements the coefficient resolution protocol shared
// by every machine hook.
//
// A Coefficient is either a literal number or a pure formula evaluated
// against a computation Context. Literals are trusted constants and bypass
// the floor clamp; formula results below the floor clamp to it. Resolution
// never caches: every call re-evaluates the formula.
package coefficient
