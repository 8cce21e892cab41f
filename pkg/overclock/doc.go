// Package overclock implements the overclock algorithms machines use to
// compute extra speed/power scaling beyond their base coefficients.
//
// Every algorithm is a parameterized constructor returning an immutable
// machine.OverclockFunc bound to its tier parameters. All algorithms are
// pure per invocation and terminate in bounded steps: the laser two-phase
// search is bounded by an explicit tier-budget check, everything else is
// closed-form.
package overclock
