// Package rewrite provides the recipe item rewriters machines use to adjust
// recipe inputs and outputs before quantities are finalized.
//
// Every rewriter is copy-on-write: the item list a rewriter receives, and
// the records in it, remain usable by the caller afterwards. Rewriters are
// invoked with the current choice-value map after constraint enforcement.
package rewrite
