// Package value implements Decimal, an exact base-10 scalar used by
// field.Cell for monetary and other fixed-point quantities that must not
// accumulate binary floating-point error before a blueprint's fields are
// encoded into a statevector.Vector for Bézier verification.
//
// Decimal wraps math/big.Rat. No ecosystem decimal library appears
// anywhere in the retrieval pack this module was built from (see
// DESIGN.md), so this is the one place in newtonfield that reaches for the
// standard library where the rest of the module reaches for a pack
// dependency instead.
package value
