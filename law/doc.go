// Package law defines Law, Witness, and Verdict: the predicate layer
// engine.Verify checks a bezier.ControlPoints trajectory against, and the
// tagged-union result that check produces.
//
// A Law is a plain predicate over a statevector.Vector — Ωᵢ = {x :
// L.Predicate(x)} — plus an optional continuous Measure used only to
// estimate a repair direction once a violation is confirmed; a Measure,
// when present, must satisfy Measure(x) >= 0 iff Predicate(x) holds.
//
// Verdict and Witness are modeled as plain structs carrying an explicit
// tag rather than an interface hierarchy (spec design note: "Sum types...
// implement as such, not as class hierarchies"), the way lvlath's
// algorithms favor functional options and tagged config structs over
// polymorphic dispatch.
package law
