// Package rule implements Rule, a named conjunction of labelled boolean
// conditions evaluated against a blueprint's current field values (spec
// §4.2), and Lower, the bridge from the declarative rule layer to the
// engine's law.Law form.
//
// A rule's conditions close over a field.Snapshot rather than mutable
// field references (spec §9's design note on closures over mutable
// state): Lower builds, for each Rule, a law.Law whose predicate decodes
// an arbitrary statevector.Vector back through the blueprint's
// field.Layout into a typed Snapshot and evaluates the rule against it.
// This is what lets the verification engine probe intermediate points
// along a forge's trajectory, not just its proposed end state.
package rule
