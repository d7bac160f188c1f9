// Package field implements Value (the typed union a blueprint field
// holds) and Cell (a transactional two-slot field: committed, plus an
// optional proposed value while a forge is in flight), together with
// Layout, the ordered collection of Cells a blueprint.Blueprint
// registers and that is encoded into a statevector.Vector for
// verification.
//
// Cell's contract (spec §4.5):
//
//	BeginForge()  marks the cell as forging and clears any prior proposal.
//	Write(v)      stores v as the proposal while forging, else overwrites
//	              the committed value directly.
//	Read()        returns the proposal if forging and set, else committed.
//	Commit()      promotes the proposal to committed, clears forging.
//	Rollback()    discards the proposal, clears forging. Committed value
//	              is untouched.
//
// Typed encoding to a double (spec §3): decimal/integer/double pass
// through their numeric value; boolean encodes 1.0/0.0 (decode threshold
// 0.5); a labelled string attached to an ordered StatePath encodes as the
// zero-based index of its current label in that path.
package field
