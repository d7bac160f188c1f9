// Package blueprint implements the blueprint runtime (spec §4.6): a
// typed object definition of fields, rules, and forges, and the
// forge(name) orchestration that ties the field, rule, engine, and
// ledger packages together into one proposal lifecycle.
//
// Forge(name) follows spec §4.6 steps 1-10: register fields once,
// look up the named forge (an unknown name is a domain reject, not a
// panic — spec §7), begin a transaction on every field, run the forge
// body collecting an ordered ForgeAction list, short-circuit on the
// first explicit Reject/ConditionalReject, else snapshot P0/P3,
// build a linear trajectory, lower rules against the proposed end
// state, invoke the engine, and commit or roll back every field before
// appending one ledger entry.
//
// MoveAlong bypasses steps 3-7 for free-form geometry supplied directly
// by the caller (the navigator's move_along in spec §4.6's closing
// paragraph): it verifies an explicit ControlPoints against the
// blueprint's laws and, on commit, writes the named position fields, in
// order, to the coordinates of the curve's end state.
package blueprint
