// Package newtonfield is a library for verifying whether a proposed
// state transition of a multi-dimensional object is admissible with
// respect to a set of declarative laws, by certifying that a cubic
// Bézier trajectory between the current and proposed state lies
// entirely within the lawful region.
//
// Subpackages, leaves first:
//
//	value/      — exact decimal scalar with conversion to double
//	statevector/ — fixed-dimension vector of doubles with arithmetic
//	bezier/     — cubic control points, evaluation, derivative, De Casteljau split
//	law/        — a named predicate over state vectors, plus Verdict/Witness
//	engine/     — the Newton verification engine: recursive subdivision
//	              with hull quick-accept/quick-reject and a depth budget
//	field/      — transactional field cells with typed encoding, and Layout
//	rule/       — named boolean conditions over field snapshots, lowered to laws
//	blueprint/  — the forge runtime: field transaction, engine, ledger
//	ledger/     — append-only, thread-safe, deterministically hashed entry log
//	telemetry/  — optional structured logging and prometheus metrics
//
// A minimal geometric client, bypassing the field and blueprint layers
// entirely:
//
//	cp, _ := bezier.Linear(statevector.New(1, 1), statevector.New(3, 3))
//	laws := []law.Law{
//		law.New("x positive", func(x statevector.Vector) bool { return x[0] > 0 }),
//		law.New("y positive", func(x statevector.Vector) bool { return x[1] > 0 }),
//	}
//	verdict := engine.Verify(cp, laws)
//
// Package blueprint builds the full forge runtime (fields, rules, forges
// and ledger) on top of these layers.
package newtonfield
