package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/law"
)

// Entry is one append-only ledger record. Entries are never mutated after
// Append returns them; Ledger.Entries and friends return copies of the
// slice header, not pointers into the live entry store.
type Entry struct {
	// EntryID is a random identifier minted at append time, independent
	// of Hash, for callers that want a stable handle without parsing the
	// content hash (spec §3's ledger-entry table plus the uuid
	// supplement in SPEC_FULL.md §2).
	EntryID uuid.UUID
	// Hash is the deterministic hex-encoded content hash described in
	// doc.go.
	Hash string
	// SequenceIndex is this entry's monotonically increasing position,
	// one of the hash's inputs.
	SequenceIndex uint64
	// ControlPoints is a copy of the control points verified for this
	// proposal; mutating the caller's original after Append does not
	// change this copy.
	ControlPoints bezier.ControlPoints
	// LawVersion is the ledger's law version at the time of this append.
	LawVersion uint64
	// LawNames is the ordered list of law names considered for this
	// proposal.
	LawNames []string
	// Verdict is the outcome: Commit or Reject(Witness).
	Verdict law.Verdict
	// Timestamp is when Append recorded this entry.
	Timestamp time.Time
	// ForgeName is the forge name the caller passed to Append (for a
	// free-form geometry proposal, the name given to MoveAlong), or empty
	// if the caller supplied none.
	ForgeName string
	// BlueprintType names the blueprint type that produced this entry,
	// or empty if the caller did not supply one.
	BlueprintType string
}
