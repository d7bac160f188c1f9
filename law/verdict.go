package law

import "github.com/jaredlewiswechs/newtonfield/statevector"

// Kind tags a Verdict's variant.
type Kind int

const (
	// KindCommit tags a Verdict carrying no witness: the trajectory lies
	// entirely inside the lawful region.
	KindCommit Kind = iota
	// KindReject tags a Verdict carrying a Witness that locates the
	// first confirmed violation.
	KindReject
)

// String renders the Kind as "commit" or "reject" for logging.
func (k Kind) String() string {
	if k == KindCommit {
		return "commit"
	}
	return "reject"
}

// UnknownLawIndex is the sentinel LawIndex used by synthetic witnesses
// (depth exceeded, unknown forge) that do not point at a real law. §9:
// "consumers should not attempt to map -1 to a real law."
const UnknownLawIndex = -1

// Witness locates the first violation a Reject verdict certifies.
type Witness struct {
	// LawIndex is the position of the failing law in the list passed to
	// Verify, or UnknownLawIndex for a synthetic witness.
	LawIndex int
	// LawName is the failing law's name, or empty for a synthetic
	// witness.
	LawName string
	// Time is the curve parameter t* in [0,1] at which the violation was
	// certified.
	Time float64
	// State is the violating point γ(t*).
	State statevector.Vector
	// Repair is an advisory nudge direction over the control point with
	// the largest Bernstein weight at Time, or nil if the failing law
	// has no continuous Measure.
	Repair statevector.Vector
	// Reason is a human-readable explanation. Its wording is not part of
	// the contract; callers should assert on LawName/Time, not on Reason.
	Reason string
}

// Verdict is the tagged result of a verification: Commit, or
// Reject(Witness).
type Verdict struct {
	Kind    Kind
	Witness Witness
}

// Commit returns the accepting verdict.
func Commit() Verdict {
	return Verdict{Kind: KindCommit}
}

// Reject returns the rejecting verdict carrying w.
func Reject(w Witness) Verdict {
	return Verdict{Kind: KindReject, Witness: w}
}

// IsCommit reports whether v is the accepting variant.
func (v Verdict) IsCommit() bool {
	return v.Kind == KindCommit
}

// IsReject reports whether v is the rejecting variant.
func (v Verdict) IsReject() bool {
	return v.Kind == KindReject
}
