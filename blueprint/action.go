package blueprint

// ActionKind tags a ForgeAction's variant.
type ActionKind int

const (
	// ActionCommit marks a forge body step that does not itself object;
	// the blueprint runtime treats its absence the same way, so bodies
	// need not emit it explicitly.
	ActionCommit ActionKind = iota
	// ActionReject unconditionally rejects the proposal.
	ActionReject
	// ActionConditionalReject rejects the proposal, naming the predicate
	// that triggered it for the ledger's reject reason.
	ActionConditionalReject
)

// ForgeAction is one action a forge body emits, in order (spec §4.6
// step 4): Commit, Reject(reason), or ConditionalReject(predicateName,
// reason). Implemented as a tagged struct per spec §9's design note on
// sum types, not a class hierarchy.
type ForgeAction struct {
	Kind          ActionKind
	PredicateName string
	Reason        string
}

// CommitAction returns a no-op ActionCommit marker.
func CommitAction() ForgeAction {
	return ForgeAction{Kind: ActionCommit}
}

// RejectAction returns an unconditional ActionReject carrying reason.
func RejectAction(reason string) ForgeAction {
	return ForgeAction{Kind: ActionReject, Reason: reason}
}

// ConditionalRejectAction returns an ActionConditionalReject naming the
// predicate that triggered it.
func ConditionalRejectAction(predicateName, reason string) ForgeAction {
	return ForgeAction{Kind: ActionConditionalReject, PredicateName: predicateName, Reason: reason}
}

// IsRejecting reports whether a is a Reject or ConditionalReject action.
func (a ForgeAction) IsRejecting() bool {
	return a.Kind == ActionReject || a.Kind == ActionConditionalReject
}
