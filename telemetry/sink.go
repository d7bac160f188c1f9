package telemetry

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaredlewiswechs/newtonfield/law"
)

// LedgerAppend carries the fields of a ledger.Entry that are relevant to
// a Sink, without importing package ledger (which itself accepts a
// Sink) — this keeps the dependency one-directional.
type LedgerAppend struct {
	EntryID       uuid.UUID
	Hash          string
	SequenceIndex uint64
	LawVersion    uint64
	ForgeName     string
	BlueprintType string
	Verdict       law.Verdict
	Timestamp     time.Time
}

// Sink receives structured notifications from engine.Engine,
// blueprint.Blueprint, and ledger.Ledger. Implementations must be safe
// for concurrent use, since a Ledger may be shared across blueprints
// (spec §5).
type Sink interface {
	// OnVerify is called after every engine verification with its
	// verdict and the deepest subdivision depth the run reached.
	OnVerify(verdict law.Verdict, maxDepthReached int)
	// OnForge is called after every blueprint.Forge call with the
	// blueprint's type name, the forge name, and the resulting verdict.
	OnForge(blueprintType, forgeName string, verdict law.Verdict)
	// OnLedgerAppend is called after every ledger append.
	OnLedgerAppend(entry LedgerAppend)
}

type noopSink struct{}

func (noopSink) OnVerify(law.Verdict, int)           {}
func (noopSink) OnForge(string, string, law.Verdict) {}
func (noopSink) OnLedgerAppend(LedgerAppend)         {}

// NoopSink returns a Sink whose methods do nothing, the default for
// engine.Engine, blueprint.Blueprint, and ledger.Ledger.
func NoopSink() Sink {
	return noopSink{}
}

// zerologSink adapts zerolog.Logger to Sink, grounded on
// BaoNinh2808-gnark's backend structured-logging style.
type zerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink wraps logger as a Sink.
func NewZerologSink(logger zerolog.Logger) Sink {
	return zerologSink{logger: logger}
}

func (s zerologSink) OnVerify(verdict law.Verdict, maxDepthReached int) {
	event := s.logger.Debug().
		Str("verdict", verdict.Kind.String()).
		Int("max_depth_reached", maxDepthReached)
	if verdict.IsReject() {
		event = event.
			Int("law_index", verdict.Witness.LawIndex).
			Str("law_name", verdict.Witness.LawName).
			Float64("time", verdict.Witness.Time)
	}
	event.Msg("newtonfield: verify")
}

func (s zerologSink) OnForge(blueprintType, forgeName string, verdict law.Verdict) {
	s.logger.Info().
		Str("blueprint_type", blueprintType).
		Str("forge", forgeName).
		Str("verdict", verdict.Kind.String()).
		Msg("newtonfield: forge")
}

func (s zerologSink) OnLedgerAppend(entry LedgerAppend) {
	s.logger.Debug().
		Str("entry_id", entry.EntryID.String()).
		Str("hash", entry.Hash).
		Uint64("sequence_index", entry.SequenceIndex).
		Uint64("law_version", entry.LawVersion).
		Str("forge", entry.ForgeName).
		Msg("newtonfield: ledger append")
}
