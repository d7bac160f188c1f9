package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/telemetry"
)

// Ledger is an append-only, thread-safe, deterministically hashed record
// of blueprint proposals. The zero value is not usable; construct one
// with New.
type Ledger struct {
	mu         sync.Mutex
	entries    []Entry
	lawVersion uint64
	sequence   uint64
	hasher     Hasher
	clock      func() time.Time
	newID      func() uuid.UUID
	sink       telemetry.Sink
	metrics    *telemetry.Metrics
}

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithHasher overrides the default xxhash-based Hasher.
func WithHasher(h Hasher) Option {
	return func(l *Ledger) { l.hasher = h }
}

// WithClock overrides time.Now for Timestamp generation (tests use this
// for determinism).
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) { l.clock = clock }
}

// WithEntryIDGenerator overrides uuid.New for EntryID generation (tests
// use this for determinism).
func WithEntryIDGenerator(gen func() uuid.UUID) Option {
	return func(l *Ledger) { l.newID = gen }
}

// WithSink attaches a telemetry.Sink notified of every append.
func WithSink(sink telemetry.Sink) Option {
	return func(l *Ledger) { l.sink = sink }
}

// WithMetrics attaches prometheus-backed telemetry.Metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// New constructs a Ledger with law version 1 and the given options
// applied.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		lawVersion: 1,
		hasher:     hashEntry,
		clock:      time.Now,
		newID:      uuid.New,
		sink:       telemetry.NoopSink(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = telemetry.NoopSink()
	}
	return l
}

// Append atomically increments the sequence index, computes the content
// hash, records the entry, and returns a copy of it. This is the ledger's
// only write path besides BumpLawVersion.
func (l *Ledger) Append(cp bezier.ControlPoints, lawNames []string, verdict law.Verdict, forgeName, blueprintType string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.sequence
	l.sequence++

	names := make([]string, len(lawNames))
	copy(names, lawNames)

	entry := Entry{
		EntryID:       l.newID(),
		Hash:          l.hasher(cp, l.lawVersion, names, verdict, seq),
		SequenceIndex: seq,
		ControlPoints: bezier.ControlPoints{P0: cp.P0.Clone(), P1: cp.P1.Clone(), P2: cp.P2.Clone(), P3: cp.P3.Clone()},
		LawVersion:    l.lawVersion,
		LawNames:      names,
		Verdict:       verdict,
		Timestamp:     l.clock(),
		ForgeName:     forgeName,
		BlueprintType: blueprintType,
	}
	l.entries = append(l.entries, entry)

	l.sink.OnLedgerAppend(telemetry.LedgerAppend{
		EntryID:       entry.EntryID,
		Hash:          entry.Hash,
		SequenceIndex: entry.SequenceIndex,
		LawVersion:    entry.LawVersion,
		ForgeName:     entry.ForgeName,
		BlueprintType: entry.BlueprintType,
		Verdict:       entry.Verdict,
		Timestamp:     entry.Timestamp,
	})
	if l.metrics != nil {
		l.metrics.ObserveLedgerAppend(entry.Verdict)
	}
	return entry
}

// Count returns the number of recorded entries.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Last returns the most recently appended entry, or false if the ledger
// is empty.
func (l *Ledger) Last() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Index returns the entry at sequence index i.
func (l *Ledger) Index(i int) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.entries) {
		return Entry{}, ledgerErrorf("Index", ErrIndexOutOfRange)
	}
	return l.entries[i], nil
}

// Filter is a predicate over an Entry, used by Entries.
type Filter func(Entry) bool

// ByForge matches entries whose ForgeName equals name.
func ByForge(name string) Filter {
	return func(e Entry) bool { return e.ForgeName == name }
}

// ByCommit matches committed entries.
func ByCommit() Filter {
	return func(e Entry) bool { return e.Verdict.IsCommit() }
}

// ByReject matches rejected entries.
func ByReject() Filter {
	return func(e Entry) bool { return e.Verdict.IsReject() }
}

// Entries returns a copy of the entries matching every given filter (an
// empty filter list returns all entries), in append order.
func (l *Ledger) Entries(filters ...Filter) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		matches := true
		for _, f := range filters {
			if !f(e) {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, e)
		}
	}
	return out
}

// FilterByForge returns all entries recorded for forgeName, in append
// order.
func (l *Ledger) FilterByForge(forgeName string) []Entry {
	return l.Entries(ByForge(forgeName))
}

// Commits returns all committed entries, in append order.
func (l *Ledger) Commits() []Entry {
	return l.Entries(ByCommit())
}

// Rejections returns all rejected entries, in append order.
func (l *Ledger) Rejections() []Entry {
	return l.Entries(ByReject())
}

// LawVersion returns the current law version.
func (l *Ledger) LawVersion() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lawVersion
}

// BumpLawVersion increments the law version and returns the new value;
// subsequent appends carry it.
func (l *Ledger) BumpLawVersion() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lawVersion++
	return l.lawVersion
}
