package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/ledger"
	"github.com/jaredlewiswechs/newtonfield/statevector"
)

func sampleCP(t *testing.T) bezier.ControlPoints {
	t.Helper()
	cp, err := bezier.Linear(statevector.New(1, 1), statevector.New(3, 3))
	require.NoError(t, err)
	return cp
}

func TestAppendIsMonotonicallyIndexed(t *testing.T) {
	l := ledger.New()
	cp := sampleCP(t)

	e1 := l.Append(cp, []string{"x positive"}, law.Commit(), "submit", "invoice")
	e2 := l.Append(cp, []string{"x positive"}, law.Commit(), "approve", "invoice")

	assert.Equal(t, uint64(0), e1.SequenceIndex)
	assert.Equal(t, uint64(1), e2.SequenceIndex)
	assert.Equal(t, 2, l.Count())
}

// Invariant 9: ledger monotonicity. Two consecutive appends of identical
// content yield distinct hashes because their sequence indices differ.
func TestIdenticalContentDistinctHashes(t *testing.T) {
	l := ledger.New()
	cp := sampleCP(t)
	verdict := law.Commit()

	e1 := l.Append(cp, []string{"x positive"}, verdict, "submit", "invoice")
	e2 := l.Append(cp, []string{"x positive"}, verdict, "submit", "invoice")

	assert.NotEqual(t, e1.Hash, e2.Hash)
}

// Invariant 10: determinism. Same (inputs, sequence index, law version)
// yield the same hash.
func TestSameSequenceIndexYieldsSameHash(t *testing.T) {
	fixedClock := func() time.Time { return time.Unix(0, 0) }
	fixedID := func() uuid.UUID { return uuid.Nil }

	l1 := ledger.New(ledger.WithClock(fixedClock), ledger.WithEntryIDGenerator(fixedID))
	l2 := ledger.New(ledger.WithClock(fixedClock), ledger.WithEntryIDGenerator(fixedID))
	cp := sampleCP(t)
	verdict := law.Commit()

	e1 := l1.Append(cp, []string{"x positive"}, verdict, "submit", "invoice")
	e2 := l2.Append(cp, []string{"x positive"}, verdict, "submit", "invoice")

	assert.Equal(t, e1.Hash, e2.Hash)
	assert.Equal(t, e1.Timestamp, e2.Timestamp)
}

func TestFilterByForgeAndVerdict(t *testing.T) {
	l := ledger.New()
	cp := sampleCP(t)

	l.Append(cp, nil, law.Commit(), "submit", "invoice")
	l.Append(cp, nil, law.Reject(law.Witness{Reason: "bad"}), "pay", "invoice")
	l.Append(cp, nil, law.Commit(), "submit", "invoice")

	submits := l.FilterByForge("submit")
	assert.Len(t, submits, 2)

	commits := l.Commits()
	assert.Len(t, commits, 2)

	rejections := l.Rejections()
	require.Len(t, rejections, 1)
	assert.Equal(t, "pay", rejections[0].ForgeName)
}

func TestLastAndIndex(t *testing.T) {
	l := ledger.New()
	cp := sampleCP(t)

	_, err := l.Index(0)
	assert.Error(t, err)
	_, ok := l.Last()
	assert.False(t, ok)

	l.Append(cp, nil, law.Commit(), "submit", "invoice")
	last, ok := l.Last()
	require.True(t, ok)

	first, err := l.Index(0)
	require.NoError(t, err)
	assert.Equal(t, last.Hash, first.Hash)

	_, err = l.Index(1)
	assert.ErrorIs(t, err, ledger.ErrIndexOutOfRange)
}

func TestBumpLawVersionIsMonotonicAndCarriesForward(t *testing.T) {
	l := ledger.New()
	cp := sampleCP(t)

	assert.Equal(t, uint64(1), l.LawVersion())
	e1 := l.Append(cp, nil, law.Commit(), "submit", "invoice")
	assert.Equal(t, uint64(1), e1.LawVersion)

	newVersion := l.BumpLawVersion()
	assert.Equal(t, uint64(2), newVersion)

	e2 := l.Append(cp, nil, law.Commit(), "submit", "invoice")
	assert.Equal(t, uint64(2), e2.LawVersion)
}

func TestAppendIsSafeForConcurrentUse(t *testing.T) {
	l := ledger.New()
	cp := sampleCP(t)

	const n = 50
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			l.Append(cp, nil, law.Commit(), "submit", "invoice")
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	assert.Equal(t, n, l.Count())

	seen := make(map[uint64]bool, n)
	for _, e := range l.Entries() {
		assert.Falsef(t, seen[e.SequenceIndex], "duplicate sequence index %d", e.SequenceIndex)
		seen[e.SequenceIndex] = true
	}
}
