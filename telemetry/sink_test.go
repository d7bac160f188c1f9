package telemetry_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/telemetry"
)

func TestNoopSinkDoesNothing(t *testing.T) {
	sink := telemetry.NoopSink()

	assert.NotPanics(t, func() {
		sink.OnVerify(law.Commit(), 3)
		sink.OnForge("invoice", "submit", law.Commit())
		sink.OnLedgerAppend(telemetry.LedgerAppend{Hash: "deadbeef"})
	})
}

func TestZerologSinkLogsVerifyOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sink := telemetry.NewZerologSink(logger)

	sink.OnVerify(law.Commit(), 5)
	assert.Contains(t, buf.String(), `"verdict":"commit"`)

	buf.Reset()
	sink.OnVerify(law.Reject(law.Witness{LawIndex: 2, LawName: "bounds", Time: 0.75}), 9)
	out := buf.String()
	assert.Contains(t, out, `"verdict":"reject"`)
	assert.Contains(t, out, `"law_name":"bounds"`)
}

func TestZerologSinkLogsForgeAndLedgerAppend(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sink := telemetry.NewZerologSink(logger)

	sink.OnForge("invoice", "submit", law.Commit())
	assert.Contains(t, buf.String(), `"forge":"submit"`)

	buf.Reset()
	sink.OnLedgerAppend(telemetry.LedgerAppend{
		Hash:          "cafebabe",
		SequenceIndex: 3,
		ForgeName:     "pay",
	})
	out := buf.String()
	assert.Contains(t, out, `"hash":"cafebabe"`)
	assert.Contains(t, out, `"sequence_index":3`)
}
