package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaredlewiswechs/newtonfield/field"
	"github.com/jaredlewiswechs/newtonfield/rule"
	"github.com/jaredlewiswechs/newtonfield/statevector"
	"github.com/jaredlewiswechs/newtonfield/value"
)

func TestRuleEvaluateAllConditionsHold(t *testing.T) {
	positive := rule.NewCondition("amount positive", func(s field.Snapshot) bool {
		amount, _ := s.Get("amount")
		v, _ := amount.Decimal()
		return v.Cmp(value.Zero) > 0
	})
	r := rule.New("valid amount", positive)

	snapshot := field.Snapshot{"amount": field.NewDecimal(value.NewFromInt(100))}
	ok, reason := r.Evaluate(snapshot)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestRuleEvaluateReportsFirstFailure(t *testing.T) {
	never := rule.NewCondition("always false", func(field.Snapshot) bool { return false })
	always := rule.NewCondition("always true", func(field.Snapshot) bool { return true })
	r := rule.New("gate", never, always)

	ok, reason := r.Evaluate(field.Snapshot{})
	assert.False(t, ok)
	assert.Equal(t, "always false", reason)
}

func TestLowerDecodesSnapshotFromLayout(t *testing.T) {
	layout := field.NewLayout()
	_, err := layout.Add("amount", field.NewDecimal(value.NewFromInt(100)), nil)
	require.NoError(t, err)
	_, err = layout.Add("approved", field.NewBool(false), nil)
	require.NoError(t, err)
	layout.Register()

	requiresApproval := rule.New("large amounts need approval", rule.NewCondition(
		"approved when over threshold",
		func(s field.Snapshot) bool {
			amount, _ := s.Get("amount")
			amt, _ := amount.Decimal()
			approved, _ := s.Get("approved")
			isApproved, _ := approved.Bool()
			return amt.Cmp(value.NewFromInt(10000)) <= 0 || isApproved
		},
	))

	laws := rule.Lower([]rule.Rule{requiresApproval}, layout)
	require.Len(t, laws, 1)

	underThreshold := statevector.New(100, 0)
	assert.True(t, laws[0].Holds(underThreshold))

	overUnapproved := statevector.New(15000, 0)
	assert.False(t, laws[0].Holds(overUnapproved))

	overApproved := statevector.New(15000, 1)
	assert.True(t, laws[0].Holds(overApproved))
}

func TestLowerRejectsOnDimensionMismatch(t *testing.T) {
	layout := field.NewLayout()
	_, err := layout.Add("x", field.NewFloat(0), nil)
	require.NoError(t, err)
	layout.Register()

	tautology := rule.New("always", rule.NewCondition("true", func(field.Snapshot) bool { return true }))
	laws := rule.Lower([]rule.Rule{tautology}, layout)

	assert.False(t, laws[0].Holds(statevector.New(1, 2)))
}
