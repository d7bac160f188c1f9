package rule

import (
	"github.com/jaredlewiswechs/newtonfield/field"
	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/statevector"
)

// Condition is one labelled boolean test over a field.Snapshot.
type Condition struct {
	Name  string
	Check func(field.Snapshot) bool
}

// NewCondition constructs a Condition.
func NewCondition(name string, check func(field.Snapshot) bool) Condition {
	return Condition{Name: name, Check: check}
}

// Rule is a named conjunction of Conditions, evaluated in order (spec
// §4.2). The first failing condition's name is reported as the rule's
// failure reason.
type Rule struct {
	Name       string
	Conditions []Condition
}

// New constructs a Rule from its conditions.
func New(name string, conditions ...Condition) Rule {
	return Rule{Name: name, Conditions: conditions}
}

// Evaluate reports whether every condition holds against snapshot. When
// a condition fails, ok is false and reason names it; when all hold, ok
// is true and reason is empty.
func (r Rule) Evaluate(snapshot field.Snapshot) (ok bool, reason string) {
	for _, c := range r.Conditions {
		if !c.Check(snapshot) {
			return false, c.Name
		}
	}
	return true, ""
}

// Lower builds one law.Law per Rule, grounded on layout for decoding an
// arbitrary state vector into a typed Snapshot (spec §9's design note:
// rules are modeled as functions over an explicit field snapshot, not
// closures holding mutable references). The resulting Laws carry no
// continuous Measure — rules are boolean conjunctions, not exposed as
// continuous violation measures.
func Lower(rules []Rule, layout *field.Layout) []law.Law {
	laws := make([]law.Law, len(rules))
	for i, r := range rules {
		r := r
		laws[i] = law.New(r.Name, func(x statevector.Vector) bool {
			snapshot, err := layout.DecodeVector(x)
			if err != nil {
				return false
			}
			ok, _ := r.Evaluate(snapshot)
			return ok
		})
	}
	return laws
}
