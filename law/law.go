package law

import "github.com/jaredlewiswechs/newtonfield/statevector"

// Predicate reports whether state x satisfies a law.
type Predicate func(x statevector.Vector) bool

// Measure is an optional continuous violation measure for a law. By
// contract (spec §3), Measure(x) >= 0 iff Predicate(x) holds, so
// max(0, -Measure(x)) is a non-negative "how far outside Ω" quantity
// engine's repair-direction estimate differentiates.
type Measure func(x statevector.Vector) float64

// Law is one named predicate over state space, defining one region
// Ωᵢ = {x : Predicate(x)}. Measure is nil when the law has no continuous
// violation measure (repair direction is then omitted for that law).
type Law struct {
	Name      string
	Predicate Predicate
	Measure   Measure
}

// New constructs a Law with no continuous measure.
func New(name string, predicate Predicate) Law {
	return Law{Name: name, Predicate: predicate}
}

// NewMeasured constructs a Law together with its continuous violation
// measure.
func NewMeasured(name string, predicate Predicate, measure Measure) Law {
	return Law{Name: name, Predicate: predicate, Measure: measure}
}

// Holds reports whether x satisfies l.
func (l Law) Holds(x statevector.Vector) bool {
	return l.Predicate(x)
}

// HasMeasure reports whether l carries a continuous violation measure.
func (l Law) HasMeasure() bool {
	return l.Measure != nil
}
