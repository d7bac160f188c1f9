package engine

import (
	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/telemetry"
)

// Engine is the Newton verification engine. The zero value is ready to
// use (sink and metrics default to no-ops); NewEngine with options wires
// in optional observability.
type Engine struct {
	sink    telemetry.Sink
	metrics *telemetry.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink attaches a telemetry.Sink notified of every Verify call's
// outcome. A nil sink is equivalent to telemetry.NoopSink().
func WithSink(sink telemetry.Sink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithMetrics attaches prometheus-backed telemetry.Metrics. A nil value
// disables metrics (the default).
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine constructs an Engine with the given options applied in order.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{sink: telemetry.NoopSink()}
	for _, opt := range opts {
		opt(e)
	}
	if e.sink == nil {
		e.sink = telemetry.NoopSink()
	}
	return e
}

// Verify runs the Newton verification engine against cp and laws using
// budget (engine.DefaultBudget() if omitted), notifying e's sink/metrics
// of the outcome.
func (e *Engine) Verify(cp bezier.ControlPoints, laws []law.Law, budget ...Budget) law.Verdict {
	b := DefaultBudget()
	if len(budget) > 0 {
		b = budget[0]
	}
	verdict, depthReached := run(cp, laws, b)
	if e.sink != nil {
		e.sink.OnVerify(verdict, depthReached)
	}
	if e.metrics != nil {
		e.metrics.ObserveVerify(verdict, depthReached)
	}
	return verdict
}

// Verify runs the Newton verification engine with no telemetry attached —
// the free function spec §6 names for "geometric clients that bypass the
// field layer".
func Verify(cp bezier.ControlPoints, laws []law.Law, budget ...Budget) law.Verdict {
	b := DefaultBudget()
	if len(budget) > 0 {
		b = budget[0]
	}
	verdict, _ := run(cp, laws, b)
	return verdict
}

// workItem is one entry of the explicit subdivision stack: segment covers
// the global parameter interval [a,b] at the given recursion depth.
type workItem struct {
	segment bezier.ControlPoints
	a, b    float64
	depth   int
}

// run executes the algorithm described in doc.go against the original
// curve cp, returning the verdict and the maximum depth reached (for
// telemetry).
func run(cp bezier.ControlPoints, laws []law.Law, budget Budget) (law.Verdict, int) {
	stack := []workItem{{segment: cp, a: 0, b: 1, depth: 0}}
	maxDepthReached := 0

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if item.depth > maxDepthReached {
			maxDepthReached = item.depth
		}

		// Step 1: depth/tolerance budget exhausted.
		if item.depth > budget.MaxDepth || (item.b-item.a) < budget.Tolerance {
			tMid := (item.a + item.b) / 2
			state := item.segment.Evaluate(0.5)
			for i, l := range laws {
				if !l.Holds(state) {
					return law.Reject(law.Witness{
						LawIndex: i,
						LawName:  l.Name,
						Time:     tMid,
						State:    state,
						Reason:   "law violated at budget-exhausted segment midpoint",
					}), maxDepthReached
				}
			}
			return law.Reject(law.Witness{
				LawIndex: law.UnknownLawIndex,
				Time:     tMid,
				State:    state,
				Reason:   "depth exceeded",
			}), maxDepthReached
		}

		// Step 2: hull quick-reject, with fall-through on inconclusive
		// control-point violations.
		anyHullFailure := false
		for k := 0; k < 4; k++ {
			point := item.segment.At(k)
			for i, l := range laws {
				if l.Holds(point) {
					continue
				}
				anyHullFailure = true

				tLocal := float64(k) / 3
				tGlobal := item.a + tLocal*(item.b-item.a)
				curvePoint := cp.Evaluate(tGlobal)
				if !l.Holds(curvePoint) {
					witness := law.Witness{
						LawIndex: i,
						LawName:  l.Name,
						Time:     tGlobal,
						State:    curvePoint,
						Reason:   "law violated at confirmed curve point near control point",
						Repair:   estimateRepair(cp, l, tGlobal),
					}
					return law.Reject(witness), maxDepthReached
				}
				// Inconclusive: the control point lies outside Ω but the
				// curve itself does not confirm a violation here. Keep
				// scanning the remaining (point, law) pairs.
			}
		}

		// Step 3: hull quick-accept.
		if !anyHullFailure {
			continue
		}

		// Step 4: subdivide and push right, then left.
		mid := (item.a + item.b) / 2
		left, right, err := bezier.DeCasteljauSplit(item.segment, 0.5)
		if err != nil {
			// item.segment always has width > 0 at s=0.5, so this cannot
			// happen; treat it as unreachable defensively rather than
			// looping forever.
			return law.Reject(law.Witness{
				LawIndex: law.UnknownLawIndex,
				Time:     mid,
				Reason:   "internal: subdivision failed",
			}), maxDepthReached
		}
		stack = append(stack,
			workItem{segment: right, a: mid, b: item.b, depth: item.depth + 1},
			workItem{segment: left, a: item.a, b: mid, depth: item.depth + 1},
		)
	}

	return law.Commit(), maxDepthReached
}
