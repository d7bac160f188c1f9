package blueprint

import (
	"errors"
	"fmt"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/engine"
	"github.com/jaredlewiswechs/newtonfield/field"
	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/ledger"
	"github.com/jaredlewiswechs/newtonfield/rule"
	"github.com/jaredlewiswechs/newtonfield/telemetry"
)

// Blueprint is a typed object definition: an owned field layout, a rule
// list, and named forges, orchestrated against a shared engine and
// ledger (spec §4.6, §3's "Blueprint instance" row). The zero value is
// not usable; construct one with New.
type Blueprint struct {
	TypeName string

	layout *field.Layout
	rules  []rule.Rule
	forges map[string]ForgeFunc

	eng    *engine.Engine
	budget engine.Budget
	ledger *ledger.Ledger

	sink    telemetry.Sink
	metrics *telemetry.Metrics
}

// Option configures a Blueprint at construction time.
type Option func(*Blueprint)

// WithEngine overrides the default engine.NewEngine().
func WithEngine(e *engine.Engine) Option {
	return func(bp *Blueprint) { bp.eng = e }
}

// WithBudget overrides engine.DefaultBudget() for every Forge/MoveAlong
// call on this blueprint.
func WithBudget(budget engine.Budget) Option {
	return func(bp *Blueprint) { bp.budget = budget }
}

// WithSink attaches a telemetry.Sink notified after every Forge/MoveAlong
// call. A nil sink is equivalent to telemetry.NoopSink().
func WithSink(sink telemetry.Sink) Option {
	return func(bp *Blueprint) { bp.sink = sink }
}

// WithMetrics attaches prometheus-backed telemetry.Metrics. A nil value
// disables metrics (the default).
func WithMetrics(m *telemetry.Metrics) Option {
	return func(bp *Blueprint) { bp.metrics = m }
}

// New constructs a Blueprint named typeName, recording its ledger
// entries against ledger l.
func New(typeName string, l *ledger.Ledger, opts ...Option) *Blueprint {
	bp := &Blueprint{
		TypeName: typeName,
		layout:   field.NewLayout(),
		forges:   make(map[string]ForgeFunc),
		eng:      engine.NewEngine(),
		budget:   engine.DefaultBudget(),
		ledger:   l,
		sink:     telemetry.NoopSink(),
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.sink == nil {
		bp.sink = telemetry.NoopSink()
	}
	return bp
}

// RegisterField adds a field to the blueprint's layout in declaration
// order. A name already registered fails with ErrDuplicateField (also
// matching field.ErrDuplicateName); a call after the layout has been
// fixed by a prior Forge/MoveAlong call fails with ErrAlreadyRegistered
// (also matching field.ErrAlreadyRegistered).
func (bp *Blueprint) RegisterField(name string, initial field.Value, path []string) (*field.Cell, error) {
	cell, err := bp.layout.Add(name, initial, path)
	if err != nil {
		switch {
		case errors.Is(err, field.ErrDuplicateName):
			err = fmt.Errorf("%w: %w", ErrDuplicateField, err)
		case errors.Is(err, field.ErrAlreadyRegistered):
			err = fmt.Errorf("%w: %w", ErrAlreadyRegistered, err)
		}
		return nil, blueprintErrorf("RegisterField", err)
	}
	return cell, nil
}

// DefineRule adds r to the blueprint's rule list. Rules are lowered to
// laws fresh on every Forge/MoveAlong call (spec §4.2), so order of
// DefineRule calls is the order rules are evaluated and, on failure,
// reported.
func (bp *Blueprint) DefineRule(r rule.Rule) {
	bp.rules = append(bp.rules, r)
}

// DefineForge registers fn under name.
func (bp *Blueprint) DefineForge(name string, fn ForgeFunc) {
	bp.forges[name] = fn
}

// Fields returns the blueprint's field layout for introspection
// (IsLawful, Violations, direct field access).
func (bp *Blueprint) Fields() *field.Layout {
	return bp.layout
}

func (bp *Blueprint) ensureRegistered() {
	if !bp.layout.Registered() {
		bp.layout.Register()
	}
}

func (bp *Blueprint) lowerLaws() ([]law.Law, []string) {
	laws := rule.Lower(bp.rules, bp.layout)
	names := make([]string, len(laws))
	for i, l := range laws {
		names[i] = l.Name
	}
	return laws, names
}

func (bp *Blueprint) rollbackAll() {
	for _, c := range bp.layout.Cells() {
		c.Rollback()
	}
}

func (bp *Blueprint) commitAll() {
	for _, c := range bp.layout.Cells() {
		c.Commit()
	}
}

// Forge runs the named forge (spec §4.6 steps 1-10).
func (bp *Blueprint) Forge(name string) law.Verdict {
	bp.ensureRegistered()
	_, lawNames := bp.lowerLaws()

	fn, ok := bp.forges[name]
	if !ok {
		verdict := law.Reject(law.Witness{
			LawIndex: law.UnknownLawIndex,
			Reason:   "no forge named " + name,
		})
		degenerate := bp.degenerateAtCurrentState("Forge")
		bp.ledger.Append(degenerate, lawNames, verdict, name, bp.TypeName)
		bp.notifyForge(name, verdict)
		return verdict
	}

	for _, c := range bp.layout.Cells() {
		c.BeginForge()
	}

	ctx := newForgeContext(bp.layout)
	fn(ctx)

	for _, action := range ctx.actions {
		if !action.IsRejecting() {
			continue
		}
		bp.rollbackAll()
		verdict := law.Reject(law.Witness{
			LawIndex: law.UnknownLawIndex,
			Reason:   action.Reason,
		})
		degenerate := bp.degenerateAtCurrentState("Forge")
		bp.ledger.Append(degenerate, lawNames, verdict, name, bp.TypeName)
		bp.notifyForge(name, verdict)
		return verdict
	}

	p0, err := bp.layout.Encode()
	if err != nil {
		panic(blueprintErrorf("Forge", err))
	}
	p3, err := bp.layout.EncodeProposed()
	if err != nil {
		panic(blueprintErrorf("Forge", err))
	}
	cp, err := bezier.Linear(p0, p3)
	if err != nil {
		panic(blueprintErrorf("Forge", err))
	}

	laws, _ := bp.lowerLaws()
	for i, l := range laws {
		if l.Holds(p3) {
			continue
		}
		bp.rollbackAll()
		verdict := law.Reject(law.Witness{
			LawIndex: i,
			LawName:  l.Name,
			Time:     1,
			State:    p3,
			Reason:   "rule violated at proposed state",
		})
		bp.ledger.Append(cp, lawNames, verdict, name, bp.TypeName)
		bp.notifyForge(name, verdict)
		return verdict
	}

	verdict := bp.eng.Verify(cp, laws, bp.budget)
	if verdict.IsCommit() {
		bp.commitAll()
	} else {
		bp.rollbackAll()
	}
	bp.ledger.Append(cp, lawNames, verdict, name, bp.TypeName)
	bp.notifyForge(name, verdict)
	return verdict
}

// notifyForge reports a completed Forge/MoveAlong call to bp's optional
// sink and metrics, the same optional-collaborator shape engine.Engine
// and ledger.Ledger already use for OnVerify/OnLedgerAppend.
func (bp *Blueprint) notifyForge(name string, verdict law.Verdict) {
	bp.sink.OnForge(bp.TypeName, name, verdict)
	if bp.metrics != nil {
		bp.metrics.ObserveVerify(verdict, 0)
	}
}

// degenerateAtCurrentState builds linear(P0,P0) at the field layout's
// current committed encoding, for ledger entries produced before any
// proposed trajectory exists (unknown forge, explicit rejection). method
// names the caller for panic context if encoding an already-registered
// layout somehow fails.
func (bp *Blueprint) degenerateAtCurrentState(method string) bezier.ControlPoints {
	p0, err := bp.layout.Encode()
	if err != nil {
		panic(blueprintErrorf(method, err))
	}
	cp, err := bezier.Linear(p0, p0)
	if err != nil {
		panic(blueprintErrorf(method, err))
	}
	return cp
}

// MoveAlong verifies an explicit, caller-supplied trajectory against the
// blueprint's rule-derived laws, bypassing the field-transaction steps
// of Forge (spec §4.6's closing paragraph on free-form geometry, e.g.
// a navigator's move_along). On Commit, cp.P3 is decoded back into the
// named positionFields, in order, and committed; on Reject no field is
// touched. The resulting verdict is recorded under forgeName.
func (bp *Blueprint) MoveAlong(forgeName string, cp bezier.ControlPoints, positionFields []string) law.Verdict {
	bp.ensureRegistered()
	laws, lawNames := bp.lowerLaws()

	verdict := bp.eng.Verify(cp, laws, bp.budget)
	if verdict.IsCommit() {
		for i, name := range positionFields {
			if i >= cp.Dim() {
				break
			}
			cell, err := bp.layout.Cell(name)
			if err != nil {
				continue
			}
			cell.WriteEncoded(cp.P3[i])
			cell.Commit()
		}
	}
	bp.ledger.Append(cp, lawNames, verdict, forgeName, bp.TypeName)
	bp.notifyForge(forgeName, verdict)
	return verdict
}

// IsLawful reports whether the blueprint's current committed state
// satisfies every defined rule.
func (bp *Blueprint) IsLawful() bool {
	return len(bp.Violations()) == 0
}

// Violations returns the names of every currently defined rule whose
// condition fails against the committed state.
func (bp *Blueprint) Violations() []string {
	bp.ensureRegistered()
	snapshot, err := bp.layout.DecodeVector(mustEncode(bp.layout))
	if err != nil {
		return nil
	}
	var failing []string
	for _, r := range bp.rules {
		if ok, _ := r.Evaluate(snapshot); !ok {
			failing = append(failing, r.Name)
		}
	}
	return failing
}

func mustEncode(layout *field.Layout) []float64 {
	vec, err := layout.Encode()
	if err != nil {
		return make([]float64, layout.Dim())
	}
	return vec
}
