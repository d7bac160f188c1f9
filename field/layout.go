package field

import (
	"github.com/jaredlewiswechs/newtonfield/statevector"
)

// Layout is the ordered collection of Cells a blueprint registers. Field
// order is fixed at Register and determines the dimension and axis
// order of every statevector.Vector the layout encodes or decodes.
// The zero value is ready to use.
type Layout struct {
	cells      []*Cell
	index      map[string]int
	registered bool
}

// NewLayout constructs an empty Layout.
func NewLayout() *Layout {
	return &Layout{index: make(map[string]int)}
}

// Add registers a new cell named name holding initial, with an optional
// ordered label set (path) for KindLabel values. It fails with
// ErrDuplicateName if name is already present, or ErrAlreadyRegistered
// if Register has already fixed the layout.
func (l *Layout) Add(name string, initial Value, path []string) (*Cell, error) {
	if l.registered {
		return nil, fieldErrorf("Add", ErrAlreadyRegistered)
	}
	if _, exists := l.index[name]; exists {
		return nil, fieldErrorf("Add", ErrDuplicateName)
	}
	if l.index == nil {
		l.index = make(map[string]int)
	}
	cell := newCell(name, initial, path)
	cell.index = len(l.cells)
	l.cells = append(l.cells, cell)
	l.index[name] = cell.index
	return cell, nil
}

// Register fixes the layout's field ordering and dimension. It is
// idempotent: calling it more than once has no effect.
func (l *Layout) Register() {
	l.registered = true
}

// Registered reports whether Register has been called.
func (l *Layout) Registered() bool { return l.registered }

// Dim returns the number of registered cells.
func (l *Layout) Dim() int { return len(l.cells) }

// Cell returns the cell named name.
func (l *Layout) Cell(name string) (*Cell, error) {
	idx, ok := l.index[name]
	if !ok {
		return nil, fieldErrorf("Cell", ErrUnknownField)
	}
	return l.cells[idx], nil
}

// Cells returns the layout's cells in registration order.
func (l *Layout) Cells() []*Cell {
	return l.cells
}

// Names returns the cells' names in layout order.
func (l *Layout) Names() []string {
	names := make([]string, len(l.cells))
	for i, c := range l.cells {
		names[i] = c.Name
	}
	return names
}

// Encode returns a statevector.Vector of the cells' committed values, in
// layout order. It fails with ErrUnregistered if Register has not been
// called.
func (l *Layout) Encode() (statevector.Vector, error) {
	if !l.registered {
		return nil, fieldErrorf("Encode", ErrUnregistered)
	}
	out := make(statevector.Vector, len(l.cells))
	for i, c := range l.cells {
		out[i] = c.CommittedEncoded()
	}
	return out, nil
}

// EncodeProposed returns a statevector.Vector of each cell's Read()
// value (the proposal during a forge, else committed), in layout order.
// It fails with ErrUnregistered if Register has not been called.
func (l *Layout) EncodeProposed() (statevector.Vector, error) {
	if !l.registered {
		return nil, fieldErrorf("EncodeProposed", ErrUnregistered)
	}
	out := make(statevector.Vector, len(l.cells))
	for i, c := range l.cells {
		out[i] = c.ReadEncoded()
	}
	return out, nil
}

// Snapshot is a decoded, typed view of a statevector.Vector sampled at
// some parameter t, keyed by field name. It is what rule.Rule evaluates
// against once a state vector is decoded back through the layout (spec
// §9's design note on lowering rules to laws).
type Snapshot map[string]Value

// Get returns the value named name and true, or a zero Value and false
// if name is not present.
func (s Snapshot) Get(name string) (Value, bool) {
	v, ok := s[name]
	return v, ok
}

// DecodeVector reconstructs a typed Snapshot from vec by decoding each
// coordinate through its cell's Kind and StatePath. It fails with
// ErrUnregistered if Register has not been called, or
// statevector.ErrDimensionMismatch if vec's dimension does not match the
// layout's.
func (l *Layout) DecodeVector(vec statevector.Vector) (Snapshot, error) {
	if !l.registered {
		return nil, fieldErrorf("DecodeVector", ErrUnregistered)
	}
	if vec.Dim() != len(l.cells) {
		return nil, fieldErrorf("DecodeVector", statevector.ErrDimensionMismatch)
	}
	snapshot := make(Snapshot, len(l.cells))
	for i, c := range l.cells {
		snapshot[c.Name] = decodeValue(vec[i], c.Kind(), c.path)
	}
	return snapshot, nil
}
