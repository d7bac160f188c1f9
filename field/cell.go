package field

// Cell is a transactional, two-slot field cell: a committed value and,
// while a forge is in flight, an optional proposed value (spec §4.5).
// The zero value is not usable; construct one via Layout.Add.
type Cell struct {
	Name      string
	index     int
	committed Value
	proposed  *Value
	forging   bool
	path      []string
}

// newCell constructs a Cell holding initial as its committed value, with
// path attached for label encoding/decoding (nil if initial is not a
// KindLabel value).
func newCell(name string, initial Value, path []string) *Cell {
	return &Cell{Name: name, committed: initial, path: path}
}

// Kind reports the Kind of the cell's committed value.
func (c *Cell) Kind() Kind { return c.committed.Kind() }

// StatePath returns the cell's attached ordered label set, or nil if
// none was attached.
func (c *Cell) StatePath() []string { return c.path }

// BeginForge marks c as forging and discards any stale proposal from a
// prior, uncommitted forge.
func (c *Cell) BeginForge() {
	c.forging = true
	c.proposed = nil
}

// Write stores v. While forging, v becomes the proposal, leaving the
// committed value untouched until Commit; outside a forge, v overwrites
// the committed value directly.
func (c *Cell) Write(v Value) {
	if c.forging {
		proposal := v
		c.proposed = &proposal
		return
	}
	c.committed = v
}

// Read returns the cell's current value: the proposal if forging and
// set, else the committed value.
func (c *Cell) Read() Value {
	if c.forging && c.proposed != nil {
		return *c.proposed
	}
	return c.committed
}

// Commit promotes the proposal (if any) to committed and ends the
// forge.
func (c *Cell) Commit() {
	if c.proposed != nil {
		c.committed = *c.proposed
	}
	c.proposed = nil
	c.forging = false
}

// Rollback discards the proposal and ends the forge. The committed
// value is untouched.
func (c *Cell) Rollback() {
	c.proposed = nil
	c.forging = false
}

// CommittedEncoded returns the committed value's double encoding.
func (c *Cell) CommittedEncoded() float64 {
	return c.committed.encode(c.path)
}

// ReadEncoded returns Read()'s double encoding.
func (c *Cell) ReadEncoded() float64 {
	return c.Read().encode(c.path)
}

// WriteEncoded decodes raw through c's Kind and StatePath and writes the
// resulting typed Value (proposal if forging, else committed directly).
// Used by callers that only hold a statevector.Vector coordinate, such
// as a blueprint committing a free-form trajectory's end state back into
// its geometric fields.
func (c *Cell) WriteEncoded(raw float64) {
	c.Write(decodeValue(raw, c.Kind(), c.path))
}

// MoveTo writes label as the cell's proposed (or committed, outside a
// forge) value. It fails with ErrNoStatePath if c has no attached
// StatePath, and ErrWrongKind if c does not hold a KindLabel value.
func (c *Cell) MoveTo(label string) error {
	if c.Kind() != KindLabel {
		return fieldErrorf("MoveTo", ErrWrongKind)
	}
	if len(c.path) == 0 {
		return fieldErrorf("MoveTo", ErrNoStatePath)
	}
	c.Write(NewLabel(label))
	return nil
}
