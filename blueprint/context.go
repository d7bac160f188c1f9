package blueprint

import "github.com/jaredlewiswechs/newtonfield/field"

// ForgeContext is the handle a ForgeFunc body uses to read and write
// fields and to emit ForgeActions. Field writes during a forge go to
// each field's proposal (spec §4.6 step 4); reads see the proposal once
// written, else the committed value (field.Cell.Read's ordinary
// contract).
type ForgeContext struct {
	layout  *field.Layout
	actions []ForgeAction
}

func newForgeContext(layout *field.Layout) *ForgeContext {
	return &ForgeContext{layout: layout}
}

// Write proposes v for the named field.
func (c *ForgeContext) Write(name string, v field.Value) error {
	cell, err := c.layout.Cell(name)
	if err != nil {
		return blueprintErrorf("ForgeContext.Write", err)
	}
	cell.Write(v)
	return nil
}

// Read returns the named field's current value (proposal if already
// written this forge, else committed).
func (c *ForgeContext) Read(name string) (field.Value, error) {
	cell, err := c.layout.Cell(name)
	if err != nil {
		return field.Value{}, blueprintErrorf("ForgeContext.Read", err)
	}
	return cell.Read(), nil
}

// Reject emits an unconditional ActionReject.
func (c *ForgeContext) Reject(reason string) {
	c.actions = append(c.actions, RejectAction(reason))
}

// ConditionalReject emits an ActionConditionalReject naming the
// predicate that triggered it.
func (c *ForgeContext) ConditionalReject(predicateName, reason string) {
	c.actions = append(c.actions, ConditionalRejectAction(predicateName, reason))
}

// ForgeFunc is a forge body: it reads and writes fields via ctx and
// optionally emits reject actions. Field writes happen against
// proposals; the runtime decides whether to commit or roll them back
// after the body returns.
type ForgeFunc func(ctx *ForgeContext)
