package field

import (
	"errors"
	"fmt"
)

// ErrWrongKind indicates Cell.MoveTo was called on a Cell whose value is
// not KindLabel. The Value accessors (Decimal, Bool, Int, Float, Label)
// do not return it; they report a kind mismatch through their ok result.
var ErrWrongKind = errors.New("field: value accessor does not match kind")

// ErrNoStatePath indicates MoveTo was called on a Cell with no attached
// StatePath.
var ErrNoStatePath = errors.New("field: cell has no attached state path")

// ErrUnregistered indicates a Layout operation that requires a fixed
// dimension (Encode, DecodeVector) was called before Register.
var ErrUnregistered = errors.New("field: layout not yet registered")

// ErrDuplicateName indicates Layout.Add was called with a name already
// present in the layout.
var ErrDuplicateName = errors.New("field: duplicate field name")

// ErrAlreadyRegistered indicates Layout.Add was called after Register had
// already fixed the field ordering.
var ErrAlreadyRegistered = errors.New("field: layout already registered")

// ErrUnknownField indicates a lookup by name found no matching cell.
var ErrUnknownField = errors.New("field: unknown field name")

func fieldErrorf(method string, err error) error {
	return fmt.Errorf("field: %s: %w", method, err)
}
