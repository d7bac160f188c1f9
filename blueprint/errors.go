package blueprint

import (
	"errors"
	"fmt"
)

// ErrUnknownForge indicates Forge was called with a name no DefineForge
// registered. Per spec §7 this is deliberately demoted to a domain
// reject rather than returned as an error: Forge never returns this
// value, and no other function in this package returns it either; an
// unknown forge name is recorded as a Reject verdict with
// law.UnknownLawIndex.
var ErrUnknownForge = errors.New("blueprint: no forge named this")

// ErrDuplicateField indicates RegisterField was called with a name
// already registered.
var ErrDuplicateField = errors.New("blueprint: duplicate field name")

// ErrAlreadyRegistered indicates RegisterField was called after the
// blueprint's first Forge/MoveAlong call had already fixed the layout.
var ErrAlreadyRegistered = errors.New("blueprint: field layout already registered")

func blueprintErrorf(method string, err error) error {
	return fmt.Errorf("blueprint: %s: %w", method, err)
}
