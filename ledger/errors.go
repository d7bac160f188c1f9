package ledger

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates Index was called with an out-of-bounds
// sequence index.
var ErrIndexOutOfRange = errors.New("ledger: index out of range")

func ledgerErrorf(method string, err error) error {
	return fmt.Errorf("ledger: %s: %w", method, err)
}
