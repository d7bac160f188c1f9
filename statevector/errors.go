package statevector

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates two vectors were combined despite having
// different dimensions.
var ErrDimensionMismatch = errors.New("statevector: dimension mismatch")

// vectorErrorf wraps err with a method-context prefix, preserving it for
// errors.Is via %w.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("statevector: %s: %w", method, err)
}
