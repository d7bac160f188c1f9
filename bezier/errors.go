package bezier

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates the four control points of a
// ControlPoints value do not share one dimension.
var ErrDimensionMismatch = errors.New("bezier: control points have mismatched dimensions")

// ErrSplitParameter indicates DeCasteljauSplit was called with s outside
// the open interval (0,1), where the split degenerates to one of the
// original endpoints.
var ErrSplitParameter = errors.New("bezier: split parameter must be in (0,1)")

func bezierErrorf(method string, err error) error {
	return fmt.Errorf("bezier: %s: %w", method, err)
}
