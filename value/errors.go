package value

import (
	"errors"
	"fmt"
)

// ErrInvalidDecimal indicates a string could not be parsed as an exact
// base-10 decimal.
var ErrInvalidDecimal = errors.New("value: invalid decimal literal")

func decimalErrorf(method string, err error) error {
	return fmt.Errorf("value: %s: %w", method, err)
}
