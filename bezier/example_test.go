package bezier_test

import (
	"fmt"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/statevector"
)

// ExampleControlPoints_Evaluate builds the curve used in spec scenario S3
// and samples it at its true first crossing of y=0, t*=3/4.
func ExampleControlPoints_Evaluate() {
	cp, _ := bezier.New(
		statevector.New(0, 0),
		statevector.New(1, 3),
		statevector.New(2, -1),
		statevector.New(3, 0),
	)
	p := cp.Evaluate(0.75)
	fmt.Printf("x=%.4f y=%.4f\n", p[0], p[1])
	// Output: x=2.2500 y=0.0000
}
