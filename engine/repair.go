package engine

import (
	"math"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/statevector"
)

// repairFiniteDifferenceEpsilon is the one-sided finite-difference step
// ε used to estimate ∂/∂P_{k*}, fixed by spec §4.4 independent of the
// active Budget.
const repairFiniteDifferenceEpsilon = 1e-6

// repairStepSize is the default gradient-descent step η, fixed by spec
// §4.4.
const repairStepSize = 0.1

// estimateRepair computes the advisory nudge direction of §4.4: find the
// control point k* with the largest Bernstein weight at tStar, then
// estimate the gradient of max(0, -measure(γ(tStar))) with respect to
// each coordinate of P_{k*} by a one-sided finite difference, and return
// Δ = -η·gradient as a statevector.Vector shaped like the full control
// point (the other three control points are left untouched by the
// caller; only k* moves). Returns nil if l has no continuous measure.
func estimateRepair(cp bezier.ControlPoints, l law.Law, tStar float64) statevector.Vector {
	if !l.HasMeasure() {
		return nil
	}

	basis := bezier.BernsteinBasis(3, tStar)
	kStar := 0
	for k := 1; k < len(basis); k++ {
		if basis[k] > basis[kStar] {
			kStar = k
		}
	}

	violation := func(pt statevector.Vector) float64 {
		return math.Max(0, -l.Measure(pt))
	}

	baseline := cp.Evaluate(tStar)
	f0 := violation(baseline)

	d := cp.Dim()
	gradient := make(statevector.Vector, d)
	for dim := 0; dim < d; dim++ {
		perturbed := perturbControlPoint(cp, kStar, dim, repairFiniteDifferenceEpsilon)
		f1 := violation(perturbed.Evaluate(tStar))
		gradient[dim] = (f1 - f0) / repairFiniteDifferenceEpsilon
	}

	return gradient.Scale(-repairStepSize)
}

// perturbControlPoint returns a copy of cp with control point k's dim-th
// coordinate increased by delta.
func perturbControlPoint(cp bezier.ControlPoints, k, dim int, delta float64) bezier.ControlPoints {
	points := [4]statevector.Vector{cp.P0.Clone(), cp.P1.Clone(), cp.P2.Clone(), cp.P3.Clone()}
	points[k][dim] += delta
	return bezier.ControlPoints{P0: points[0], P1: points[1], P2: points[2], P3: points[3]}
}
