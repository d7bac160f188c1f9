// Package bezier implements cubic Bézier curves over statevector.Vector
// control points: evaluation, the derivative, De Casteljau subdivision,
// and the Bernstein basis the verification engine's convex-hull tests
// depend on.
//
// A cubic Bézier curve is defined by four control points P0..P3 sharing
// one dimension d:
//
//	γ(t) = (1-t)³P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3,   t ∈ [0,1]
//
// γ(0) = P0 and γ(1) = P3 exactly; P1 and P2 shape the curve between them
// but do not generally lie on it. The derivative is
//
//	γ'(t) = 3[(1-t)²(P1-P0) + 2(1-t)t(P2-P1) + t²(P3-P2)]
//
// De Casteljau subdivision at a parameter s splits one cubic into two
// cubics that together reparametrize the original exactly:
//
//	left.evaluate(u)  = γ(s·u)
//	right.evaluate(u) = γ(s + (1-s)·u)
//
// with left.P3 = right.P0 = γ(s). This is the operation engine.Verify uses
// to bisect the parameter interval under examination.
//
// Complexity: evaluate/derivative/split are all O(d) in the shared
// dimension. Evaluate and Derivative allocate only their returned Vector;
// the split also allocates the intermediate points of the triangular
// scheme.
package bezier
