package bezier

import "math"

// Bernstein returns the degree-n, index-i Bernstein basis polynomial
// bᵢ,ₙ(t) = C(n,i)·tⁱ·(1-t)ⁿ⁻ⁱ. For a cubic (n=3), bₖ,₃(t) is the weight
// control point Pₖ carries at parameter t in ControlPoints.Evaluate.
func Bernstein(i, n int, t float64) float64 {
	if i < 0 || i > n {
		return 0
	}
	return binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// BernsteinBasis returns [b0,n(t), ..., bn,n(t)] in one call. The
// engine's repair-direction argmax over k* uses this instead of four
// separate Bernstein calls.
func BernsteinBasis(n int, t float64) []float64 {
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = Bernstein(i, n, t)
	}
	return out
}

// binomial returns C(n,i) for the small n (≤ a handful) this package
// deals with; no memoization needed at that scale.
func binomial(n, i int) float64 {
	if i < 0 || i > n {
		return 0
	}
	result := 1.0
	for k := 0; k < i; k++ {
		result *= float64(n-k) / float64(k+1)
	}
	return result
}
