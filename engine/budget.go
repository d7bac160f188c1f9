package engine

// Budget bounds the verification engine's subdivision work: MaxDepth caps
// recursion, Tolerance is the minimum global parameter-interval width a
// segment may still be subdivided at — once [a,b] shrinks below it, the
// segment is treated the same as a depth-exhausted one (spec §4.3 names
// "budget = (max_depth, tolerance)" without separately specifying what
// tolerance gates; this engine treats it as a second, width-based resource
// bound alongside depth, documented as an Open Question decision in
// DESIGN.md).
type Budget struct {
	MaxDepth  int
	Tolerance float64
}

// DefaultBudget is spec §4.3's default profile: depth 20, tolerance 1e-10.
func DefaultBudget() Budget {
	return Budget{MaxDepth: 20, Tolerance: 1e-10}
}

// HighPrecisionBudget is spec §4.3's named high-precision profile: depth
// 40, tolerance 1e-15.
func HighPrecisionBudget() Budget {
	return Budget{MaxDepth: 40, Tolerance: 1e-15}
}

// BudgetOption configures a Budget away from DefaultBudget's values.
type BudgetOption func(*Budget)

// WithMaxDepth overrides MaxDepth.
func WithMaxDepth(depth int) BudgetOption {
	return func(b *Budget) { b.MaxDepth = depth }
}

// WithTolerance overrides Tolerance.
func WithTolerance(tolerance float64) BudgetOption {
	return func(b *Budget) { b.Tolerance = tolerance }
}

// NewBudget builds a Budget starting from DefaultBudget and applying opts
// left to right.
func NewBudget(opts ...BudgetOption) Budget {
	b := DefaultBudget()
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
