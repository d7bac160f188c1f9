// Package engine implements the Newton verification engine: a
// depth-bounded recursive subdivision of a cubic bezier.ControlPoints
// trajectory against an ordered list of law.Law, producing a
// law.Verdict.
//
// Algorithm (spec §4.3). An explicit LIFO stack of work items
// (segment, a, b, depth), where [a,b] ⊆ [0,1] is the global parameter
// interval the segment covers. Starting from (cp, 0, 1, 0), each popped
// item is processed in order:
//
//  1. Depth/tolerance exhausted: if depth exceeds Budget.MaxDepth, or the
//     interval [a,b] has shrunk below Budget.Tolerance, sample the
//     segment's midpoint and scan laws in order; a confirmed violation
//     there is reported with no repair direction, otherwise a
//     conservative reject (law index -1) is reported. Either way Verify
//     returns immediately — budget exhaustion is terminal, not merely a
//     reason to skip this one segment.
//  2. Hull quick-reject: every control point is tested against every
//     law, in (point, law) order; the first point/law pair that fails is
//     re-checked against the *original* curve at the corresponding
//     global parameter, since a control point off the curve doesn't
//     itself prove the curve exits Ω. A confirmed re-check returns
//     Reject with a repair direction (§4.4); an unconfirmed one is
//     recorded as inconclusive and scanning continues.
//  3. Hull quick-accept: if no control point failed any law, the segment
//     is accepted outright — exact when every Ωᵢ is convex (the
//     Bézier convex-hull property), a tightening heuristic otherwise.
//  4. Otherwise: split at s=0.5 via bezier.DeCasteljauSplit and push the
//     right sub-segment, then the left — so the left (earlier t) is
//     popped next, guaranteeing the first reported violation is the
//     earliest one reachable by subdivision.
//
// When the stack empties without a Reject, Verify returns Commit.
//
// Worst-case work is O(2^MaxDepth · len(laws)); every path terminates
// because depth is bounded.
package engine
