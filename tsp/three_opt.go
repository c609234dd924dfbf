// Package tsp: 3-opt diversification move.
//
// ThreeOpt scans every cut triple 1 ≤ i < j < k ≤ N of a closed tour T and
// splits it into
//
//	head = T[0..i-1], S1 = T[i..j-1], S2 = T[j..k-1], tail = T[k..N].
//
// Head and tail stay fixed (so T[0] and the closing slot never move). The
// seven non-identity reconnections head + X + Y + tail are evaluated, with
// (X, Y) ∈ {S1, rev(S1)} × {S2, rev(S2)} in either order.
//
// Cost model: forward and backward prefix sums along T give the internal
// cost of any segment in either direction in O(1), so each candidate's delta
// is exact on asymmetric matrices too and a full scan is O(N³). A candidate is
// materialized (O(N)) only when its delta is negative, and accepted only if
// its rounded TotalDistance is strictly below the current one.
//
// Policies:
//   - First-improvement (default): apply the first strictly improving move.
//   - Best-improvement (bestImprovement=true): scan everything, apply the best.
//
// Either way one call applies at most one move; the input is returned (copied)
// unchanged when no triple improves.
//
// Cancellation is checked once per outer i; a cancelled scan returns the best
// tour materialized so far, never a partial one.
package tsp

import (
	"context"
	"math"
)

// segKind enumerates segment variants.
type segKind uint8

const (
	segS1  segKind = iota // S1 = T[i..j-1] in forward order
	segS1R                // reversed S1
	segS2                 // S2 = T[j..k-1] in forward order
	segS2R                // reversed S2
)

// Reconnection templates: X then Y. Identity (S1, S2) is excluded.
var (
	tryX = [...]segKind{segS1R, segS1, segS1R, segS2, segS2R, segS2, segS2R}
	tryY = [...]segKind{segS2, segS2R, segS2R, segS1, segS1, segS1R, segS1R}
)

// deltaTol filters float noise before a candidate is materialized.
const deltaTol = 1e-12

// ThreeOpt returns the tour after at most one improving 3-opt reconnection.
//
// Errors: ErrNilMatrix / ErrInvalidInput on invalid input. Cancellation is
// not an error.
//
// Complexity: O(N³) time, O(N) space.
func ThreeOpt(ctx context.Context, dm *DistanceMatrix, tour Tour, bestImprovement bool) (Tour, error) {
	if err := validateTourOn(dm, tour); err != nil {
		return nil, err
	}
	return threeOpt(ctx, dm, tour, bestImprovement), nil
}

// threeOptMove identifies one reconnection.
type threeOptMove struct {
	i, j, k int
	t       int // index into tryX/tryY
}

// threeOpt is the unchecked core.
func threeOpt(ctx context.Context, dm *DistanceMatrix, cur Tour, bestImprovement bool) Tour {
	n := len(cur) - 1

	// Prefix sums: fwd[p] = Σ_{q<p} w(T[q],T[q+1]); bwd[p] = Σ_{q<p} w(T[q+1],T[q]).
	fwd := make([]float64, n+1)
	bwd := make([]float64, n+1)
	var p int
	for p = 0; p < n; p++ {
		fwd[p+1] = fwd[p] + dm.Distance(cur[p], cur[p+1])
		bwd[p+1] = bwd[p] + dm.Distance(cur[p+1], cur[p])
	}
	curCost := round1e9(fwd[n])

	// seg returns (first city, last city, internal cost) of a segment variant.
	seg := func(kind segKind, i, j, k int) (int, int, float64) {
		switch kind {
		case segS1:
			return cur[i], cur[j-1], fwd[j-1] - fwd[i]
		case segS1R:
			return cur[j-1], cur[i], bwd[j-1] - bwd[i]
		case segS2:
			return cur[j], cur[k-1], fwd[k-1] - fwd[j]
		default: // segS2R
			return cur[k-1], cur[j], bwd[k-1] - bwd[j]
		}
	}

	var (
		best      Tour
		bestCost  = curCost
		bestDelta = math.Inf(1)
		bestMove  threeOptMove
		haveMove  bool

		i, j, k, t            int
		a, f                  int
		xf, xl, yf, yl        int
		xc, yc, before, after float64
		delta                 float64
	)

	for i = 1; i <= n-2; i++ {
		if isDone(ctx) {
			break
		}
		a = cur[i-1]
		for j = i + 1; j <= n-1; j++ {
			for k = j + 1; k <= n; k++ {
				f = cur[k]
				before = fwd[k] - fwd[i-1]
				for t = 0; t < len(tryX); t++ {
					xf, xl, xc = seg(tryX[t], i, j, k)
					yf, yl, yc = seg(tryY[t], i, j, k)
					after = dm.Distance(a, xf) + xc + dm.Distance(xl, yf) + yc + dm.Distance(yl, f)
					delta = after - before
					if delta >= -deltaTol {
						continue
					}
					if bestImprovement {
						if delta < bestDelta {
							bestDelta = delta
							bestMove = threeOptMove{i: i, j: j, k: k, t: t}
							haveMove = true
						}
						continue
					}
					cand := applyThreeOpt(cur, threeOptMove{i: i, j: j, k: k, t: t})
					if c := TotalDistance(dm, cand); c < curCost {
						return cand
					}
				}
			}
		}
	}

	if haveMove {
		cand := applyThreeOpt(cur, bestMove)
		if c := TotalDistance(dm, cand); c < bestCost {
			best = cand
		}
	}
	if best == nil {
		return cur.Clone()
	}
	return best
}

// applyThreeOpt materializes head + X + Y + tail into a fresh closed tour.
//
// Complexity: O(N).
func applyThreeOpt(cur Tour, m threeOptMove) Tour {
	out := make(Tour, 0, len(cur))
	out = append(out, cur[:m.i]...)
	out = appendSeg(out, cur, tryX[m.t], m.i, m.j, m.k)
	out = appendSeg(out, cur, tryY[m.t], m.i, m.j, m.k)
	out = append(out, cur[m.k:]...)
	closeInPlace(out)
	return out
}

// appendSeg appends one segment variant of cur to out.
func appendSeg(out, cur Tour, kind segKind, i, j, k int) Tour {
	var lo, hi int
	switch kind {
	case segS1, segS1R:
		lo, hi = i, j-1
	default:
		lo, hi = j, k-1
	}
	if kind == segS1 || kind == segS2 {
		return append(out, cur[lo:hi+1]...)
	}
	var p int
	for p = hi; p >= lo; p-- {
		out = append(out, cur[p])
	}
	return out
}
