package physics

import "physics-engine/internal/vec2"

// Pair is an unordered candidate pair emitted by the broad phase. A and B
// index into the body slice the pairs were produced from, with A < B, so no
// pair appears twice and no body is paired with itself. Pairs do not outlive
// the step that produced them.
type Pair struct {
	A, B int
}

// BroadPhase narrows all bodies down to the pairs that might collide. Any
// implementation must emit each qualifying unordered pair exactly once, with
// indices ordered A < B, so the resolution order downstream stays
// deterministic. A spatial structure (e.g. a quadtree) can replace the naive
// scan behind this interface without touching the narrow phase or resolver.
type BroadPhase interface {
	Pairs(bodies []*Body) []Pair
}

// NaiveBroadPhase tests every unordered body pair with a bounding-box overlap
// check. O(n²), fine for a few hundred bodies.
type NaiveBroadPhase struct{}

// Pairs scans all i<j pairs. A pair is emitted only if the bodies share at
// least one layer bit, are not both static, and their world bounds overlap.
func (NaiveBroadPhase) Pairs(bodies []*Body) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		aMin, aMax := a.Bounds()
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if a.Layer&b.Layer == 0 {
				continue
			}
			if a.static && b.static {
				continue
			}
			bMin, bMax := b.Bounds()
			if !boundsOverlap(aMin, aMax, bMin, bMax) {
				continue
			}
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs
}

// boundsOverlap is the four-comparison slab test on two axis-aligned boxes.
func boundsOverlap(aMin, aMax, bMin, bMax vec2.Vec2) bool {
	if aMax.X < bMin.X || aMin.X > bMax.X {
		return false
	}
	if aMax.Y < bMin.Y || aMin.Y > bMax.Y {
		return false
	}
	return true
}
