package front

import "sort"

// PathsSet is the runtime currency of the parser: a mapping from a token
// stream position (the position of the next unconsumed token, the
// discriminator named in the data model) to the set of tail nodes pending
// there. Keying by position gives O(1) dispatch of the next combinator step
// and naturally dedupes paths that have converged on the same tail.
type PathsSet map[int]map[*Node]struct{}

func newPathsSet() PathsSet { return make(PathsSet) }

// singlePath builds a PathsSet holding exactly one tail at one position,
// the shape the parser seeds at the root before the start production runs.
func singlePath(position int, tail *Node) PathsSet {
	return PathsSet{position: {tail: {}}}
}

func (p PathsSet) add(position int, tail *Node) {
	bucket, ok := p[position]
	if !ok {
		bucket = make(map[*Node]struct{})
		p[position] = bucket
	}
	bucket[tail] = struct{}{}
}

// merge folds src into p in place, deduplicating by (position, tail)
// identity exactly as the data model's node canonicalization requires.
func (p PathsSet) merge(src PathsSet) {
	for pos, bucket := range src {
		for tail := range bucket {
			p.add(pos, tail)
		}
	}
}

// clone makes a shallow copy suitable for passing into a combinator whose
// callers (Alternative, Optional, Repeat) must not see mutations leak back
// into their own live copy.
func (p PathsSet) clone() PathsSet {
	out := make(PathsSet, len(p))
	for pos, bucket := range p {
		b := make(map[*Node]struct{}, len(bucket))
		for tail := range bucket {
			b[tail] = struct{}{}
		}
		out[pos] = b
	}
	return out
}

func (p PathsSet) empty() bool { return len(p) == 0 }

// positions returns the occupied positions in ascending order, the
// iteration order every combinator uses so that results are deterministic.
func (p PathsSet) positions() []int {
	out := make([]int, 0, len(p))
	for pos := range p {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// samePositions reports whether a and b occupy the identical set of
// positions, regardless of which tails populate them. Repeat uses this as
// the did-advance check: an iteration that leaves the occupied positions
// unchanged is not making progress and must not be allowed to loop again.
func samePositions(a, b PathsSet) bool {
	if len(a) != len(b) {
		return false
	}
	for pos := range a {
		if _, ok := b[pos]; !ok {
			return false
		}
	}
	return true
}

// count returns the total number of tails across every position. The
// ambiguity overflow ceiling is tested against maxBucket, not this total.
func (p PathsSet) count() int {
	n := 0
	for _, bucket := range p {
		n += len(bucket)
	}
	return n
}

// maxBucket returns the size of the largest single-position bucket, the
// quantity the ambiguity ceiling actually bounds per §5.
func (p PathsSet) maxBucket() int {
	n := 0
	for _, bucket := range p {
		if len(bucket) > n {
			n = len(bucket)
		}
	}
	return n
}
