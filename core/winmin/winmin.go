// Package winmin computes trailing-window minima over a hash array.
package winmin

import "math"

// SlidingMin returns, for each i >= width-1, the index and value of the
// minimum of values[i-width+1 : i+1], ties going to the earliest index.
// Entries before the first full window hold location 0 and math.MaxUint64.
//
// It runs in O(len(values)) using a monotonic deque of at most width entries.
// width must be >= 1.
func SlidingMin(values []uint64, width int) (locs []int, mins []uint64) {
	if width < 1 {
		panic("winmin: window width must be >= 1")
	}
	n := len(values)
	locs = make([]int, n)
	mins = make([]uint64, n)

	if width == 1 {
		for i, v := range values {
			locs[i] = i
			mins[i] = v
		}
		return locs, mins
	}
	for i := range mins {
		mins[i] = math.MaxUint64
	}

	q := newRing(max(1, min(width, n)))
	for i, v := range values {
		start := i - width + 1
		for q.len() > 0 {
			if j, _ := q.front(); j >= start {
				break
			}
			q.popFront()
		}
		// Equal values stay queued so the front is the earliest minimum.
		for q.len() > 0 {
			if _, bv := q.back(); bv <= v {
				break
			}
			q.popBack()
		}
		q.pushBack(i, v)

		if i >= width-1 {
			locs[i], mins[i] = q.front()
		}
	}
	return locs, mins
}
