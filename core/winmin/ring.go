// core/winmin/ring.go
package winmin

// ring is a fixed-capacity double-ended queue of (index, value) pairs backed
// by two arrays. It never grows; pushing onto a full ring is a caller bug.
type ring struct {
	idx  []int
	val  []uint64
	head int
	n    int
}

func newRing(capacity int) *ring {
	return &ring{idx: make([]int, capacity), val: make([]uint64, capacity)}
}

func (r *ring) len() int { return r.n }

func (r *ring) slot(off int) int { return (r.head + off) % len(r.idx) }

func (r *ring) front() (int, uint64) { return r.idx[r.head], r.val[r.head] }

func (r *ring) back() (int, uint64) {
	s := r.slot(r.n - 1)
	return r.idx[s], r.val[s]
}

func (r *ring) popFront() {
	r.head = r.slot(1)
	r.n--
}

func (r *ring) popBack() { r.n-- }

func (r *ring) pushBack(i int, v uint64) {
	if r.n == len(r.idx) {
		panic("winmin: ring overflow")
	}
	s := r.slot(r.n)
	r.idx[s], r.val[s] = i, v
	r.n++
}
