// internal/pipeline/reorder.go
package pipeline

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
	"slices"
)

// ErrStaleIndex is returned when a Pending arrives whose index was
// already emitted or is already buffered.
var ErrStaleIndex = errors.New("pipeline: duplicate or stale index")

// Reorderer releases Pendings in contiguous index order regardless of
// the order they are pushed in. It is not safe for concurrent use.
type Reorderer struct {
	next int
	h    pendingHeap
}

// NewReorderer returns a Reorderer expecting first as the next index.
func NewReorderer(first int) *Reorderer {
	return &Reorderer{next: first}
}

// Next returns the index the Reorderer is waiting for.
func (r *Reorderer) Next() int { return r.next }

// Len returns the number of buffered Pendings.
func (r *Reorderer) Len() int { return len(r.h) }

// Push buffers p and calls emit for every Pending that is now contiguous
// with what was already released. emit errors stop the release.
func (r *Reorderer) Push(p Pending, emit func(Pending) error) error {
	if p.Index < r.next {
		return fmt.Errorf("%w: %d", ErrStaleIndex, p.Index)
	}
	heap.Push(&r.h, p)
	for len(r.h) > 0 && r.h[0].Index <= r.next {
		q := heap.Pop(&r.h).(Pending)
		if q.Index < r.next {
			return fmt.Errorf("%w: %d", ErrStaleIndex, q.Index)
		}
		r.next++
		if err := emit(q); err != nil {
			return err
		}
	}
	return nil
}

// Flush reports an error if records are still held back by a gap.
func (r *Reorderer) Flush() error {
	if len(r.h) == 0 {
		return nil
	}
	return fmt.Errorf("pipeline: %d record(s) buffered waiting for index %d (lowest held %d)",
		len(r.h), r.next, r.h[0].Index)
}

// SortPending orders ps by ascending index.
func SortPending(ps []Pending) {
	slices.SortFunc(ps, func(a, b Pending) int { return cmp.Compare(a.Index, b.Index) })
}

type pendingHeap []Pending

func (h pendingHeap) Len() int           { return len(h) }
func (h pendingHeap) Less(i, j int) bool { return h[i].Index < h[j].Index }
func (h pendingHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x any)        { *h = append(*h, x.(Pending)) }
func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
