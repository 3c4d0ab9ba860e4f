package search

import (
	"container/heap"
	"fmt"
)

// FrontierKind selects how the closest unvisited label is found
type FrontierKind string

const (
	// LinearScan walks every label on each selection
	LinearScan FrontierKind = "scan"
	// BinaryHeap keeps reached labels in a priority queue
	BinaryHeap FrontierKind = "heap"
)

// Frontier hands out the next label to settle.
//
// Both implementations return the same label for the same state: the reached,
// unvisited label with the smallest time, and among equal times the one that
// comes first in station order.
type Frontier interface {
	// Improved is called each time a label gets a new, smaller time
	Improved(l *Label)
	// Next returns the closest unvisited label. A nil or unreached label
	// means nothing reachable is left.
	Next() *Label
}

// ParseFrontierKind accepts "scan" or "heap"; empty means scan
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch FrontierKind(s) {
	case "", LinearScan:
		return LinearScan, nil
	case BinaryHeap:
		return BinaryHeap, nil
	default:
		return "", fmt.Errorf("%w: unknown frontier %q", ErrInvalidInput, s)
	}
}

func newFrontier(kind FrontierKind, labels []*Label) Frontier {
	if kind == BinaryHeap {
		return &heapFrontier{}
	}
	return &scanFrontier{labels: labels}
}

type scanFrontier struct {
	labels []*Label
}

func (f *scanFrontier) Improved(*Label) {}

func (f *scanFrontier) Next() *Label {
	var selected *Label
	for _, l := range f.labels {
		if !l.Visited && l.closerThan(selected) {
			selected = l
		}
	}
	return selected
}

type heapEntry struct {
	label *Label
	time  int
	index int
}

type entryQueue []heapEntry

func (q entryQueue) Len() int { return len(q) }

func (q entryQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].index < q[j].index
}

func (q entryQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *entryQueue) Push(x interface{}) { *q = append(*q, x.(heapEntry)) }

func (q *entryQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// heapFrontier pushes a fresh entry on every improvement and drops stale
// entries lazily when they surface.
type heapFrontier struct {
	queue entryQueue
}

func (f *heapFrontier) Improved(l *Label) {
	heap.Push(&f.queue, heapEntry{label: l, time: l.time.Seconds(), index: l.index})
}

func (f *heapFrontier) Next() *Label {
	for f.queue.Len() > 0 {
		top := f.queue[0]
		if top.label.Visited || top.label.time.Seconds() != top.time {
			heap.Pop(&f.queue)
			continue
		}
		// left in place: the caller either stops or marks it visited
		return top.label
	}
	return nil
}
