package search

import (
	"container/heap"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// frontierItem is one entry in the priority frontier. seq breaks priority
// ties by insertion order so visit sequences are deterministic.
type frontierItem struct {
	coord    grid.Coord
	priority int
	seq      int
}

// frontierHeap implements heap.Interface over frontier items.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// frontier is a min-priority queue of coordinates. Duplicate entries for
// the same coordinate are allowed; consumers skip already-visited cells
// when popping (relaxation-style search, not a strict decrease-key
// structure).
type frontier struct {
	items   frontierHeap
	nextSeq int
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.items)
	return f
}

func (f *frontier) push(c grid.Coord, priority int) {
	heap.Push(&f.items, frontierItem{coord: c, priority: priority, seq: f.nextSeq})
	f.nextSeq++
}

func (f *frontier) pop() (grid.Coord, bool) {
	if f.items.Len() == 0 {
		return grid.Coord{}, false
	}
	item := heap.Pop(&f.items).(frontierItem)
	return item.coord, true
}

func (f *frontier) empty() bool {
	return f.items.Len() == 0
}
