// Package dijkstra implements the pixel shortest-path search.
//
// Notes on implementation choices:
//
//   - Per-node state lives in slices indexed by pixelgraph.Node.Index, so a
//     node's identity during the search is its arena slot.
//   - The heap frontier uses a "lazy" decrease-key strategy: improved nodes
//     are pushed again and stale entries are dropped when popped.
//   - Heap entries order by (distance, index), which is exactly the order
//     the linear scan uses.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// ShortestPath computes the minimum-cost path from Options.Source to
// Options.Target in g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. Target must be set (ErrNoTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source and Target (ErrVertexNotFound, wrapped with the coordinate).
//
// Returns ErrUnreachable when the frontier runs dry before Target is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with FrontierHeap, O(V²) with FrontierScan.
//   - Space: O(V + E).
func ShortestPath(g *pixelgraph.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == nil {
		return nil, ErrNoSource
	}
	if cfg.Target == nil {
		return nil, ErrNoTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	start, ok := g.Lookup(cfg.Source.Row, cfg.Source.Col)
	if !ok {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, *cfg.Source)
	}
	goal, ok := g.Lookup(cfg.Target.Row, cfg.Target.Col)
	if !ok {
		return nil, fmt.Errorf("%w: target %v", ErrVertexNotFound, *cfg.Target)
	}

	return search(g, start, goal, cfg)
}

// Between is ShortestPath for callers already holding node references.
// Source and Target options, if given, are ignored.
// Returns ErrVertexNotFound when either node is nil or belongs to another graph.
func Between(g *pixelgraph.Graph, start, goal *pixelgraph.Node, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start node", ErrVertexNotFound)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal node", ErrVertexNotFound)
	}

	return search(g, start, goal, cfg)
}

// search initializes a runner, processes the frontier and builds the Result.
func search(g *pixelgraph.Graph, start, goal *pixelgraph.Node, cfg Options) (*Result, error) {
	V := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		target:  goal.Index(),
		dist:    make([]float64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
	}
	r.init(start.Index())
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *pixelgraph.Graph // read-only within the search
	options Options
	target  int
	dist    []float64 // node index → current best distance
	prev    []int     // node index → predecessor index, -1 if none
	visited []bool    // node index → distance finalized
	settled int
	pq      nodePQ // used by FrontierHeap only
}

// init sets dist to +∞ and prev to -1 everywhere, then seeds the source.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[source] = 0

	if r.options.Frontier == FrontierHeap {
		r.pq = make(nodePQ, 0, len(r.dist))
		heap.Init(&r.pq)
		heap.Push(&r.pq, &nodeItem{idx: source, dist: 0})
	}
}

// process repeatedly finalizes the closest frontier node and relaxes its
// edges until the target is finalized or the frontier is empty.
func (r *runner) process() error {
	for {
		u, ok := r.next()
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnreachable, r.g.At(r.target).Coord())
		}
		r.visited[u] = true
		r.settled++
		if u == r.target {
			return nil
		}
		r.relax(u)
	}
}

// next returns the unvisited node with the smallest finite distance,
// lowest index first on ties.
func (r *runner) next() (int, bool) {
	if r.options.Frontier == FrontierScan {
		return r.scan()
	}
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Skip stale entries superseded by a later, shorter push.
		if r.visited[item.idx] || item.dist > r.dist[item.idx] {
			continue
		}

		return item.idx, true
	}

	return -1, false
}

// scan is the O(V) frontier selection.
func (r *runner) scan() (int, bool) {
	best := -1
	for i, d := range r.dist {
		if r.visited[i] || math.IsInf(d, 1) {
			continue
		}
		if best < 0 || d < r.dist[best] {
			best = i
		}
	}

	return best, best >= 0
}

// relax tries to improve every unvisited neighbor of u through u.
// Edges at or above InfEdgeThreshold and candidates beyond MaxDistance are ignored.
func (r *runner) relax(u int) {
	for _, nb := range r.g.At(u).Neighbors {
		v := nb.Node.Index()
		if r.visited[v] || nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal candidates keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		if r.options.Frontier == FrontierHeap {
			heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
		}
	}
}

// result walks predecessors back from the target and reverses the chain.
func (r *runner) result() *Result {
	var path []*pixelgraph.Node
	for at := r.target; at >= 0; at = r.prev[at] {
		path = append(path, r.g.At(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	d := r.dist[r.target]

	return &Result{
		Path:     path,
		Distance: d,
		Cost:     d * pixelgraph.ChannelMax,
		Visited:  r.settled,
	}
}

// nodeItem is a frontier entry.
type nodeItem struct {
	idx  int     // node index
	dist float64 // distance from source when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
