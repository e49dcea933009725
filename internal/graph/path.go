package graph

import (
	"container/heap"
	"math"
)

// ShortestPath returns the lowest-weight chain of cocktails from one name to
// another, endpoints included. A name that is not in the graph yields a
// *NotFoundError; two known but disconnected cocktails yield a *NoPathError.
// A cocktail's path to itself is just [name].
func (g *Graph) ShortestPath(from, to string) ([]string, error) {
	src, ok := g.index[from]
	if !ok {
		return nil, &NotFoundError{Name: from}
	}
	dst, ok := g.index[to]
	if !ok {
		return nil, &NotFoundError{Name: to}
	}
	if src == dst {
		return []string{from}, nil
	}

	prev := g.dijkstra(src, dst)
	if prev[dst] < 0 {
		return nil, &NoPathError{From: from, To: to}
	}

	var rev []int
	for n := dst; n != src; n = prev[n] {
		rev = append(rev, n)
	}
	rev = append(rev, src)

	path := make([]string, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = g.nodes[n].Name
	}
	return path, nil
}

// PathCost sums edge weights along path. It returns false if any consecutive
// pair is not joined by an edge.
func (g *Graph) PathCost(path []string) (float64, bool) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		e, ok := g.EdgeBetween(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += e.Weight
	}
	return total, true
}

// dijkstra runs until dst is settled and returns predecessor indices (-1 for
// unreached nodes and for src). Edge weights are always positive.
func (g *Graph) dijkstra(src, dst int) []int {
	dist := make([]float64, len(g.nodes))
	prev := make([]int, len(g.nodes))
	done := make([]bool, len(g.nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	pq := &queue{{node: src, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		if done[cur.node] {
			continue
		}
		done[cur.node] = true
		if cur.node == dst {
			break
		}

		for _, nb := range g.adj[cur.node] {
			if done[nb.node] {
				continue
			}
			d := cur.dist + weight(nb.score)
			if d < dist[nb.node] {
				dist[nb.node] = d
				prev[nb.node] = cur.node
				heap.Push(pq, item{node: nb.node, dist: d})
			}
		}
	}
	return prev
}

type item struct {
	node int
	dist float64
}

// queue is a min-heap on distance, then node index so ties resolve the same
// way on every run.
type queue []item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].node < q[j].node
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
