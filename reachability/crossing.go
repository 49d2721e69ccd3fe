package reachability

import "github.com/jvgomez/eikonal/grid"

// MinCrossingPath runs a 0-1 BFS from sources to targets over the whole
// grid: moving into a passable cell costs 0, moving into an impassable
// one costs 1. It reports the minimum number of obstacle cells that
// would need to be cleared to connect some source to some target, and
// the flat-index path achieving that cost. A nil path with cost 0 and a
// nil error means no target is reachable at any cost, which cannot
// happen on a finite grid but is reported rather than assumed away.
// Used to diagnose why a solver start and goal sit in disconnected
// regions, and how much occupancy editing would reconnect them.
//
// Complexity: O(N*d) time, O(N) memory.
func MinCrossingPath(g *grid.Grid, sources, targets []int) (path []int, cost int, err error) {
	n := g.Size()
	if n == 0 {
		return nil, 0, ErrEmptyGrid
	}
	if len(sources) == 0 {
		return nil, 0, ErrNoSources
	}
	if len(targets) == 0 {
		return nil, 0, ErrNoTargets
	}

	targetSet := make(map[int]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Ring-buffer deque: front pushes for zero-cost moves, back pushes
	// for one-cost moves, so the BFS processes zero-cost cells first.
	capDeque := n + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	for _, s := range sources {
		dist[s] = 0
		head = (head - 1 + capDeque) % capDeque
		deque[head] = s
	}

	var neighbors []int
	target := -1
	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque
		if _, ok := targetSet[u]; ok {
			target = u
			break
		}

		neighbors = neighbors[:0]
		neighbors = g.Neighbors(u, neighbors)
		for _, v := range neighbors {
			step := 0
			if !g.Cell(v).Occupied {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, nil
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
	}

	return idxPath, dist[target], nil
}
