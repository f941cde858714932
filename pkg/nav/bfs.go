package nav

// Distance returns the minimum number of hops from start to target, or
// [Unreachable] when no path exists or either name is absent from the
// graph. When start equals target the distance is 0 without traversal.
//
// The search is breadth-first with a visited set keyed by page name;
// it terminates in O(V+E) regardless of cycles or self-loops.
func (g *Graph) Distance(start, target string) int {
	if !g.HasPage(start) || !g.HasPage(target) {
		return Unreachable
	}
	if start == target {
		return 0
	}

	type entry struct {
		page string
		dist int
	}

	visited := map[string]bool{start: true}
	queue := []entry{{page: start, dist: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.adj[cur.page] {
			if visited[next] {
				continue
			}
			if next == target {
				return cur.dist + 1
			}
			visited[next] = true
			queue = append(queue, entry{page: next, dist: cur.dist + 1})
		}
	}

	return Unreachable
}

// DistanceFromAny returns the minimum distance to target across the
// given start pages, evaluating each start independently and taking the
// smallest non-negative result. It returns [Unreachable] when starts is
// empty or target cannot be reached from any of them.
//
// This is the multi-role query: each role contributes its own start
// page and the caller wants the distance from whichever is closest.
func (g *Graph) DistanceFromAny(starts []string, target string) int {
	best := Unreachable
	for _, s := range starts {
		d := g.Distance(s, target)
		if d == Unreachable {
			continue
		}
		if best == Unreachable || d < best {
			best = d
		}
	}
	return best
}

// Path returns the shortest page sequence from start to target,
// inclusive of both endpoints. When start equals target the result is
// the single-element sequence [start]. When no path exists, or either
// name is absent from the graph, the result is an empty slice - callers
// distinguishing "no path" from a one-page path need only check
// emptiness when start differs from target.
//
// Each queue entry carries the partial path accumulated so far; the
// first time target is reached its path is returned. Neighbor lists are
// sorted at build time, so the lexicographically first of the
// equal-length shortest paths is returned deterministically.
func (g *Graph) Path(start, target string) []string {
	if !g.HasPage(start) || !g.HasPage(target) {
		return nil
	}
	if start == target {
		return []string{start}
	}

	visited := map[string]bool{start: true}
	queue := [][]string{{start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		last := cur[len(cur)-1]

		for _, next := range g.adj[last] {
			if visited[next] {
				continue
			}
			path := make([]string, len(cur), len(cur)+1)
			copy(path, cur)
			path = append(path, next)
			if next == target {
				return path
			}
			visited[next] = true
			queue = append(queue, path)
		}
	}

	return nil
}

// distanceTree runs a single BFS from start and returns the hop count
// to every reachable page. Pages absent from the result are unreachable
// from start. Used by ComputeDistances to avoid one BFS per (start,
// page) pair.
func (g *Graph) distanceTree(start string) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.adj[cur] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}

	return dist
}
