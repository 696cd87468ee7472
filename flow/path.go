package flow

import "strings"

// AugmentingPath is an ordered sequence of arcs from source to sink in a
// residual network. It is rebuilt from scratch for every round.
type AugmentingPath []Edge

// Vertices returns the vertices visited by the path, source first.
func (p AugmentingPath) Vertices() []string {
	if len(p) == 0 {
		return nil
	}
	out := make([]string, 0, len(p)+1)
	out = append(out, p[0].From)
	for _, e := range p {
		out = append(out, e.To)
	}

	return out
}

// String renders the path as "S -> A -> T".
func (p AugmentingPath) String() string {
	return strings.Join(p.Vertices(), " -> ")
}

// FindAugmentingPath runs a breadth-first search from source over arcs with
// strictly positive residual capacity and returns the first path that reaches
// sink, which has the fewest arcs among all augmenting paths.
//
// Neighbors are explored in the network's fixed order, so equal inputs
// always yield the same path. The predecessor map is local to the call and
// the network is not modified. ok is false when sink is unreachable, when
// either endpoint is missing, or when source == sink.
//
// Complexity: O(V + E).
func FindAugmentingPath(rn *ResidualNetwork, source, sink string) (path AugmentingPath, ok bool) {
	if source == sink || !rn.HasVertex(source) || !rn.HasVertex(sink) {
		return nil, false
	}

	parent := make(map[string]string)
	visited := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range rn.next[u] {
			if visited[v] || rn.cap[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return tracePath(parent, source, sink), true
			}
			queue = append(queue, v)
		}
	}

	return nil, false
}

// tracePath walks parent links back from sink and returns the path in
// source→sink order.
func tracePath(parent map[string]string, source, sink string) AugmentingPath {
	var rev AugmentingPath
	for v := sink; v != source; v = parent[v] {
		rev = append(rev, Edge{From: parent[v], To: v})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
