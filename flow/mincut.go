package flow

// Cut is an s-t cut: a partition of the vertices with the source on one side
// and the sink on the other, plus the original edges crossing it.
type Cut struct {
	// Source lists vertices reachable from the source in the final residual network.
	Source []string
	// Sink lists the remaining vertices.
	Sink []string
	// Edges are original edges leading from Source to Sink.
	Edges []Edge
	// Capacity is the sum of original capacities over Edges.
	Capacity int64
}

// MinCut derives a minimum s-t cut from a finished computation.
//
// The source side is every vertex reachable from r.Source through arcs with
// positive residual. Since no augmenting path remains, the sink is not among
// them, every crossing edge is saturated, and Capacity equals r.Value.
//
// Complexity: O(V + E).
func (r *Result) MinCut() *Cut {
	rn := r.Residual
	reach := map[string]bool{r.Source: true}
	queue := []string{r.Source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range rn.next[u] {
			if !reach[v] && rn.cap[u][v] > 0 {
				reach[v] = true
				queue = append(queue, v)
			}
		}
	}

	cut := &Cut{}
	for _, v := range rn.order {
		if reach[v] {
			cut.Source = append(cut.Source, v)
		} else {
			cut.Sink = append(cut.Sink, v)
		}
	}
	for _, e := range r.Flow.order {
		if reach[e.From] && !reach[e.To] {
			cut.Edges = append(cut.Edges, e)
			cut.Capacity += r.Flow.capacity[e]
		}
	}

	return cut
}
