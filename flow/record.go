package flow

import "github.com/katalvlaran/maxflow/core"

// FlowRecord maps every original edge to the flow pushed along it.
// Each value stays within [0, capacity] throughout the computation.
type FlowRecord struct {
	order    []Edge
	flow     map[Edge]int64
	capacity map[Edge]int64
}

// Entry is one row of a FlowRecord.
type Entry struct {
	Edge     Edge
	Flow     int64
	Capacity int64
}

// newFlowRecord returns a record with zero flow on every edge of g.
func newFlowRecord(g *core.Graph) *FlowRecord {
	edges := g.Edges()
	r := &FlowRecord{
		order:    make([]Edge, 0, len(edges)),
		flow:     make(map[Edge]int64, len(edges)),
		capacity: make(map[Edge]int64, len(edges)),
	}
	for _, e := range edges {
		k := Edge{From: e.From, To: e.To}
		r.order = append(r.order, k)
		r.flow[k] = 0
		r.capacity[k] = e.Capacity
	}

	return r
}

// apply records delta units moving along the residual arc u→v.
//
// Flow already on the opposite original edge v→u is cancelled first; the
// remainder is added to the original edge u→v. If neither direction is an
// original edge the call is a no-op.
func (r *FlowRecord) apply(u, v string, delta int64) {
	back := Edge{From: v, To: u}
	if f, ok := r.flow[back]; ok && f > 0 {
		cancel := min(delta, f)
		r.flow[back] = f - cancel
		delta -= cancel
	}
	if delta == 0 {
		return
	}
	fwd := Edge{From: u, To: v}
	if _, ok := r.flow[fwd]; ok {
		r.flow[fwd] += delta
	}
}

// Get returns the flow on the original edge from→to (0 if absent).
func (r *FlowRecord) Get(from, to string) int64 {
	return r.flow[Edge{From: from, To: to}]
}

// Has reports whether from→to is an original edge.
func (r *FlowRecord) Has(from, to string) bool {
	_, ok := r.flow[Edge{From: from, To: to}]
	return ok
}

// Capacity returns the original capacity of from→to (0 if absent).
func (r *FlowRecord) Capacity(from, to string) int64 {
	return r.capacity[Edge{From: from, To: to}]
}

// Edges returns the original edges in graph insertion order.
func (r *FlowRecord) Edges() []Edge {
	out := make([]Edge, len(r.order))
	copy(out, r.order)

	return out
}

// Entries returns every edge with its flow and capacity, in insertion order.
func (r *FlowRecord) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, e := range r.order {
		out[i] = Entry{Edge: e, Flow: r.flow[e], Capacity: r.capacity[e]}
	}

	return out
}

// Outflow sums flow on original edges leaving v.
func (r *FlowRecord) Outflow(v string) int64 {
	var sum int64
	for _, e := range r.order {
		if e.From == v && e.To != v {
			sum += r.flow[e]
		}
	}

	return sum
}

// Inflow sums flow on original edges entering v.
func (r *FlowRecord) Inflow(v string) int64 {
	var sum int64
	for _, e := range r.order {
		if e.To == v && e.From != v {
			sum += r.flow[e]
		}
	}

	return sum
}

// Verify checks capacity respect on every edge and conservation at every
// vertex other than source and sink. It returns the first OverflowError or
// ConservationError found, scanning in insertion order.
//
// Complexity: O(V + E).
func (r *FlowRecord) Verify(source, sink string) error {
	in := make(map[string]int64)
	out := make(map[string]int64)
	var seen []string
	mark := func(v string) {
		if _, ok := in[v]; !ok {
			in[v] = 0
			out[v] = 0
			seen = append(seen, v)
		}
	}

	for _, e := range r.order {
		f, c := r.flow[e], r.capacity[e]
		if f < 0 || f > c {
			return OverflowError{Edge: e, Flow: f, Capacity: c}
		}
		mark(e.From)
		mark(e.To)
		if e.From == e.To {
			continue
		}
		out[e.From] += f
		in[e.To] += f
	}

	for _, v := range seen {
		if v == source || v == sink {
			continue
		}
		if in[v] != out[v] {
			return ConservationError{Vertex: v, In: in[v], Out: out[v]}
		}
	}

	return nil
}
