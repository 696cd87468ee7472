package problem

import (
	"fmt"

	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/matching"
)

// Validate checks the fields required by p.Kind. It does not detect
// duplicate edges or pairs outside their sides; Graph and the matcher
// report those.
func (p *Problem) Validate() error {
	switch p.Kind {
	case KindMaxFlow:
		if p.Source == "" || p.Sink == "" {
			return p.errorf("source and sink are required")
		}
		if p.Source == p.Sink {
			return p.errorf("source and sink are both %q", p.Source)
		}
		for i, v := range p.Vertices {
			if v == "" {
				return p.errorf("vertex %d: empty ID", i)
			}
		}
		for i, e := range p.Edges {
			if e.From == "" || e.To == "" {
				return p.errorf("edge %d: empty endpoint", i)
			}
			if e.Capacity < 0 {
				return p.errorf("edge %d (%s->%s): negative capacity %d", i, e.From, e.To, e.Capacity)
			}
		}
		if len(p.Left)+len(p.Right)+len(p.Pairs) > 0 {
			return p.errorf("left, right and pairs are only valid for kind %q", KindMatching)
		}
	case KindMatching:
		for i, pr := range p.Pairs {
			if len(pr) != 2 {
				return p.errorf("pair %d: want [left, right], got %d elements", i, len(pr))
			}
		}
		if p.Source != "" || p.Sink != "" || len(p.Vertices)+len(p.Edges) > 0 {
			return p.errorf("source, sink, vertices and edges are only valid for kind %q", KindMaxFlow)
		}
	case "":
		return p.errorf("kind is required")
	default:
		return p.errorf("unknown kind %q", p.Kind)
	}

	return nil
}

// Graph builds the capacity graph of a max-flow problem. Vertex order is
// Vertices, then first appearance in Edges, then Source and Sink if still
// missing, so an isolated source or sink yields a zero flow rather than a
// lookup error. Self-loops are kept; the flow engine never traverses them.
func (p *Problem) Graph() (*core.Graph, error) {
	if p.Kind != KindMaxFlow {
		return nil, p.errorf("kind %q has no flow graph", p.Kind)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithLoops())
	for _, v := range p.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: %s: vertex %q: %w", ErrBadProblem, p.Title(), v, err)
		}
	}
	for i, e := range p.Edges {
		if err := g.AddEdge(e.From, e.To, e.Capacity); err != nil {
			return nil, fmt.Errorf("%w: %s: edge %d (%s->%s): %w", ErrBadProblem, p.Title(), i, e.From, e.To, err)
		}
	}
	for _, v := range []string{p.Source, p.Sink} {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: %s: vertex %q: %w", ErrBadProblem, p.Title(), v, err)
		}
	}

	return g, nil
}

// Instance converts a matching problem. Pair endpoints are not checked
// against Left and Right here; matching.Match does that.
func (p *Problem) Instance() (matching.Instance, error) {
	if p.Kind != KindMatching {
		return matching.Instance{}, p.errorf("kind %q has no matching instance", p.Kind)
	}
	if err := p.Validate(); err != nil {
		return matching.Instance{}, err
	}

	inst := matching.Instance{
		Left:  append([]string(nil), p.Left...),
		Right: append([]string(nil), p.Right...),
		Pairs: make([]matching.Pair, len(p.Pairs)),
	}
	for i, pr := range p.Pairs {
		inst.Pairs[i] = matching.Pair{Left: pr[0], Right: pr[1]}
	}

	return inst, nil
}
