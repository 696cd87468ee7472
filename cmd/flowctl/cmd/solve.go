package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/matching"
	"github.com/katalvlaran/maxflow/problem"
)

// solve runs p and writes its report to w.
func (a *app) solve(ctx context.Context, p *problem.Problem, w io.Writer) error {
	switch p.Kind {
	case problem.KindMaxFlow:
		return a.solveMaxFlow(ctx, p, w)
	case problem.KindMatching:
		return a.solveMatching(ctx, p, w)
	}

	return fmt.Errorf("%w: unknown kind %q", problem.ErrBadProblem, p.Kind)
}

// solveMaxFlow prints the flow value, the flow on every edge as
// "u -> v : flow/capacity" and a minimum cut.
func (a *app) solveMaxFlow(ctx context.Context, p *problem.Problem, w io.Writer) error {
	g, err := p.Graph()
	if err != nil {
		return err
	}
	res, err := flow.EdmondsKarp(ctx, g, p.Source, p.Sink, a.flowOptions(p.Title()))
	if err != nil {
		return fmt.Errorf("%s: %w", p.Title(), err)
	}
	if err = res.Verify(); err != nil {
		return fmt.Errorf("%s: %w", p.Title(), err)
	}
	a.log.WithFields(log.Fields{
		"problem": p.Title(),
		"value":   res.Value,
		"rounds":  res.Rounds,
	}).Info("max flow computed")

	fmt.Fprintf(w, "%s: max flow = %d (%d rounds)\n", p.Title(), res.Value, res.Rounds)
	for _, e := range res.Flow.Entries() {
		fmt.Fprintf(w, "  %s -> %s : %d/%d\n", e.Edge.From, e.Edge.To, e.Flow, e.Capacity)
	}
	cut := res.MinCut()
	edges := make([]string, len(cut.Edges))
	for i, e := range cut.Edges {
		edges[i] = e.String()
	}
	fmt.Fprintf(w, "  min cut = %d: %s\n", cut.Capacity, strings.Join(edges, " "))

	return nil
}

// solveMatching prints the matching size and the selected pairs.
func (a *app) solveMatching(ctx context.Context, p *problem.Problem, w io.Writer) error {
	inst, err := p.Instance()
	if err != nil {
		return err
	}
	res, err := matching.Match(ctx, inst, &matching.Options{Flow: a.flowOptions(p.Title())})
	if err != nil {
		return fmt.Errorf("%s: %w", p.Title(), err)
	}
	a.log.WithFields(log.Fields{
		"problem": p.Title(),
		"size":    res.Size,
		"rounds":  res.Rounds,
	}).Info("matching computed")

	fmt.Fprintf(w, "%s: matched = %d (%d rounds)\n", p.Title(), res.Size, res.Rounds)
	for _, pr := range res.Pairs {
		fmt.Fprintf(w, "  %s -- %s\n", pr.Left, pr.Right)
	}

	return nil
}
