package matching_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/matching"
)

// MatchSuite groups tests for the bipartite matcher.
type MatchSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MatchSuite) SetupTest() {
	s.ctx = context.Background()
}

// jobs is the candidate/job instance: four applicants, four positions.
func jobs() matching.Instance {
	return matching.Instance{
		Left:  []string{"A1", "A2", "A3", "A4"},
		Right: []string{"J1", "J2", "J3", "J4"},
		Pairs: []matching.Pair{
			{Left: "A1", Right: "J1"},
			{Left: "A1", Right: "J2"},
			{Left: "A2", Right: "J2"},
			{Left: "A3", Right: "J2"},
			{Left: "A3", Right: "J3"},
			{Left: "A4", Right: "J1"},
			{Left: "A4", Right: "J4"},
		},
	}
}

// requireValid asserts every selected pair is allowed and no node repeats.
func requireValid(t require.TestingT, inst matching.Instance, res *matching.Result) {
	allowed := make(map[matching.Pair]bool, len(inst.Pairs))
	for _, p := range inst.Pairs {
		allowed[p] = true
	}
	usedL := map[string]bool{}
	usedR := map[string]bool{}
	for _, p := range res.Pairs {
		require.True(t, allowed[p], "pair %v not allowed", p)
		require.False(t, usedL[p.Left], "left %s reused", p.Left)
		require.False(t, usedR[p.Right], "right %s reused", p.Right)
		usedL[p.Left] = true
		usedR[p.Right] = true
	}
	require.Equal(t, len(res.Pairs), res.Size)
}

func (s *MatchSuite) TestJobs() {
	inst := jobs()
	res, err := matching.Match(s.ctx, inst, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, res.Size)
	requireValid(s.T(), inst, res)
	require.Equal(s.T(), []matching.Pair{
		{Left: "A1", Right: "J1"},
		{Left: "A2", Right: "J2"},
		{Left: "A3", Right: "J3"},
		{Left: "A4", Right: "J4"},
	}, res.Pairs)
	require.Equal(s.T(), 4, res.Rounds)
}

// TestRerouting needs an augmenting path that reassigns an earlier match.
func (s *MatchSuite) TestRerouting() {
	inst := matching.Instance{
		Left:  []string{"a", "b"},
		Right: []string{"x", "y"},
		Pairs: []matching.Pair{{Left: "a", Right: "x"}, {Left: "a", Right: "y"}, {Left: "b", Right: "x"}},
	}
	res, err := matching.Match(s.ctx, inst, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Size)
	require.Equal(s.T(), []matching.Pair{{Left: "a", Right: "y"}, {Left: "b", Right: "x"}}, res.Pairs)
}

func (s *MatchSuite) TestInvalidEdge() {
	inst := jobs()
	inst.Pairs = append(inst.Pairs, matching.Pair{Left: "X", Right: "J1"})

	called := false
	opts := &matching.Options{Flow: &flow.FlowOptions{Observer: flow.ObserverFunc(func(flow.Round) { called = true })}}
	res, err := matching.Match(s.ctx, inst, opts)
	require.Nil(s.T(), res)
	require.ErrorIs(s.T(), err, matching.ErrInvalidEdge)
	var ee matching.EdgeError
	require.True(s.T(), errors.As(err, &ee))
	require.Equal(s.T(), "left", ee.Side)
	require.Equal(s.T(), matching.Pair{Left: "X", Right: "J1"}, ee.Pair)
	require.False(s.T(), called, "no flow computation before validation")

	inst = jobs()
	inst.Pairs = append(inst.Pairs, matching.Pair{Left: "A1", Right: "A2"})
	_, err = matching.Match(s.ctx, inst, nil)
	require.True(s.T(), errors.As(err, &ee))
	require.Equal(s.T(), "right", ee.Side)
	require.Contains(s.T(), err.Error(), `right endpoint "A2" not in right set`)
}

func (s *MatchSuite) TestInvalidInstance() {
	cases := map[string]matching.Instance{
		"empty left":      {Left: []string{""}},
		"empty right":     {Right: []string{""}},
		"duplicate left":  {Left: []string{"a", "a"}},
		"duplicate right": {Right: []string{"x", "x"}},
		"overlap":         {Left: []string{"a"}, Right: []string{"a"}},
	}
	for name, inst := range cases {
		_, err := matching.Match(s.ctx, inst, nil)
		require.ErrorIs(s.T(), err, matching.ErrInvalidInstance, name)
	}

	_, err := matching.Match(s.ctx, jobs(), &matching.Options{Source: "A1"})
	require.ErrorIs(s.T(), err, matching.ErrInvalidInstance)
	_, err = matching.Match(s.ctx, jobs(), &matching.Options{Source: "x", Sink: "x"})
	require.ErrorIs(s.T(), err, matching.ErrInvalidInstance)
}

// TestTerminalNamesAvoidNodes: nodes called "s" and "t" are ordinary nodes.
func (s *MatchSuite) TestTerminalNamesAvoidNodes() {
	inst := matching.Instance{
		Left:  []string{"s", "_s"},
		Right: []string{"t"},
		Pairs: []matching.Pair{{Left: "s", Right: "t"}, {Left: "_s", Right: "t"}},
	}
	res, err := matching.Match(s.ctx, inst, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Size)
	require.Equal(s.T(), []matching.Pair{{Left: "s", Right: "t"}}, res.Pairs)
}

func (s *MatchSuite) TestEmptyAndDuplicatePairs() {
	res, err := matching.Match(s.ctx, matching.Instance{}, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Size)
	require.Empty(s.T(), res.Pairs)

	inst := matching.Instance{
		Left:  []string{"a"},
		Right: []string{"x", "y"},
		Pairs: []matching.Pair{{Left: "a", Right: "x"}, {Left: "a", Right: "x"}},
	}
	res, err = matching.Match(s.ctx, inst, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Size)
}

// TestInstanceUntouched: the matcher never mutates its input.
func (s *MatchSuite) TestInstanceUntouched() {
	inst := jobs()
	before := jobs()
	_, err := matching.Match(s.ctx, inst, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, inst)
}

func (s *MatchSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := matching.Match(ctx, jobs(), nil)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchSuite))
}

// bruteForceMax returns the size of a maximum matching by exhaustive search.
func bruteForceMax(inst matching.Instance) int {
	adj := make(map[string][]string)
	for _, p := range inst.Pairs {
		adj[p.Left] = append(adj[p.Left], p.Right)
	}
	used := map[string]bool{}
	var rec func(i int) int
	rec = func(i int) int {
		if i == len(inst.Left) {
			return 0
		}
		best := rec(i + 1) // leave Left[i] unmatched
		for _, r := range adj[inst.Left[i]] {
			if used[r] {
				continue
			}
			used[r] = true
			if c := 1 + rec(i+1); c > best {
				best = c
			}
			used[r] = false
		}
		return best
	}

	return rec(0)
}

func randomInstance(r *rand.Rand) matching.Instance {
	nl, nr := 1+r.Intn(6), 1+r.Intn(6)
	inst := matching.Instance{}
	for i := 0; i < nl; i++ {
		inst.Left = append(inst.Left, fmt.Sprintf("L%d", i))
	}
	for j := 0; j < nr; j++ {
		inst.Right = append(inst.Right, fmt.Sprintf("R%d", j))
	}
	p := r.Float64()
	for _, l := range inst.Left {
		for _, rt := range inst.Right {
			if r.Float64() < p {
				inst.Pairs = append(inst.Pairs, matching.Pair{Left: l, Right: rt})
			}
		}
	}
	r.Shuffle(len(inst.Pairs), func(i, j int) { inst.Pairs[i], inst.Pairs[j] = inst.Pairs[j], inst.Pairs[i] })

	return inst
}

// TestMaximalityAgainstBruteForce compares sizes with exhaustive search on
// small random instances (at most six nodes per side).
func TestMaximalityAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for i := 0; i < 300; i++ {
		inst := randomInstance(r)
		res, err := matching.Match(context.Background(), inst, nil)
		require.NoError(t, err)
		requireValid(t, inst, res)
		require.Equal(t, bruteForceMax(inst), res.Size, "instance %d: %+v", i, inst)
	}
}
