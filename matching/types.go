package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maxflow/flow"
)

// ErrInvalidEdge is wrapped by EdgeError.
var ErrInvalidEdge = errors.New("matching: invalid edge")

// ErrInvalidInstance reports a malformed Instance or Options: empty or
// duplicate IDs, overlapping sides, or clashing terminal names.
var ErrInvalidInstance = errors.New("matching: invalid instance")

// EdgeError reports an allowed pair whose endpoint lies outside its declared side.
type EdgeError struct {
	Pair Pair
	// Side is "left" or "right": the endpoint that failed.
	Side string
}

func (e EdgeError) Error() string {
	id := e.Pair.Left
	if e.Side == "right" {
		id = e.Pair.Right
	}
	return fmt.Sprintf("matching: edge (%s,%s): %s endpoint %q not in %s set",
		e.Pair.Left, e.Pair.Right, e.Side, id, e.Side)
}

// Unwrap makes EdgeError match ErrInvalidEdge.
func (e EdgeError) Unwrap() error { return ErrInvalidEdge }

// Pair is one allowed (or selected) left–right assignment.
type Pair struct {
	Left, Right string
}

// Instance is a bipartite compatibility relation. The matcher never mutates it.
type Instance struct {
	Left  []string
	Right []string
	Pairs []Pair
}

// Result is a maximum-cardinality matching.
type Result struct {
	// Size equals len(Pairs) and the max-flow value of the auxiliary network.
	Size int
	// Pairs are ordered by position in Left, then by position in Right.
	Pairs []Pair
	// Rounds is the number of augmentations the flow engine performed.
	Rounds int
}

// Options configures Match.
//   - Source, Sink: names of the synthetic terminals. Empty picks "s" and "t",
//     prefixed with '_' until they clash with no instance node.
//   - Flow: passed through to flow.EdmondsKarp (observer, round limit).
type Options struct {
	Source, Sink string
	Flow         *flow.FlowOptions
}
