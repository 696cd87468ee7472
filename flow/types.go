package flow

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for every caller contract violation detected
// before a computation starts. All input errors below satisfy
// errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("flow: invalid input")

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("%w: source vertex not found", ErrInvalidInput)

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("%w: sink vertex not found", ErrInvalidInput)

// ErrSameSourceSink is returned when source and sink are the same vertex.
var ErrSameSourceSink = fmt.Errorf("%w: source and sink are the same vertex", ErrInvalidInput)

// ErrRoundLimit is returned when FlowOptions.MaxRounds is exceeded.
var ErrRoundLimit = errors.New("flow: augmentation round limit exceeded")

// ErrInfeasible is wrapped by the errors Verify reports.
var ErrInfeasible = errors.New("flow: infeasible flow")

// CapacityError is returned when an edge has a negative capacity.
type CapacityError struct {
	From, To string
	Capacity int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Capacity)
}

// Unwrap makes CapacityError match ErrInvalidInput.
func (e CapacityError) Unwrap() error { return ErrInvalidInput }

// OverflowError reports a recorded flow outside [0, capacity].
type OverflowError struct {
	Edge     Edge
	Flow     int64
	Capacity int64
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("flow: edge %s carries %d, capacity %d", e.Edge, e.Flow, e.Capacity)
}

func (e OverflowError) Unwrap() error { return ErrInfeasible }

// ConservationError reports an inner vertex whose inflow differs from its outflow.
type ConservationError struct {
	Vertex  string
	In, Out int64
}

func (e ConservationError) Error() string {
	return fmt.Sprintf("flow: vertex %q receives %d but sends %d", e.Vertex, e.In, e.Out)
}

func (e ConservationError) Unwrap() error { return ErrInfeasible }

// Edge identifies a directed vertex pair From→To.
type Edge struct {
	From, To string
}

// String renders the edge as "From->To".
func (e Edge) String() string { return e.From + "->" + e.To }

// Round describes one completed augmentation.
type Round struct {
	// Index is the 1-based round number.
	Index int
	// Path is the augmenting path used in this round.
	Path AugmentingPath
	// Bottleneck is the flow added in this round.
	Bottleneck int64
	// Total is the flow value after this round.
	Total int64
}

// Observer receives one callback per augmentation round.
// Observers must not retain or modify the residual network; they see only Round values.
type Observer interface {
	OnAugment(r Round)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(r Round)

// OnAugment calls f(r).
func (f ObserverFunc) OnAugment(r Round) { f(r) }

// FlowOptions configures EdmondsKarp.
//   - Observer: if non-nil, called after every augmentation round.
//   - MaxRounds: if > 0, stop with ErrRoundLimit once this many rounds ran
//     and another augmenting path still exists.
type FlowOptions struct {
	Observer  Observer
	MaxRounds int
}

// DefaultOptions returns options with no observer and no round limit.
func DefaultOptions() *FlowOptions {
	return &FlowOptions{}
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// Value is the maximum flow from Source to Sink.
	Value int64
	// Flow holds the realized flow per original edge.
	Flow *FlowRecord
	// Residual is the final residual network; no augmenting path remains in it.
	Residual *ResidualNetwork
	// Rounds is the number of augmentations performed.
	Rounds int

	Source, Sink string
}
