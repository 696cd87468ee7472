package problem

import (
	"errors"
	"fmt"
)

// ErrBadProblem is wrapped by every validation and decoding error.
var ErrBadProblem = errors.New("problem: malformed problem")

// ErrUnknownFormat is returned for a format other than yaml, yml or toml.
var ErrUnknownFormat = errors.New("problem: unknown format")

// Kind selects what a Problem describes.
type Kind string

const (
	KindMaxFlow  Kind = "maxflow"
	KindMatching Kind = "matching"
)

// EdgeSpec is one directed capacity edge.
type EdgeSpec struct {
	From     string `yaml:"from" toml:"from"`
	To       string `yaml:"to" toml:"to"`
	Capacity int64  `yaml:"capacity" toml:"capacity"`
}

// Problem is the decoded file. Source, Sink, Vertices and Edges belong to
// max-flow problems; Left, Right and Pairs to matching problems. Vertices is
// optional and only needed for nodes that appear in no edge.
type Problem struct {
	Kind Kind   `yaml:"kind" toml:"kind"`
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`

	Source   string     `yaml:"source,omitempty" toml:"source,omitempty"`
	Sink     string     `yaml:"sink,omitempty" toml:"sink,omitempty"`
	Vertices []string   `yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges,omitempty" toml:"edges,omitempty"`

	Left  []string   `yaml:"left,omitempty" toml:"left,omitempty"`
	Right []string   `yaml:"right,omitempty" toml:"right,omitempty"`
	Pairs [][]string `yaml:"pairs,omitempty" toml:"pairs,omitempty"`
}

// Title is Name, or "unnamed" when the file gave none.
func (p *Problem) Title() string {
	if p.Name == "" {
		return "unnamed"
	}
	return p.Name
}

func (p *Problem) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrBadProblem, p.Title(), fmt.Sprintf(format, args...))
}
