package matching_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/maxflow/matching"
)

// ExampleMatch assigns four candidates to four jobs.
func ExampleMatch() {
	res, err := matching.Match(context.Background(), jobs(), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("matched:", res.Size)
	for _, p := range res.Pairs {
		fmt.Printf("  %s -- %s\n", p.Left, p.Right)
	}
	// Output:
	// matched: 4
	//   A1 -- J1
	//   A2 -- J2
	//   A3 -- J3
	//   A4 -- J4
}

// ExampleMatch_invalidEdge shows the fail-fast check on pair endpoints.
func ExampleMatch_invalidEdge() {
	inst := matching.Instance{
		Left:  []string{"A1"},
		Right: []string{"J1"},
		Pairs: []matching.Pair{{Left: "X", Right: "J1"}},
	}
	_, err := matching.Match(context.Background(), inst, nil)
	fmt.Println(err)
	// Output:
	// matching: edge (X,J1): left endpoint "X" not in left set
}
