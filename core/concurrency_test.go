// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// from one hub to distinct heads are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentSetCapacityAndRead mixes SetCapacity with readers
// to verify no races or panics occur under concurrent modification.
func TestConcurrentSetCapacityAndRead(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(c int64) {
			defer wg.Done()
			_ = g.SetCapacity("A", "B", c)
		}(int64(i))

		go func() {
			defer wg.Done()
			c, ok := g.Capacity("A", "B")
			require.True(t, ok)
			require.GreaterOrEqual(t, c, int64(0))
		}()
	}
	wg.Wait()
}

// TestConcurrentNeighborsAndClone validates concurrent reads
// (Neighbors) and clones do not race with each other.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("A", fmt.Sprintf("B%d", i), int64(i)))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors("A")
			require.NoError(t, err)
			require.Len(t, nbs, 50)
		}()
	}

	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			c := g.Clone()
			require.Equal(t, 50, c.EdgeCount())
		}()
	}

	wg.Wait()
}
