package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphGenerationSkipsZeroOnWrap(t *testing.T) {
	t.Parallel()

	g := NewGraph()
	h := g.Add(NewPivot("a"))
	g.slots[h.Index].generation = math.MaxUint32

	_, ok := g.Remove(Handle{Index: h.Index, Generation: math.MaxUint32})
	require.True(t, ok)

	next := g.Add(NewPivot("b"))
	assert.Equal(t, h.Index, next.Index)
	assert.False(t, next.IsNone())
	assert.Equal(t, uint32(1), next.Generation)

	n, ok := g.Node(next)
	require.True(t, ok)
	assert.Equal(t, "b", n.NodeBase().Name)
}
