package forward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-metaforward/forward"
)

func TestReducing_Single(t *testing.T) {
	r, err := forward.NewReducing([]any{NewItem(3)})
	require.NoError(t, err)

	level, err := r.Get("Level")
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	greeting, err := r.Call("Greet", "x")
	require.NoError(t, err)
	assert.Equal(t, "item-3 says hi to x!", greeting)

	v, err := r.Forward("Greet")
	require.NoError(t, err)
	m, ok := v.(*forward.Method)
	require.True(t, ok)
	got, err := m.Invoke("y")
	require.NoError(t, err)
	assert.Equal(t, "item-3 says hi to y!", got)

	full, err := m.Call("y")
	require.NoError(t, err)
	assert.Equal(t, []string{"item-3 says hi to y!"}, strs(t, full))
}

func TestReducing_Many(t *testing.T) {
	r, err := forward.NewReducing(items(2))
	require.NoError(t, err)

	levels, err := r.Get("Level")
	require.NoError(t, err)
	l, ok := levels.(*forward.List)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, ints(t, l))

	empty, err := forward.NewReducing(nil)
	require.NoError(t, err)
	v, err := empty.Forward("Level")
	require.NoError(t, err)
	assert.Equal(t, []any{}, v)
}

func TestReducing_SliceConvertsBack(t *testing.T) {
	r, err := forward.NewReducing(items(3))
	require.NoError(t, err)

	one := r.Slice(0, 1)
	levels, err := one.Get("Level")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ints(t, levels))
	assert.Same(t, forward.Root(), one.Family())
}

func TestReducing_Typed(t *testing.T) {
	r, err := forward.NewReducing([]any{NewItem(1)}, forward.AutoDetect())
	require.NoError(t, err)

	assert.Same(t, forward.ReducingFamily(), r.Family().Base())
	assert.True(t, r.Specialized("Len_"))
	assert.Equal(t, 1, r.Len())

	v, err := r.Call("Len_")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestReducing_Fallback(t *testing.T) {
	r, err := forward.NewReducing([]any{NewItem(2)}, forward.AutoDetect())
	require.NoError(t, err)

	v, err := r.Fallback("ID")
	require.NoError(t, err)
	assert.Equal(t, "item-2", v)
}

func TestReducing_Scatter(t *testing.T) {
	r, err := forward.NewReducing([]any{NewItem(2)})
	require.NoError(t, err)

	v, err := r.Scatter().Call("Add", []int{5, 6})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
