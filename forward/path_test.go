package forward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-metaforward/forward"
)

func TestPath(t *testing.T) {
	l := forward.Of(&SubItem{NewItem(1)}, &SubItem{NewItem(2)})

	got, err := l.Path("Item.Level")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints(t, got))

	got, err = l.Path("ID")
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1", "item-2"}, strs(t, got))
}

func TestPath_Errors(t *testing.T) {
	l := forward.Of(NewItem(1))

	_, err := l.Path("Level.Missing")
	var ae *forward.AttributeError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Missing", ae.Name)

	_, err = l.Path("Level..ID")
	assert.ErrorIs(t, err, forward.ErrNoAttribute)

	_, err = l.Path("")
	assert.ErrorIs(t, err, forward.ErrNoAttribute)
}

func TestPath_Empty(t *testing.T) {
	got, err := forward.Of().Path("Item.Level")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

type group struct {
	Members *forward.List
}

func TestPath_TypedThroughLists(t *testing.T) {
	a := &group{Members: forward.Of(NewItem(1), NewItem(2))}
	b := &group{Members: forward.Of(NewItem(3))}
	l, err := forward.New([]any{a, b}, forward.AutoDetect())
	require.NoError(t, err)

	got, err := l.Path("Members.Level")
	require.NoError(t, err)
	assert.True(t, got.Typed())

	inner, err := forward.Values[*forward.List](got)
	require.NoError(t, err)
	require.Len(t, inner, 2)
	assert.Equal(t, []int{1, 2}, ints(t, inner[0]))
	assert.Equal(t, []int{3}, ints(t, inner[1]))

	_, err = l.Path("Level")
	assert.ErrorIs(t, err, forward.ErrNotForwarded)
}
