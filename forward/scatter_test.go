package forward_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-metaforward/forward"
	"github.com/hasbyte1/go-metaforward/signature"
)

func TestScatter_Cycles(t *testing.T) {
	l := forward.Of(items(5)...)

	out, err := l.Scatter().Call("Add", []int{0, 1, 2})
	require.NoError(t, err)
	// levels 0..4 plus 0 1 2 0 1
	assert.Equal(t, []int{0, 2, 4, 3, 5}, ints(t, out))

	kw, err := l.Scatter().Call("Add", signature.Kwargs{"n": []int{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 3, 5}, ints(t, kw))

	arr, err := l.Scatter().Call("Add", [2]int{10, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 21, 12, 23, 14}, ints(t, arr))

	fromList, err := l.Scatter().Call("Add", forward.Of(100))
	require.NoError(t, err)
	assert.Equal(t, []int{100, 101, 102, 103, 104}, ints(t, fromList))
}

func TestScatter_LeavesOriginal(t *testing.T) {
	l := forward.Of(items(3)...)
	_ = l.Scatter()

	_, err := l.Call("Count", []int{1, 2})
	require.NoError(t, err)
}

func TestScatter_Scalars(t *testing.T) {
	l := forward.Of(items(3)...)

	out, err := l.Scatter().Call("Greet", []string{"a", "b"}, "?")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"item-0 says hi to a?",
		"item-1 says hi to b?",
		"item-2 says hi to a?",
	}, strs(t, out))

	same, err := l.Scatter().Call("Add", 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, ints(t, same))
}

func TestScatter_Broadcast(t *testing.T) {
	l := forward.Of(items(3)...)

	out, err := l.Scatter().Call("Count", forward.Broadcast([]int{7, 8, 9}))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, ints(t, out))

	suffix, err := l.Scatter().Call("Count", signature.Kwargs{"xs_": []int{7, 8, 9}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, ints(t, suffix))

	// "xs__" scatters into the parameter named "xs_".
	doubled, err := l.Scatter().Call("Total", signature.Kwargs{"xs__": [][]int{{1}, {1, 2}}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3}, ints(t, doubled))

	// Without scatter a Broadcast marker is unwrapped.
	plain, err := l.Call("Count", forward.Broadcast([]int{7, 8}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, ints(t, plain))
}

func TestScatter_Errors(t *testing.T) {
	l := forward.Of(items(3)...)

	_, err := l.Scatter().Call("Add", []int{})
	assert.ErrorIs(t, err, forward.ErrEmptyScatter)

	_, err = l.Scatter().Forward("Level")
	assert.ErrorIs(t, err, forward.ErrNotCallable)
	var nc *forward.NotCallableError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, "Level", nc.Name)
	assert.Equal(t, []string{"0:int", "1:int", "2:int"}, nc.Offending)
}

func TestScatter_Invoke(t *testing.T) {
	f := func(n int) int { return n * 10 }
	fns := forward.Of(f, f, f, f, f)

	out, err := fns.Scatter().Invoke([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 0, 10}, ints(t, out))

	plain, err := fns.Invoke(3)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 30, 30, 30, 30}, ints(t, plain))
}

func TestInvoke_NotCallable(t *testing.T) {
	f := func() int { return 1 }
	_, err := forward.Of(1, f, "x").Invoke()
	var nc *forward.NotCallableError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, []string{"0:int", "2:string"}, nc.Offending)

	empty, err := forward.Of().Invoke()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

type adder struct{ base int }

func (a adder) Invoke(args ...any) (any, error) {
	sum := a.base
	for _, x := range args {
		sum += x.(int)
	}
	return sum, nil
}

func TestInvoke_Callable(t *testing.T) {
	out, err := forward.Of(adder{1}, adder{2}).Invoke(10, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{31, 32}, ints(t, out))
}
