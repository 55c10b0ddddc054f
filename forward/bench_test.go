package forward_test

import (
	"testing"

	"github.com/hasbyte1/go-metaforward/forward"
)

func BenchmarkGet(b *testing.B) {
	l := forward.Of(items(1_000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get("Level")
	}
}

func BenchmarkCall(b *testing.B) {
	l := forward.Of(items(1_000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Call("Add", 1)
	}
}

func BenchmarkCallTyped(b *testing.B) {
	l, _ := forward.New(items(1_000), forward.AutoDetect())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Call("Add", 1)
	}
}

func BenchmarkScatter(b *testing.B) {
	l := forward.Of(items(1_000)...).Scatter()
	args := []int{0, 1, 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Call("Add", args)
	}
}
