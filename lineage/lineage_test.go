package lineage_test

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-metaforward/lineage"
)

type animal struct{ Name string }

func (a *animal) Speak() string { return a.Name }

type dog struct{ *animal }

func (d *dog) Fetch() string { return "ball" }

type puppy struct{ dog }

type cat struct{ *animal }

type robot struct{}

func (robot) Speak() string { return "beep" }

type speaker interface{ Speak() string }

type loop struct{ *loop }

var (
	animalT = reflect.TypeOf(&animal{})
	dogT    = reflect.TypeOf(&dog{})
	puppyT  = reflect.TypeOf(&puppy{})
	catT    = reflect.TypeOf(&cat{})
	robotT  = reflect.TypeOf(robot{})
	speakT  = reflect.TypeFor[speaker]()
)

func TestAncestors(t *testing.T) {
	assert.Equal(t, []reflect.Type{dogT, animalT, lineage.Any}, lineage.Ancestors(dogT))
	assert.Equal(t, []reflect.Type{puppyT, dogT, animalT, lineage.Any}, lineage.Ancestors(puppyT))
	assert.Equal(t, []reflect.Type{lineage.Any}, lineage.Ancestors(nil))
	assert.Equal(t, []reflect.Type{lineage.Any}, lineage.Ancestors(lineage.Any))
}

func TestAncestors_Cycle(t *testing.T) {
	lt := reflect.TypeOf(&loop{})
	assert.Equal(t, []reflect.Type{lt, lineage.Any}, lineage.Ancestors(lt))
}

func TestAncestors_Capabilities(t *testing.T) {
	r := lineage.New(lineage.WithCapabilities(speakT, reflect.TypeFor[io.Reader](), reflect.TypeOf(0)))
	assert.Equal(t, []reflect.Type{robotT, speakT, lineage.Any}, r.Ancestors(robotT))
	assert.Equal(t, []reflect.Type{dogT, animalT, speakT, lineage.Any}, r.Ancestors(dogT))
}

func TestCommon(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  reflect.Type
	}{
		{"same type", []any{1, 2, 3}, reflect.TypeOf(0)},
		{"single", []any{&dog{}}, dogT},
		{"siblings", []any{&dog{}, &cat{}}, animalT},
		{"parent and child", []any{&puppy{}, &dog{}}, dogT},
		{"child after parent", []any{&animal{}, &puppy{}}, animalT},
		{"unrelated", []any{&dog{}, 42}, lineage.Any},
		{"nil element", []any{&dog{}, nil}, lineage.Any},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineage.Common(tt.items))
		})
	}
}

func TestCommon_Capability(t *testing.T) {
	r := lineage.New(lineage.WithCapabilities(speakT))
	assert.Equal(t, speakT, r.Common([]any{robot{}, &dog{}}))
	assert.Equal(t, lineage.Any, lineage.Common([]any{robot{}, &dog{}}))
}

func TestCommon_EmptyWarns(t *testing.T) {
	var buf bytes.Buffer
	r := lineage.New(lineage.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.Equal(t, lineage.Any, r.Common(nil))
	assert.True(t, strings.Contains(buf.String(), "empty sequence"), buf.String())
}

func TestIsSubtype(t *testing.T) {
	assert.True(t, lineage.IsSubtype(dogT, animalT))
	assert.True(t, lineage.IsSubtype(puppyT, animalT))
	assert.True(t, lineage.IsSubtype(dogT, dogT))
	assert.True(t, lineage.IsSubtype(dogT, lineage.Any))
	assert.True(t, lineage.IsSubtype(dogT, nil))
	assert.True(t, lineage.IsSubtype(robotT, speakT))
	assert.False(t, lineage.IsSubtype(animalT, dogT))
	assert.False(t, lineage.IsSubtype(catT, dogT))
	assert.False(t, lineage.IsSubtype(nil, dogT))
}

func ExampleCommon() {
	fmt.Println(lineage.Common([]any{&dog{}, &cat{}}))
	fmt.Println(lineage.Common([]any{&dog{}, "x"}))
	// Output:
	// *lineage_test.animal
	// interface {}
}
