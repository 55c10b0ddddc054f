package forward_test

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-metaforward/signature"
)

type Item struct {
	Level int
	ID    string
	Hook  func(*Item, int) int
}

func NewItem(level int) *Item {
	return &Item{Level: level, ID: fmt.Sprintf("item-%d", level)}
}

func (i *Item) Token() string { return "tok-" + i.ID }

func (i *Item) Greet(name, punct string) string {
	return fmt.Sprintf("%s says hi to %s%s", i.ID, name, punct)
}

func (i *Item) Recursive(bump int) *Item { return NewItem(i.Level + bump) }

func (i *Item) Add(n int) int { return i.Level + n }

func (i *Item) Count(xs []int) int { return i.Level + len(xs) }

func (i *Item) Total(xs []int) int {
	sum := i.Level
	for _, x := range xs {
		sum += x
	}
	return sum
}

// Len collides with List.Len.
func (i *Item) Len() int { return i.Level }

func (i *Item) Fail(msg string) (string, error) {
	if msg != "" {
		return "", errors.New(msg)
	}
	return "ok", nil
}

func (*Item) ForwardDocs() map[string]signature.Doc {
	return map[string]signature.Doc{
		"Greet":     {Text: "Greet says hello.", Params: []string{"name", "punct"}, Defaults: []any{"!"}},
		"Recursive": {Params: []string{"bump"}, Defaults: []any{1}},
		"Add":       {Params: []string{"n"}},
		"Count":     {Params: []string{"xs"}},
		"Total":     {Params: []string{"xs_"}},
	}
}

type SubItem struct{ *Item }

func (s *SubItem) Sub() string { return "sub-" + s.ID }

type SubItem2 struct{ *Item }

func (s *SubItem2) Sub() string { return "sub2-" + s.ID }

type Special struct{ *Item }

type NotAnItem struct{ Level int }

type Ctx struct {
	name     string
	log      *[]string
	suppress bool
}

func (c *Ctx) Enter() (any, error) {
	*c.log = append(*c.log, "enter "+c.name)
	return c.name, nil
}

func (c *Ctx) Exit(err error) bool {
	*c.log = append(*c.log, fmt.Sprintf("exit %s %v", c.name, err))
	return c.suppress
}

var itemT = reflect.TypeOf(&Item{})

func items(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = NewItem(i)
	}
	return out
}
