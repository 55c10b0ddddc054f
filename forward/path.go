package forward

import (
	"fmt"
	"strings"
)

// Path reads a dot-separated chain of members, forwarding each segment to
// the values produced by the previous one.
//
//	l.Path("Owner.Address.City")
//
// The first segment goes through the list's dispatch table. Later segments
// resolve on untyped views of the intermediate lists, so they reach any
// member the intermediate values have. A typed list still yields a typed
// result. An empty segment fails with [ErrNoAttribute].
func (l *List) Path(path string) (*List, error) {
	cur := l
	for i, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrNoAttribute, i, path)
		}
		if i > 0 {
			cur = cur.untyped()
		}
		next, err := cur.Get(seg)
		if err != nil {
			return nil, fmt.Errorf("forward: path %q: %w", path, err)
		}
		cur = next
	}
	return cur, nil
}

// untyped returns a view of l in the root family. Results keep l's typed
// mode.
func (l *List) untyped() *List {
	return &List{items: l.items, family: root, typed: l.typed, scatter: l.scatter, cfg: l.cfg}
}
