package forward

import (
	"reflect"

	"github.com/hasbyte1/go-metaforward/proxy"
)

var (
	root     = proxy.NewRoot("List", reflect.TypeFor[*List]())
	reducing = proxy.MustDeclare(root, proxy.Declaration{
		Name:      "ReducingList",
		Container: reflect.TypeFor[*ReducingList](),
	})
)

// Root returns the untyped family of [List]. Families for specific element
// types derive from it:
//
//	var Items = proxy.MustDeclare(forward.Root(), proxy.Declaration{
//	    Name:   "Items",
//	    Target: reflect.TypeFor[*Item](),
//	    Ignore: []string{"Secret"},
//	})
//
//	l, _ := forward.New(items, forward.InFamily(Items))
func Root() *proxy.Family { return root }

// ReducingFamily returns the untyped family of [ReducingList].
func ReducingFamily() *proxy.Family { return reducing }
