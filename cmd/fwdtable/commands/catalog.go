package commands

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"time"
)

// catalog maps the names accepted on the command line and in family files
// to types.
var catalog = map[string]reflect.Type{
	"bytes.Buffer":    reflect.TypeFor[*bytes.Buffer](),
	"bytes.Reader":    reflect.TypeFor[*bytes.Reader](),
	"strings.Builder": reflect.TypeFor[*strings.Builder](),
	"strings.Reader":  reflect.TypeFor[*strings.Reader](),
	"time.Time":       reflect.TypeFor[time.Time](),
	"time.Duration":   reflect.TypeFor[time.Duration](),
	"url.URL":         reflect.TypeFor[*url.URL](),
	"io.Reader":       reflect.TypeFor[io.Reader](),
	"io.Writer":       reflect.TypeFor[io.Writer](),
	"io.ReadWriter":   reflect.TypeFor[io.ReadWriter](),
	"fmt.Stringer":    reflect.TypeFor[fmt.Stringer](),
	"error":           reflect.TypeFor[error](),
}

func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func lookupType(name string) (reflect.Type, error) {
	t, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q; run 'fwdtable types' for the list", name)
	}
	return t, nil
}
