package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-metaforward/proxy"
)

func render(w io.Writer, v any, text func(io.Writer) error) error {
	switch outputFormat {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return text(w)
	}
	return fmt.Errorf("unknown format %q (want text or yaml)", outputFormat)
}

// tableView is the output of show: a dispatch table and the family it
// belongs to.
type tableView struct {
	Family          string `yaml:"family"`
	proxy.TableInfo `yaml:",inline"`
}

func writeTable(w io.Writer, info tableView) error {
	fmt.Fprintf(w, "family:      %s\n", info.Family)
	fmt.Fprintf(w, "target:      %s\n", info.Target)
	fmt.Fprintf(w, "fingerprint: %s\n\n", info.Fingerprint)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tFORWARDS\tDOC")
	for _, m := range info.Members {
		what := m.Signature
		if what == "" {
			what = m.Type
		}
		name := m.Name
		if m.Target != "" {
			name = fmt.Sprintf("%s (%s)", m.Name, m.Target)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, m.Kind, what, m.Doc)
	}
	return tw.Flush()
}
