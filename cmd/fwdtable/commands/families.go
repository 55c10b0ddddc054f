package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the families declared in --config",
	Long: `Declare the families of a YAML file and list them.

Example file:
  families:
    - name: Buffers
      target: bytes.Buffer
      ignore: [Grow]
    - name: Readers
      target: io.Reader
      default: true

Examples:
  fwdtable families --config families.yaml`,
	Args: cobra.NoArgs,
	RunE: runFamilies,
}

type familyInfo struct {
	Name        string   `yaml:"name"`
	Base        string   `yaml:"base,omitempty"`
	Target      string   `yaml:"target,omitempty"`
	Ignore      []string `yaml:"ignore,omitempty"`
	Members     int      `yaml:"members"`
	Fingerprint string   `yaml:"fingerprint,omitempty"`
}

func runFamilies(cmd *cobra.Command, args []string) error {
	fams, err := loadFamilies()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(fams))
	for n := range fams {
		names = append(names, n)
	}
	sort.Strings(names)

	infos := make([]familyInfo, 0, len(names))
	for _, n := range names {
		f := fams[n]
		info := familyInfo{Name: f.Name(), Ignore: f.Ignored()}
		if b := f.Base(); b != nil {
			info.Base = b.Name()
		}
		if t := f.Target(); t != nil {
			info.Target = t.String()
		}
		if tbl := f.Table(); tbl != nil {
			info.Members = tbl.Len()
			info.Fingerprint = tbl.Fingerprint()
		}
		infos = append(infos, info)
	}

	return render(cmd.OutOrStdout(), infos, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tBASE\tTARGET\tMEMBERS\tIGNORED")
		for _, i := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", i.Name, i.Base, i.Target, i.Members, strings.Join(i.Ignore, ","))
		}
		return tw.Flush()
	})
}
