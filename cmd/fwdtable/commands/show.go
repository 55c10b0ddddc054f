package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-metaforward/forward"
	"github.com/hasbyte1/go-metaforward/proxy"
)

var (
	showFamily   string
	showIgnore   []string
	showReducing bool
)

var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Print the dispatch table of a type",
	Long: `Print the members a forwarding list specialised for <type> forwards.

Members the list defines itself are listed under an alias with a trailing
underscore; the FORWARDS column shows the declared signature or field type.

Examples:
  fwdtable show bytes.Buffer
  fwdtable show --ignore Grow,Reset bytes.Buffer
  fwdtable show --reducing --format yaml time.Time
  fwdtable show --config families.yaml --family Buffers bytes.Buffer`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFamily, "family", "", "Family (from --config) to specialise")
	showCmd.Flags().StringSliceVar(&showIgnore, "ignore", nil, "Member names to leave out")
	showCmd.Flags().BoolVar(&showReducing, "reducing", false, "Use the reducing list family")
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := lookupType(args[0])
	if err != nil {
		return err
	}
	base, err := baseFamily()
	if err != nil {
		return err
	}

	var fam *proxy.Family
	if len(showIgnore) > 0 {
		// An empty name lets Declare derive Typed<base>For<T>.
		fam, err = proxy.Declare(base, proxy.Declaration{Target: t, Ignore: showIgnore})
	} else {
		fam, err = base.Specialize(t)
	}
	if err != nil {
		return err
	}
	info := tableView{Family: fam.Name(), TableInfo: fam.Table().Describe()}
	return render(cmd.OutOrStdout(), info, func(w io.Writer) error {
		return writeTable(w, info)
	})
}

// baseFamily selects the family show specialises.
func baseFamily() (*proxy.Family, error) {
	if showFamily == "" {
		if showReducing {
			return forward.ReducingFamily(), nil
		}
		return forward.Root(), nil
	}
	fams, err := loadFamilies()
	if err != nil {
		return nil, err
	}
	f, ok := fams[showFamily]
	if !ok {
		return nil, fmt.Errorf("unknown family %q", showFamily)
	}
	return f, nil
}

// loadFamilies reads --config. Without one only the root family exists.
func loadFamilies() (map[string]*proxy.Family, error) {
	root := forward.Root()
	if configPath == "" {
		return map[string]*proxy.Family{root.Name(): root}, nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return proxy.LoadFamilies(f, root, catalog)
}
