// Package commands provides the CLI commands for the fwdtable tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "fwdtable",
	Short: "Inspect forwarding dispatch tables",
	Long: `fwdtable shows what a forwarding list exposes for a given element type.

Usage:
  fwdtable types                          List the known types
  fwdtable show bytes.Buffer              Print the dispatch table of a type
  fwdtable show --family Readers io.Reader
  fwdtable families --config families.yaml
  fwdtable version                        Print version`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with family declarations")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or yaml")
}
