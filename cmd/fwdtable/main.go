// Command fwdtable prints the dispatch tables that forwarding lists build
// for a type.
package main

import "github.com/hasbyte1/go-metaforward/cmd/fwdtable/commands"

func main() {
	commands.Execute()
}
