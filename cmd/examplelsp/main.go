// Command examplelsp is a minimal reference server built on lspgo: it wires
// a handler that tracks open documents and answers textDocument/hover with
// a description of what it knows, demonstrating the framework's handler
// surface, client handle, and transport options end to end.
package main

import (
	"fmt"
	"os"

	"github.com/akhenakh/lspgo/cmd/examplelsp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
