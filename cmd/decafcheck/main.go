// Command decafcheck runs the semantic analysis pass over a single fixture
// file and reports every diagnostic found.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/decafsema/cmd/decafcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
