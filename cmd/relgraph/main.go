// Command relgraph analyzes relation-graph uniqueness in scene files and
// serves the same analysis over HTTP.
//
//	relgraph analyze scenes/*.json --format text
//	relgraph serve --config relgraph.yaml
//	relgraph version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
