/*
wfgraph reads a workflow XML export and prints its summary, the paths
through it, or a branch diagram.

Usage:

	wfgraph <file> [flags]

Flags:

	--details          list every version, activity, stage, condition and transition
	--path             print every path from the start activity
	--visualize        draw the branch diagram from the start activity
	--json FILE        export the parsed workflow as JSON
	--yaml FILE        export the parsed workflow as YAML
	--max-depth N      path depth budget (overrides traversal.max_depth)
	--config FILE      YAML configuration file
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
