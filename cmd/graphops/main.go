// Command graphops is an interactive shell over an in-memory weighted graph
// with breadth-first, depth-first and uniform-cost search.
//
// Usage:
//
//	graphops [flags]                  start the shell
//	graphops exec -- COMMAND ARGS...  run one shell command
//	graphops version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
