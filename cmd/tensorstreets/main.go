// Command tensorstreets generates a procedural street network from a
// tensor field and prints a summary of the result.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type rootCmd struct {
	Generate generateCmd `command:"generate" description:"Build a field and street graph from a config file and print stats"`
	Inspect  inspectCmd  `command:"inspect" description:"Validate a config file and print its settings"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
