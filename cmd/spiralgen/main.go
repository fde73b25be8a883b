// Command spiralgen generates planar spiral coils and estimates their inductance.
package main

import (
	"fmt"
	"log"
	"os"

	"spiralgen/cmd/spiralgen/commands"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
