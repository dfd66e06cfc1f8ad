// Reference oracle for the confidential runtime precompiles.
package main

import (
	"fmt"
	"os"

	"github.com/ZigaMr/sapphire-precompiles/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
