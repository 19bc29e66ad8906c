// Command sunder draws a configured widget with either backend.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sunder/cmd/sunder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
