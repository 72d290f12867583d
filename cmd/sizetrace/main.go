// Command sizetrace replays animated size scenarios.
package main

import (
	"os"

	"github.com/go-drift/animatedsize/cmd/sizetrace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
