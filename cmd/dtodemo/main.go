// Command dtodemo loads application settings, builds a few entities and
// logs them, including a localized validation failure.
package main

import (
	"os"

	"github.com/dmitrymomot/dtokit/cmd/dtodemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
