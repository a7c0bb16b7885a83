// Package main provides the CLI for the sealion row-mapping library.
package main

import (
	"os"

	"github.com/sealion-db/sealion/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
