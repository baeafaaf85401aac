// Package main provides the CLI for the wildlog sightings service.
package main

import (
	"os"

	"github.com/leapstack-labs/wildlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
