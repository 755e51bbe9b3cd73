// Package main is the entry point for the anybar CLI.
package main

import (
	"os"

	"github.com/tamzrod/anybar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
