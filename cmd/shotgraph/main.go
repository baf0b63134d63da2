// Shotgraph charts the advanced shot profiles of the Decent espresso
// machine.
//
// Usage:
//
//	shotgraph [list|show|check|serve|browse|about] [--verbose] [--quiet]
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
