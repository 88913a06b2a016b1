// Package main is the entry point for the hookcfg CLI.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}
