package main

import (
	"fmt"
	"os"

	"vectoriser/internal/log"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	os.Exit(run())
}

func run() int {
	// the package logger is replaced while flags are applied
	defer func() { log.Default().Close() }()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
