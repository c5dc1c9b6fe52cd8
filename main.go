// Package main is the entry point for the wili CLI application.
// It provides command-line access to the wili.me wishlist service.
package main

import (
	"wili/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
