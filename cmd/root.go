// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the wili CLI application.
// It implements subcommands for authentication, profile management, wishlists
// and booking tokens using the Cobra CLI framework. The package handles command
// parsing, execution, and provides a terminal UI with spinners and friendly
// status messages.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the wili CLI application.
var rootCmd = &cobra.Command{
	Use:           "wili",
	Short:         "Wili CLI for wishlists, bookings and account access",
	Long:          `Wili is a command-line client for the wili.me wishlist service. It signs in through Yandex or Telegram, keeps the session in the shared state directory or the OS keychain, and gives access to wishlists and booking tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("wili %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
