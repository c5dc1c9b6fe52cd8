// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It answers from the locally persisted session only; no network calls are made.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session (offline)",
	Long: `The whoami command shows who is signed in according to the locally stored
session. It never talks to the backend, so it works offline and cannot be
slowed down by the network.

Use 'wili me' to fetch the live profile from the server instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		st := app.sessions.Current()
		if !st.LoggedIn() {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'wili login' to get started.")
			return nil
		}

		if st.User != nil {
			fmt.Printf("👤 Current user: %s\n", st.User.DisplayName)
			if st.User.Email != nil && *st.User.Email != "" {
				fmt.Printf("   %s\n", *st.User.Email)
			}
			return nil
		}

		// Token present but no cached profile yet (for example right after a
		// Telegram handshake whose profile fetch failed).
		fmt.Println("👤 Logged in (profile not cached yet)")
		fmt.Println("   Run 'wili me' to fetch it from the server.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
