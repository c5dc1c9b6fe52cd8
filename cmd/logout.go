// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing the session.
// It removes the token, the cached user and the just-logged-in flag from the
// durable store. Booking tokens are kept: they belong to this machine, not
// to the account that happened to be signed in.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	Long: `The logout command clears the local session: the access token, the cached
user profile and the post-login flag. It is safe to run when already logged
out and never fails.

Booking tokens are NOT removed. A booking token proves this machine made a
reservation, regardless of which account is signed in, so it survives logout.
Use 'wili bookings' to inspect or drop them.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		app.svc.Logout()

		fmt.Println("✅ Session cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
