// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"wili/cli/internal/backend"
	"wili/cli/internal/httperrors"

	"github.com/spf13/cobra"
)

var (
	meName string
)

// meCmd represents the me command for the live server-side profile.
// It fetches the profile of the token's owner and optionally updates the
// display name. A 401 here force-logs the session out before the error is
// reported.
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show or update the server-side profile",
	Long: `The me command fetches the authenticated user's profile from the server.
With --name it updates the display name first and prints the result.

If the server rejects the token, the local session is cleared and the
command reports that you have been logged out.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		token := app.token()
		if token == "" {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'wili login' to get started.")
			return nil
		}

		if meName != "" {
			name := meName
			u, err := app.be.UpdateMe(ctx, backend.UpdateUserRequest{DisplayName: &name}, token)
			if err != nil {
				if httperrors.IsUnauthorized(err) {
					httperrors.DisplaySessionExpired()
				}
				return err
			}
			fmt.Printf("✅ Display name updated: %s\n", u.DisplayName)
			return nil
		}

		u, err := app.be.GetMe(ctx, token)
		if err != nil {
			if httperrors.IsUnauthorized(err) {
				httperrors.DisplaySessionExpired()
			}
			return err
		}

		fmt.Printf("👤 %s\n", u.DisplayName)
		fmt.Printf("   id: %s\n", u.ID)
		if u.Email != nil && *u.Email != "" {
			fmt.Printf("   email: %s\n", *u.Email)
		}
		if u.AvatarURL != nil && *u.AvatarURL != "" {
			fmt.Printf("   avatar: %s\n", *u.AvatarURL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
	meCmd.Flags().StringVar(&meName, "name", "", "Set a new display name")
}
