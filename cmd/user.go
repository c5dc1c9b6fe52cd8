// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// userCmd looks up another user's public profile by id. Works anonymously;
// a stored session token is attached when present.
var userCmd = &cobra.Command{
	Use:   "user <user-id>",
	Short: "Show a user's public profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		u, err := app.be.GetUser(cmd.Context(), args[0], app.token())
		if err != nil {
			return presentAPIError(err)
		}

		fmt.Printf("👤 %s\n", u.DisplayName)
		fmt.Printf("   id: %s\n", u.ID)
		if u.AvatarURL != nil && *u.AvatarURL != "" {
			fmt.Printf("   avatar: %s\n", *u.AvatarURL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
}
