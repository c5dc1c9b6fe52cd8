// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// bookingsCmd groups the local booking token commands. Booking tokens are
// machine-local proofs of reservations made from this client; they require
// no session and survive logout.
var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Inspect booking tokens held by this machine",
	Long: `The bookings command lists the cancellation tokens this machine holds for
booked wishlist items. A token is stored when a reservation is made from this
client and is the only proof needed to cancel it later, so the list is kept
independently of the signed-in account.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		tokens := app.bookings.All()
		if len(tokens) == 0 {
			fmt.Println("No booking tokens on this machine.")
			return nil
		}
		for _, t := range tokens {
			fmt.Printf("🔖 wishlist %s  item %s  booked %s\n",
				t.WishlistID, t.ItemID, t.BookedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var bookingsRemoveCmd = &cobra.Command{
	Use:   "remove <wishlist-id> <item-id>",
	Short: "Drop the booking token for an item",
	Long: `Removes the locally held cancellation token for the given wishlist item.
This only forgets the token; it does not cancel the reservation on the
server. Without the token the reservation can no longer be cancelled from
this machine.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if !app.bookings.Has(args[0], args[1]) {
			fmt.Println("No booking token for that item.")
			return nil
		}
		app.bookings.Remove(args[0], args[1])
		fmt.Println("✅ Booking token removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookingsCmd)
	bookingsCmd.AddCommand(bookingsRemoveCmd)
}
