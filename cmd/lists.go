// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"wili/cli/internal/backend"
	"wili/cli/internal/httperrors"

	"github.com/spf13/cobra"
)

var (
	listCreateDesc string
	listRenameDesc string
	itemType       string
	itemData       string
)

// listsCmd groups the wishlist commands. Run without a subcommand it prints
// the authenticated user's wishlists.
var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage your wishlists",
	Long: `The lists command works with the wishlists of the signed-in account:
listing them, showing one with its items, creating, deleting, and adding or
removing items.

All subcommands require a valid session; a rejected token clears the local
session before the error is shown.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		lists, err := app.be.GetWishlists(cmd.Context(), app.token())
		if err != nil {
			return presentAPIError(err)
		}
		if len(lists) == 0 {
			fmt.Println("No wishlists yet. Create one with 'wili lists create <title>'.")
			return nil
		}
		for _, w := range lists {
			fmt.Printf("📋 %s  %s  (%d items)\n", w.ID, w.Title, len(w.Items))
		}
		return nil
	},
}

var listsShowCmd = &cobra.Command{
	Use:   "show <wishlist-id>",
	Short: "Show a wishlist with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		w, err := app.be.GetWishlist(cmd.Context(), args[0], app.token())
		if err != nil {
			return presentAPIError(err)
		}

		fmt.Printf("📋 %s\n", w.Title)
		if w.Description != nil && *w.Description != "" {
			fmt.Printf("   %s\n", *w.Description)
		}
		for _, it := range w.Items {
			marker := " "
			if it.Booking != nil {
				marker = "✔"
			}
			fmt.Printf(" %s %s  [%s]  %s\n", marker, it.ID, it.Type, itemSummary(it))
		}
		return nil
	},
}

var listsCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		req := backend.CreateWishlistRequest{Title: args[0]}
		if listCreateDesc != "" {
			req.Description = &listCreateDesc
		}
		w, err := app.be.CreateWishlist(cmd.Context(), req, app.token())
		if err != nil {
			return presentAPIError(err)
		}
		fmt.Printf("✅ Created wishlist %s (%s)\n", w.Title, w.ID)
		return nil
	},
}

var listsDeleteCmd = &cobra.Command{
	Use:   "delete <wishlist-id>",
	Short: "Delete a wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		if err := app.be.DeleteWishlist(cmd.Context(), args[0], app.token()); err != nil {
			return presentAPIError(err)
		}
		fmt.Println("✅ Wishlist deleted")
		return nil
	},
}

var listsAddItemCmd = &cobra.Command{
	Use:   "add-item <wishlist-id>",
	Short: "Add an item to a wishlist",
	Long: `Adds an item to the given wishlist. The item payload is free-form JSON
interpreted by the web app per item type, for example:

  wili lists add-item <id> --type link --data '{"title":"Lego set","url":"https://..."}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		data := map[string]any{}
		if itemData != "" {
			if err := json.Unmarshal([]byte(itemData), &data); err != nil {
				return fmt.Errorf("--data is not valid JSON: %w", err)
			}
		}
		it, err := app.be.AddWishlistItem(cmd.Context(), args[0], backend.CreateWishlistItemRequest{
			Type: itemType,
			Data: data,
		}, app.token())
		if err != nil {
			return presentAPIError(err)
		}
		fmt.Printf("✅ Added item %s\n", it.ID)
		return nil
	},
}

var listsRenameCmd = &cobra.Command{
	Use:   "rename <wishlist-id> <title>",
	Short: "Rename a wishlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		req := backend.UpdateWishlistRequest{Title: args[1]}
		if listRenameDesc != "" {
			req.Description = &listRenameDesc
		}
		w, err := app.be.UpdateWishlist(cmd.Context(), args[0], req, app.token())
		if err != nil {
			return presentAPIError(err)
		}
		fmt.Printf("✅ Wishlist renamed to %s\n", w.Title)
		return nil
	},
}

var listsUpdateItemCmd = &cobra.Command{
	Use:   "update-item <wishlist-id> <item-id>",
	Short: "Replace an item's payload",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		data := map[string]any{}
		if itemData != "" {
			if err := json.Unmarshal([]byte(itemData), &data); err != nil {
				return fmt.Errorf("--data is not valid JSON: %w", err)
			}
		}
		it, err := app.be.UpdateWishlistItem(cmd.Context(), args[0], args[1], backend.UpdateWishlistItemRequest{
			Type: itemType,
			Data: data,
		}, app.token())
		if err != nil {
			return presentAPIError(err)
		}
		fmt.Printf("✅ Updated item %s\n", it.ID)
		return nil
	},
}

var listsRemoveItemCmd = &cobra.Command{
	Use:   "remove-item <wishlist-id> <item-id>",
	Short: "Remove an item from a wishlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireSession()
		if err != nil {
			return err
		}

		if err := app.be.DeleteWishlistItem(cmd.Context(), args[0], args[1], app.token()); err != nil {
			return presentAPIError(err)
		}
		fmt.Println("✅ Item removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listsCmd)
	listsCmd.AddCommand(listsShowCmd, listsCreateCmd, listsRenameCmd, listsDeleteCmd,
		listsAddItemCmd, listsUpdateItemCmd, listsRemoveItemCmd)
	listsCreateCmd.Flags().StringVar(&listCreateDesc, "desc", "", "Wishlist description")
	listsRenameCmd.Flags().StringVar(&listRenameDesc, "desc", "", "Wishlist description")
	for _, c := range []*cobra.Command{listsAddItemCmd, listsUpdateItemCmd} {
		c.Flags().StringVar(&itemType, "type", "link", "Item type")
		c.Flags().StringVar(&itemData, "data", "", "Item payload as JSON")
	}
}

// requireSession builds the app and fails early when no token is stored.
func requireSession() (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	if a.token() == "" {
		return nil, fmt.Errorf("not logged in; run 'wili login' first")
	}
	return a, nil
}

// presentAPIError shows the session-expired banner on a 401, the network
// troubleshooting display on transport failures, and passes the error
// through for the exit code.
func presentAPIError(err error) error {
	if httperrors.IsUnauthorized(err) {
		httperrors.DisplaySessionExpired()
		return err
	}
	var se *httperrors.StatusError
	if !errors.As(err, &se) {
		return httperrors.FormatNetworkError(err, "contacting the wili service")
	}
	return err
}

// itemSummary picks a human-readable label out of the free-form item payload.
func itemSummary(it backend.WishlistItem) string {
	for _, key := range []string{"title", "name", "url"} {
		if v, ok := it.Data[key].(string); ok && v != "" {
			return v
		}
	}
	return "(no title)"
}
