// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "wili/cli/internal/errors"
	"wili/cli/internal/httperrors"

	"github.com/spf13/cobra"
)

var (
	loginCode     string
	loginInitData string
)

// loginCmd represents the login command for Yandex OAuth authentication.
// It opens the Yandex authorization page in the browser; the user completes
// login there and pastes the authorization code from the callback URL back
// into the terminal. The code is then exchanged for a session.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate via Yandex and store the session",
	Long: `The login command starts the Yandex OAuth flow. It opens the authorization
page in your default browser; after approving access, Yandex redirects to the
wili web app with a code in the URL. Paste that code here to finish.

The resulting session token is stored in the shared state directory (or the
OS keychain when secure_storage is enabled) and picked up by every other
wili process on this machine.

Use 'wili login telegram' for the Telegram-based flows instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if st := app.sessions.Current(); st.LoggedIn() {
			fmt.Printf("Already logged in as %s\n", displayName(app))
			return nil
		}

		code := strings.TrimSpace(loginCode)
		if code == "" {
			authURL := app.svc.RedirectToYandex()
			fmt.Println("Open this link to authorize with Yandex:")
			fmt.Printf("%s\n\n", authURL)

			code, err = promptSecret("Paste the code from the callback URL: ")
			if err != nil {
				return err
			}
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", spinnerFrames, 120*time.Millisecond)
		err = app.svc.ExchangeCode(cmd.Context(), code)
		stopSpinner()
		if err != nil {
			httperrors.DisplayAuthenticationError()
			return err
		}

		fmt.Printf("🎉 Welcome, %s!\n", displayName(app))
		return nil
	},
}

// loginTelegramCmd represents the Telegram login flows. Without flags it runs
// the deep-link handshake through the wili login bot; with --initdata it
// exchanges signed mini-app init data directly.
var loginTelegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Authenticate via the Telegram login bot",
	Long: `The telegram subcommand signs in through Telegram. By default it opens a
deep link to the wili login bot with a single-use state embedded in the start
parameter. The bot replies with a session token and echoes the state back;
paste both here to finish. A state is valid for exactly one attempt.

With --initdata, signed Telegram mini-app init data is exchanged directly
without the bot round-trip.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if st := app.sessions.Current(); st.LoggedIn() {
			fmt.Printf("Already logged in as %s\n", displayName(app))
			return nil
		}

		if initData := strings.TrimSpace(loginInitData); initData != "" {
			stopSpinner := startInlineSpinner(os.Stdout, "Signing in", spinnerFrames, 120*time.Millisecond)
			err = app.svc.ExchangeTelegramInitData(cmd.Context(), initData)
			stopSpinner()
			if err != nil {
				httperrors.DisplayAuthenticationError()
				return err
			}
			fmt.Printf("🎉 Welcome, %s!\n", displayName(app))
			return nil
		}

		link := app.svc.RedirectToTelegramBot(app.cfg.TelegramBot)
		if link == "" {
			return fmt.Errorf("telegram bot is not configured; set telegram_bot in the config or WILI_TELEGRAM_BOT")
		}
		fmt.Println("Open this link and press Start in the bot:")
		fmt.Printf("%s\n\n", link)

		token, err := promptSecret("Paste the session token from the bot: ")
		if err != nil {
			return err
		}
		state, err := promptSecret("Paste the state from the bot: ")
		if err != nil {
			return err
		}

		if !app.svc.HandleTelegramCallback(token, state) {
			return apperrors.New(apperrors.HandshakeStateMismatch, "login link expired or state did not match; run 'wili login telegram' again")
		}

		// The session is valid already; wait briefly so the greeting can
		// show the profile name when the fetch is fast enough.
		stopSpinner := startInlineSpinner(os.Stdout, "Fetching profile", spinnerFrames, 120*time.Millisecond)
		app.svc.WaitForProfile()
		stopSpinner()

		fmt.Printf("🎉 Welcome, %s!\n", displayName(app))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.AddCommand(loginTelegramCmd)
	loginCmd.Flags().StringVar(&loginCode, "code", "", "Yandex authorization code (skips the browser prompt)")
	loginTelegramCmd.Flags().StringVar(&loginInitData, "initdata", "", "Signed Telegram mini-app init data")
}

// displayName picks the friendliest identifier the session currently has.
func displayName(a *app) string {
	st := a.sessions.Current()
	if st.User != nil && st.User.DisplayName != "" {
		return st.User.DisplayName
	}
	if st.User != nil && st.User.Email != nil && *st.User.Email != "" {
		return *st.User.Email
	}
	return "wili user"
}
