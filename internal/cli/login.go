// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/app"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
	"github.com/MKhiriev/go-site-keeper/models"
)

func newLoginCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in as the site admin",
		Long: `Log in with the shared password (unlocks the repository token stored in the
site config) or, when no shared access is set up, with the local password.

The password is read from a masked prompt, or from the first line of stdin
when stdin is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open(cmd)
			if err != nil {
				return err
			}
			creds := a.Services().Credentials

			var state models.AuthState
			if isTerminal(cmd) {
				state, err = tui.New(creds, cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger).LoginFlow(cmd.Context())
			} else {
				var password string
				if password, err = readLine(cmd); err == nil {
					state, err = creds.Login(cmd.Context(), password)
				}
			}
			if err != nil {
				return err
			}

			if state == models.StateAdminOnline {
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgLoggedInOnline)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgLoggedInLocal)
			}
			return nil
		},
	}
}

func newLogoutCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored repository token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open(cmd)
			if err != nil {
				return err
			}
			if err = a.Services().Credentials.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgLoggedOut)
			return nil
		},
	}
}
