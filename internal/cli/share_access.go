// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/app"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
)

func newShareAccessCommand(rt *runtime) *cobra.Command {
	var copyRecord bool

	cmd := &cobra.Command{
		Use:   "share-access",
		Short: "Let every device log in with one shared password",
		Long: `Encrypt the stored repository token with a new shared password and publish
the result as the site config artifact. Afterwards the shared password
unlocks publishing on any device; the local password stops working.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open(cmd)
			if err != nil {
				return err
			}

			var password string
			if isTerminal(cmd) {
				password, err = tui.New(a.Services().Credentials, cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger).
					PromptPassword(cmd.Context(), "SHARE ACCESS", "Choose the password to use on every device.")
			} else {
				password, err = readLine(cmd)
			}
			if err != nil {
				return err
			}

			record, err := a.Services().Access.ShareAccess(cmd.Context(), password)
			if errors.Is(err, service.ErrNoAccessToken) {
				return errors.New(app.MsgNotLoggedIn)
			}
			if err != nil && record.IsZero() {
				return err
			}

			out, marshalErr := json.MarshalIndent(record, "", "  ")
			if marshalErr != nil {
				return marshalErr
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if copyRecord {
				if clipErr := clipboard.WriteAll(string(out)); clipErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "clipboard: %v\n", clipErr)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), app.MsgRecordCopied)
				}
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&copyRecord, "copy", false, "Copy the encrypted record to the clipboard")

	return cmd
}
