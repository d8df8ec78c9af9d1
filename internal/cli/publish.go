// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/app"
	"github.com/MKhiriev/go-site-keeper/internal/service"
)

func newPublishCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish the page with the local changes",
		Long: `Apply the locally saved changes to the site page and commit the sanitized
result to the repository. Requires an online login.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open(cmd)
			if err != nil {
				return err
			}
			page, err := a.LoadPage(cmd.Context())
			if err != nil {
				return err
			}

			rev, err := a.Services().Publish.Publish(cmd.Context(), page)
			if errors.Is(err, service.ErrNoAccessToken) {
				return errors.New(app.MsgNotLoggedIn)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s @ %s\n", rev.Path, rev.RevisionID)
			return nil
		},
	}
}
