// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "github.com/spf13/cobra"

func newServeCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site with the admin mode enabled",
		Long: `Serve the site directory over HTTP. Logging in on the page switches it to
editing mode; the save button stores the changes locally and publishes them
when the repository token is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.open(cmd)
			if err != nil {
				return err
			}
			return app.Serve(cmd.Context())
		},
	}
}
