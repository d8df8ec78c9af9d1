// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the sitekeeper command tree.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/models"
)

// NewRootCommand builds the sitekeeper command with every subcommand
// attached. Configuration flags are persistent and shared by all of them.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	rt := &runtime{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "sitekeeper",
		Short: "Admin mode for the Samorząd dla Młodych site",
		Long: `sitekeeper edits the Samorząd dla Młodych landing page and publishes it
to its GitHub repository.

Run "sitekeeper serve" and open the page to edit it in the browser, or use the
other commands to manage the login and publish from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rt.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCommand(rt),
		newLoginCommand(rt),
		newLogoutCommand(rt),
		newStatusCommand(rt),
		newPublishCommand(rt),
		newShareAccessCommand(rt),
		newEncryptCommand(rt),
		newDecryptCommand(rt),
		newVersionCommand(rt),
	)

	// release the app and the log file whether the command failed or not
	for _, c := range root.Commands() {
		if c.RunE == nil {
			continue
		}
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			return errors.Join(err, rt.close())
		}
	}

	return root
}
