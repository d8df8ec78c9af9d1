// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/app"
	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/siteconfig"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
	"github.com/MKhiriev/go-site-keeper/models"
)

// readSecretAndPassword returns the secret and the password. On a terminal
// the password comes from a masked prompt; otherwise stdin holds the secret
// (unless given as an argument) followed by the password.
func readSecretAndPassword(cmd *cobra.Command, rt *runtime, args []string) (string, string, error) {
	if isTerminal(cmd) {
		secret := ""
		if len(args) > 0 {
			secret = args[0]
		} else {
			line, err := readLine(cmd)
			if err != nil {
				return "", "", err
			}
			secret = line
		}
		password, err := tui.New(nil, cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger).
			PromptPassword(cmd.Context(), "ENCRYPT", "Choose the password protecting the secret.")
		return secret, password, err
	}

	if len(args) > 0 {
		password, err := readLine(cmd)
		return args[0], password, err
	}
	lines, err := readLines(cmd, 2)
	if err != nil {
		return "", "", err
	}
	return lines[0], lines[1], nil
}

func newEncryptCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [secret]",
		Short: "Encrypt a secret into a record",
		Long: `Encrypt a secret (usually a repository token) with a password and print the
encrypted record as JSON. Without a terminal, stdin holds the secret (unless
given as an argument) and then the password, one per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rt.log(cmd.Name()); err != nil {
				return err
			}
			secret, password, err := readSecretAndPassword(cmd, rt, args)
			if err != nil {
				return err
			}

			record, err := crypto.NewSecretCodec().Encrypt(secret, password)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newDecryptCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [record.json]",
		Short: "Decrypt a record with its password",
		Long: `Decrypt an encrypted record and print the secret. The record is read from the
given JSON file or, without one, from the site config artifact.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rt.log(cmd.Name())
			if err != nil {
				return err
			}

			var record models.EncryptedSecretRecord
			if len(args) > 0 {
				record, err = readRecordFile(args[0])
			} else {
				record, err = readSharedRecord(cmd, rt, log)
			}
			if err != nil {
				return err
			}

			var password string
			if isTerminal(cmd) {
				password, err = tui.New(nil, cmd.InOrStdin(), cmd.OutOrStdout(), log).
					PromptPassword(cmd.Context(), "DECRYPT", "")
			} else {
				password, err = readLine(cmd)
			}
			if err != nil {
				return err
			}

			secret, err := crypto.NewSecretCodec().Decrypt(record, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

func readRecordFile(path string) (models.EncryptedSecretRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.EncryptedSecretRecord{}, fmt.Errorf("read record: %w", err)
	}
	var record models.EncryptedSecretRecord
	if err = json.Unmarshal(data, &record); err != nil {
		return models.EncryptedSecretRecord{}, fmt.Errorf("parse record %s: %w", path, err)
	}
	return record, nil
}

func readSharedRecord(cmd *cobra.Command, rt *runtime, log *logger.Logger) (models.EncryptedSecretRecord, error) {
	cfg, err := rt.config()
	if err != nil {
		return models.EncryptedSecretRecord{}, err
	}
	data, err := store.NewSiteFiles(cfg.Storage.Site, log).ReadConfigArtifact(cmd.Context())
	if err != nil && !errors.Is(err, store.ErrSiteFileNotFound) {
		return models.EncryptedSecretRecord{}, err
	}
	siteCfg, err := siteconfig.Parse(data)
	if err != nil {
		return models.EncryptedSecretRecord{}, err
	}
	if !siteCfg.HasSharedSecret() {
		return models.EncryptedSecretRecord{}, errors.New(app.MsgNoSharedRecord)
	}
	return *siteCfg.Auth, nil
}
