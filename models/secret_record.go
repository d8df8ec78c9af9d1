// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedSecretRecord is the password-protected form of the repository
// access token. It is the only secret-bearing value that ever leaves the
// admin's machine: it is published inside the site's config artifact so
// that any editor who knows the shared password can recover the token.
//
// All three fields are required for decryption. A record is never mutated;
// re-sharing access produces a brand-new record with a fresh salt and IV.
type EncryptedSecretRecord struct {
	// Cipher is the standard base64 encoding of the AES-GCM ciphertext
	// (authentication tag included).
	Cipher string `json:"cipher"`

	// IV is the standard base64 encoding of the 12-byte GCM nonce.
	IV string `json:"iv"`

	// Salt is the KDF salt. Its UTF-8 bytes are fed to PBKDF2 as-is.
	Salt string `json:"salt"`
}

// IsZero reports whether the record carries no data at all.
func (r EncryptedSecretRecord) IsZero() bool {
	return r.Cipher == "" && r.IV == "" && r.Salt == ""
}

// SiteConfig is the decoded content of the site's config artifact
// (js/config.js). Auth is nil when no shared access has been set up yet.
type SiteConfig struct {
	Auth *EncryptedSecretRecord `json:"auth,omitempty"`
}

// HasSharedSecret reports whether the config carries a usable shared record.
func (c SiteConfig) HasSharedSecret() bool {
	return c.Auth != nil && !c.Auth.IsZero()
}
