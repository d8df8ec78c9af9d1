// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-site-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_codec_mock.go -package=mock

// SecretCodec protects a single secret string with a password.
//
// Scheme:
//
//	key    = PBKDF2-HMAC-SHA256(password, salt, 100000 iterations, 32 bytes)
//	cipher = AES-256-GCM(key, iv, secret)
//
// The record carries cipher, iv and salt; the key is never stored.
type SecretCodec interface {
	// DeriveKey stretches password with salt into a 256-bit key.
	// Identical inputs always produce identical keys. The caller owns the
	// returned slice and should zero it when done.
	DeriveKey(password, salt string) ([]byte, error)

	// Encrypt protects secret under password using a fresh salt and IV.
	Encrypt(secret, password string) (models.EncryptedSecretRecord, error)

	// Decrypt recovers the secret. Any failure (wrong password, tampered or
	// malformed record) is reported as ErrAuthenticationFailure.
	Decrypt(record models.EncryptedSecretRecord, password string) (string, error)
}
