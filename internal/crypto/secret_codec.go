// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-site-keeper/models"
)

const (
	// Iterations is the PBKDF2 work factor. Records produced by the site's
	// browser code use the same value, so it cannot change without
	// re-sharing access.
	Iterations = 100_000
	// KeyLen is the derived key size (AES-256).
	KeyLen = 32
	// NonceSize is the GCM IV size.
	NonceSize = 12
)

// secretCodec is the private implementation of [SecretCodec].
type secretCodec struct {
	iterations int
	random     io.Reader
	// kdf defaults to pbkdf2.Key.
	kdf func(password, salt []byte, iter, keyLen int, h func() hash.Hash) []byte
}

// NewSecretCodec constructs a [SecretCodec] backed by the OS CSPRNG.
func NewSecretCodec() SecretCodec {
	return &secretCodec{
		iterations: Iterations,
		random:     rand.Reader,
	}
}

// DeriveKey implements [SecretCodec].
func (c *secretCodec) DeriveKey(password, salt string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	kdf := c.kdf
	if kdf == nil {
		kdf = pbkdf2.Key
	}
	return kdf([]byte(password), []byte(salt), c.iterations, KeyLen, sha256.New), nil
}

// Encrypt implements [SecretCodec]. The salt is a random UUID string, the
// same form the browser side generates with crypto.randomUUID().
func (c *secretCodec) Encrypt(secret, password string) (models.EncryptedSecretRecord, error) {
	if password == "" {
		return models.EncryptedSecretRecord{}, ErrEmptyPassword
	}

	saltID, err := uuid.NewRandomFromReader(c.random)
	if err != nil {
		return models.EncryptedSecretRecord{}, fmt.Errorf("generate salt: %w", err)
	}
	salt := saltID.String()

	key, err := c.DeriveKey(password, salt)
	if err != nil {
		return models.EncryptedSecretRecord{}, err
	}
	defer Zeroize(key)

	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedSecretRecord{}, err
	}

	iv := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return models.EncryptedSecretRecord{}, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(secret), nil)

	return models.EncryptedSecretRecord{
		Cipher: base64.StdEncoding.EncodeToString(ciphertext),
		IV:     base64.StdEncoding.EncodeToString(iv),
		Salt:   salt,
	}, nil
}

// Decrypt implements [SecretCodec]. The key is derived before the record
// is decoded, so a corrupted record costs as much as a wrong password.
func (c *secretCodec) Decrypt(record models.EncryptedSecretRecord, password string) (string, error) {
	key, err := c.DeriveKey(password, record.Salt)
	if err != nil {
		return "", err
	}
	defer Zeroize(key)

	ciphertext, err := base64.StdEncoding.DecodeString(record.Cipher)
	if err != nil {
		return "", fmt.Errorf("%w: decode cipher", ErrAuthenticationFailure)
	}
	iv, err := base64.StdEncoding.DecodeString(record.IV)
	if err != nil || len(iv) != NonceSize {
		return "", fmt.Errorf("%w: decode iv", ErrAuthenticationFailure)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailure
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Zeroize overwrites b with zeros.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
