// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cred-pool/internal/utils"
	"golang.org/x/crypto/argon2"
)

// sealerSalt is fixed so that the same APP_SECRET_KEY always derives the same
// key across restarts. It is not a secret.
var sealerSalt = []byte("go-cred-pool/sealer/v1")

// secretSealer is the private implementation of [SecretSealer].
type secretSealer struct {
	aead    cipher.AEAD
	hashKey string
}

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // AES-256
)

// NewSecretSealer derives the sealing key from secretKey with Argon2id and
// prepares an AES-256-GCM cipher. hashKey keys the fingerprint HMAC.
func NewSecretSealer(secretKey, hashKey string) (SecretSealer, error) {
	if secretKey == "" {
		return nil, ErrEmptySecretKey
	}
	if hashKey == "" {
		return nil, ErrEmptyHashKey
	}

	key := argon2.IDKey([]byte(secretKey), sealerSalt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &secretSealer{aead: gcm, hashKey: hashKey}, nil
}

// Seal implements [SecretSealer].
func (s *secretSealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// nonce ‖ ciphertext
	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [SecretSealer].
func (s *secretSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrOpenFailed, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return string(plaintext), nil
}

// Fingerprint implements [SecretSealer].
func (s *secretSealer) Fingerprint(refreshToken string) string {
	return utils.HashString(refreshToken, s.hashKey)
}
