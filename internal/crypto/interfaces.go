package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_sealer_mock.go -package=mock

// SecretSealer protects credential secrets at rest.
// It knows nothing about the network, the database or batches.
//
// Scheme:
//
//	Key         = Argon2id(APP_SECRET_KEY, fixed salt)   (once, at construction)
//	Sealed      = base64(nonce ‖ AES-256-GCM(Key, plaintext))
//	Fingerprint = hex(HMAC-SHA256(APP_HASH_KEY, refreshToken))
type SecretSealer interface {
	// Seal encrypts plaintext and returns a base64 blob (nonce ‖ ciphertext).
	// Two calls with the same input produce different blobs.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Returns ErrOpenFailed if the blob is not valid
	// base64, too short, or fails GCM authentication.
	Open(sealed string) (string, error)

	// Fingerprint returns a deterministic keyed hash of a refresh token. The
	// store keeps it under a unique index to detect duplicate tokens without
	// storing them in clear.
	Fingerprint(refreshToken string) string
}
