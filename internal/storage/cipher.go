// Package storage provides at-rest protection for the local key/value store.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"eventconnect/internal/domain"
)

// ErrDecrypt is returned when a stored value cannot be opened, either because
// the passphrase changed or the value was tampered with.
var ErrDecrypt = errors.New("failed to decrypt stored value")

// kdfSalt is fixed: the store holds a single user's state on a local disk,
// so the derivation only needs to be stable across restarts.
var kdfSalt = []byte("eventconnect.state.v1")

const nonceSize = 24

// Cipher seals and opens keystore values with a key derived from a
// passphrase.
type Cipher struct {
	key [32]byte
}

// NewCipher derives an encryption key from the given passphrase via scrypt.
func NewCipher(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase must not be empty")
	}
	derived, err := scrypt.Key([]byte(passphrase), kdfSalt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	c := &Cipher{}
	copy(c.key[:], derived)
	return c, nil
}

// Seal encrypts plaintext and returns a base64 string safe to store.
func (c *Cipher) Seal(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal.
func (c *Cipher) Open(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(raw) < nonceSize {
		return "", ErrDecrypt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plaintext, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", ErrDecrypt
	}
	return string(plaintext), nil
}

// EncryptedKeyStore wraps a domain.KeyStore so values are sealed before they
// hit disk. Keys stay in the clear.
type EncryptedKeyStore struct {
	inner  domain.KeyStore
	cipher *Cipher
}

// NewEncryptedKeyStore wraps inner with the given cipher.
func NewEncryptedKeyStore(inner domain.KeyStore, cipher *Cipher) *EncryptedKeyStore {
	return &EncryptedKeyStore{inner: inner, cipher: cipher}
}

func (s *EncryptedKeyStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}
	plaintext, err := s.cipher.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("key %q: %w", key, err)
	}
	return plaintext, nil
}

func (s *EncryptedKeyStore) SetMany(ctx context.Context, values map[string]string) error {
	sealed := make(map[string]string, len(values))
	for key, value := range values {
		enc, err := s.cipher.Seal(value)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		sealed[key] = enc
	}
	return s.inner.SetMany(ctx, sealed)
}

func (s *EncryptedKeyStore) DeleteMany(ctx context.Context, keys ...string) error {
	return s.inner.DeleteMany(ctx, keys...)
}

func (s *EncryptedKeyStore) Close() error {
	return s.inner.Close()
}
