package securestore

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const keyInfo = "haladesk-securestore-v1"

var (
	ErrNotFound    = errors.New("securestore: key not found")
	ErrEmptySecret = errors.New("securestore: empty secret")
	ErrCorrupted   = errors.New("securestore: corrupted value")
)

// Backend persists opaque values.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store encrypts values with XChaCha20-Poly1305 before handing them to the
// backend. The key name is bound as associated data.
type Store struct {
	aead    cipher.AEAD
	backend Backend
}

func New(secret string, backend Backend) (*Store, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, chacha20poly1305.KeySize)

	_, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &Store{aead: aead, backend: backend}, nil
}

func (s *Store) GetItem(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < s.aead.NonceSize() {
		return nil, ErrCorrupted
	}

	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]

	plain, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}

	return plain, nil
}

func (s *Store) SetItem(ctx context.Context, key string, value []byte) error {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())

	_, err := rand.Read(nonce)
	if err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	return s.backend.Set(ctx, key, s.aead.Seal(nonce, nonce, value, []byte(key)))
}

func (s *Store) RemoveItem(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}
