// Package cryptox provides the credential hardening primitives: bcrypt
// hashing for the local account password and AES-GCM sealing for stored
// password entries. Cleartext secrets never reach the database.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for account password hashing.
const bcryptCost = 12

// deviceKeySize is the AES-256 key length for entry sealing.
const deviceKeySize = 32

// ErrUnsealFailed is returned when a sealed value cannot be decrypted,
// typically because the device key changed or the payload was corrupted.
var ErrUnsealFailed = errors.New("cryptox: unseal failed")

// HashPassword derives a bcrypt hash of the account password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Sealer encrypts and decrypts small secrets with a device-local AES key.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a Sealer from a raw 32-byte key.
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != deviceKeySize {
		return nil, fmt.Errorf("cryptox: device key must be %d bytes, got %d", deviceKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh random nonce and returns a base64
// string carrying nonce and ciphertext together, suitable for a TEXT
// column.
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Unseal reverses Seal. Returns ErrUnsealFailed if the payload does not
// decrypt under this sealer's key.
func (s *Sealer) Unseal(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsealFailed, err)
	}
	if len(raw) < s.aead.NonceSize() {
		return "", ErrUnsealFailed
	}
	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrUnsealFailed
	}
	return string(plaintext), nil
}

// DeviceKeyFileName is the key file created inside the config directory.
const DeviceKeyFileName = "device.key"

// LoadOrCreateDeviceKey reads the device key from dir, generating and
// persisting a new random key on first use. The key file is created with
// owner-only permissions.
func LoadOrCreateDeviceKey(dir string) ([]byte, error) {
	path := filepath.Join(dir, DeviceKeyFileName)

	raw, err := os.ReadFile(path)
	if err == nil {
		key, decErr := base64.StdEncoding.DecodeString(string(raw))
		if decErr != nil || len(key) != deviceKeySize {
			return nil, fmt.Errorf("cryptox: corrupt device key file %s", path)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading device key: %w", err)
	}

	key := make([]byte, deviceKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating device key: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating key dir: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("writing device key: %w", err)
	}
	return key, nil
}
