/*
encrypt seals short secrets, such as a stored API key, with a passphrase.
A key is derived with Argon2id and the secret encrypted with AES-256-GCM.
Sealed values are text, so they can be kept in a settings file.
*/
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	// Packages
	argon2 "golang.org/x/crypto/argon2"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Argon2id parameters (OWASP recommended minimums)
	argonTime    = 3
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	argonKeyLen  = 32 // 256-bit key

	// SaltSize is the length of the random salt in bytes
	SaltSize = 16

	// MinPassphraseLen is the minimum acceptable passphrase length
	MinPassphraseLen = 8

	// Prefix marks a sealed value
	Prefix = "sealed:"
)

var (
	ErrPassphrase = errors.New("invalid passphrase")
	ErrNotSealed  = errors.New("value is not sealed")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ValidatePassphrase checks the passphrase is not blank and at least
// MinPassphraseLen characters long
func ValidatePassphrase(passphrase string) error {
	trimmed := strings.TrimSpace(passphrase)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: must not be empty", ErrPassphrase)
	}
	if len(trimmed) < MinPassphraseLen {
		return fmt.Errorf("%w: must be at least %d characters", ErrPassphrase, MinPassphraseLen)
	}
	return nil
}

// Seal encrypts plaintext with a key derived from the passphrase and a fresh
// salt. The result is Prefix followed by base64 of
//
//	salt (16 bytes) || nonce (12 bytes) || ciphertext + tag
func Seal(passphrase, plaintext string) (string, error) {
	if err := ValidatePassphrase(passphrase); err != nil {
		return "", err
	}
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	blob := gcm.Seal(append(salt, nonce...), nonce, []byte(plaintext), nil)
	return Prefix + base64.RawStdEncoding.EncodeToString(blob), nil
}

// Open decrypts a value produced by Seal. It fails with ErrNotSealed when
// the value has no Prefix, and with ErrPassphrase when the passphrase is
// wrong or the value was altered.
func Open(passphrase, value string) (string, error) {
	if !IsSealed(value) {
		return "", ErrNotSealed
	}
	blob, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(value, Prefix))
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	if len(blob) < SaltSize {
		return "", fmt.Errorf("open: data too short")
	}
	salt, data := blob[:SaltSize], blob[SaltSize:]
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", fmt.Errorf("open: ciphertext too short")
	}
	nonce, data := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return "", ErrPassphrase
	}
	return string(plaintext), nil
}

// IsSealed returns true if the value was produced by Seal
func IsSealed(value string) bool {
	return strings.HasPrefix(value, Prefix)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
