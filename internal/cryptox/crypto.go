// Package cryptox implements the password-based envelope protecting a
// snapshot at rest: PBKDF2-SHA256 key derivation and AES-256-CBC, with the
// salt and IV carried in front of the ciphertext.
//
// The envelope has no format flag. A blob is Plain when it starts with '{'
// (a JSON snapshot) and Encrypted otherwise; existing snapshot files depend
// on that sniffing, so it must not be replaced with an explicit marker.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/jlinoff/pam/internal/common"
)

const (
	saltSize      = 16
	ivSize        = 16
	keySize       = 32 // AES-256
	kdfIterations = 100000
)

// DeriveKey derives a 256-bit AES key from a password and salt using
// PBKDF2 with SHA-256 and 100,000 iterations.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, kdfIterations, keySize, sha256.New)
}

// Encrypt turns plaintext into base64(salt ‖ iv ‖ AES-CBC ciphertext) under
// a key derived from password with a fresh random salt and IV.
//
// Empty plaintext and empty password are both pass-through cases: saving is
// never blocked by the absence of a password, the data is simply written
// unprotected.
func Encrypt(password, plaintext string) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}
	if password == "" {
		// No protection requested; pass the content through verbatim.
		return plaintext, nil
	}

	salt := common.GenerateRandByteArray(saltSize)
	iv := common.GenerateRandByteArray(ivSize)

	key := DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("cipher init: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encrypted, padded)

	blob := make([]byte, 0, saltSize+ivSize+len(encrypted))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, encrypted...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt. Setup failures (bad base64, truncated blob, key
// import) are reported as common.ErrDecryptionSetup; cipher-stage failures
// (bad padding from a wrong password or a corrupted blob) as
// common.ErrDecryptionFailed, so the caller can word the message usefully.
//
// Pass-through cases mirror Encrypt: empty ciphertext is returned unchanged,
// and with an empty password content that already looks like a plaintext
// JSON snapshot ('{' prefix) is returned as-is. Empty password with content
// that does NOT look like JSON is common.ErrMissingPassword — it cannot be
// parsed without attempting decryption.
func Decrypt(password, ciphertext string) (string, error) {
	if ciphertext == "" {
		return ciphertext, nil
	}
	if password == "" {
		if strings.HasPrefix(ciphertext, "{") {
			return ciphertext, nil
		}
		return "", common.ErrMissingPassword
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptionSetup, err)
	}
	if len(raw) < saltSize+ivSize+aes.BlockSize {
		return "", fmt.Errorf("%w: ciphertext too short (%dB)", common.ErrDecryptionSetup, len(raw))
	}

	salt := raw[:saltSize]
	iv := raw[saltSize : saltSize+ivSize]
	data := raw[saltSize+ivSize:]

	key := DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptionSetup, err)
	}
	if len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext not block aligned", common.ErrDecryptionFailed)
	}

	decrypted := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, data)

	plain, err := pkcs7Unpad(decrypted, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}

	text := string(plain)
	if strings.HasPrefix(text, "{") {
		return text, nil
	}

	// Older files carried the JSON base64-encoded inside the envelope.
	nested, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}
	return string(nested), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
