// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// decrypters maps envelope algorithm names to their implementation.
var decrypters = map[string]func(key, iv, ciphertext []byte) ([]byte, error){
	AlgorithmAES256CBC: decryptAESCBC,
}

// Encrypt seals plaintext for embedding. It derives the key, draws a fresh
// random 16-byte IV, encrypts the UTF-8 bytes with AES-256-CBC (PKCS#7
// padding) and returns base64(IV ‖ base64(JSON envelope)).
//
// Two calls with the same plaintext return different payloads because the
// IV differs. Returns an error only if the random source fails.
func Encrypt(plaintext string) (string, error) {
	key := DeriveKey()

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err := encryptAESCBC(key, iv, []byte(plaintext))
	if err != nil {
		return "", cryptoErr("encrypt", err)
	}

	body, err := encodeEnvelope(AlgorithmAES256CBC, ciphertext)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}

	payload := make([]byte, 0, len(iv)+len(body))
	payload = append(payload, iv...)
	payload = append(payload, body...)

	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decrypt reverses [Encrypt]. It also accepts legacy payloads in which the
// raw ciphertext directly follows the IV.
//
// Errors:
//   - [*FormatError] for bad base64, a payload shorter than the IV, or an
//     envelope missing its version or ciphertext;
//   - [*CryptoError] for an unsupported algorithm, a failed decryption or
//     output that is not valid UTF-8.
func Decrypt(payload string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", formatErr("decrypt", ErrMalformedBase64)
	}
	if len(raw) < IVSize {
		return "", formatErr("decrypt", ErrPayloadTooShort)
	}

	iv, rest := raw[:IVSize], raw[IVSize:]

	body, err := parseBody(rest)
	if err != nil {
		return "", err
	}

	decrypt, ok := decrypters[body.algorithm]
	if !ok {
		return "", cryptoErr("decrypt", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, body.algorithm))
	}

	plaintext, err := decrypt(DeriveKey(), iv, body.ciphertext)
	if err != nil {
		return "", cryptoErr("decrypt "+body.format.String()+" payload", err)
	}
	if !utf8.Valid(plaintext) {
		return "", cryptoErr("decrypt "+body.format.String()+" payload", ErrInvalidUTF8)
	}

	return string(plaintext), nil
}

func encryptAESCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

func decryptAESCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, ErrDecryptFailed
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, block.BlockSize())
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

var errBadPadding = errors.New("bad padding")

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecryptFailed
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: %w", ErrDecryptFailed, errBadPadding)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: %w", ErrDecryptFailed, errBadPadding)
		}
	}

	return data[:len(data)-n], nil
}
