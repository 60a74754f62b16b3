// Package crypto provides owner passphrase hashing and session token
// signing for the API's protected surface.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Fixed for new hashes; verification reads whatever
// parameters the stored PHC string declares, so these can be raised later
// without invalidating existing hashes.
const (
	hashMemory      = 64 * 1024
	hashIterations  = 3
	hashParallelism = 2
	hashSaltLen     = 16
	hashKeyLen      = 32
)

var ErrInvalidHash = errors.New("invalid encoded hash")

// HashPassphrase hashes a passphrase with Argon2id and returns it in PHC
// string format.
func HashPassphrase(passphrase string) (string, error) {
	salt := make([]byte, hashSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(passphrase), salt, hashIterations, hashMemory, hashParallelism, hashKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		hashMemory,
		hashIterations,
		hashParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassphrase reports whether the passphrase matches the encoded hash,
// using a constant-time comparison.
func VerifyPassphrase(passphrase, encoded string) (bool, error) {
	var (
		version            int
		memory, iterations uint32
		parallelism        uint8
		rest               string
	)

	n, err := fmt.Sscanf(encoded, "$argon2id$v=%d$m=%d,t=%d,p=%d$%s",
		&version, &memory, &iterations, &parallelism, &rest)
	if err != nil || n != 5 {
		return false, ErrInvalidHash
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: argon2 version %d", ErrInvalidHash, version)
	}

	// Sscanf's %s is greedy, so rest still holds "<salt>$<key>".
	saltB64, keyB64, found := strings.Cut(rest, "$")
	if !found {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false, ErrInvalidHash
	}

	candidate := argon2.IDKey([]byte(passphrase), salt, iterations, memory, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}
