package signer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

// Credential is the one-of set of ways a caller can supply signing material.
// It is resolved exactly once, at client construction, into a Signer.
type Credential interface {
	resolve() (Signer, error)
}

// RawKey is a hex-encoded 32-byte secp256k1 private key, with or without 0x.
type RawKey string

// KeyFile is the path of a file holding a hex-encoded private key.
type KeyFile string

// Keystore is an encrypted go-ethereum keystore file and its password.
type Keystore struct {
	Path     string
	Password string
}

type bound struct {
	signer Signer
}

// Bound wraps an already constructed Signer, e.g. one backed by a hardware
// wallet or remote signing service.
func Bound(s Signer) Credential {
	return bound{signer: s}
}

// Resolve turns a credential into the Signer capability.
func Resolve(c Credential) (Signer, error) {
	if c == nil {
		return nil, fmt.Errorf("no credential supplied")
	}
	return c.resolve()
}

func (k RawKey) resolve() (Signer, error) {
	key, err := ParsePrivateKey(string(k))
	if err != nil {
		return nil, err
	}
	return NewKeySigner(key), nil
}

func (f KeyFile) resolve() (Signer, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("reading private key file: %w", err)
	}
	key, err := ParsePrivateKey(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing private key file %s: %w", f, err)
	}
	return NewKeySigner(key), nil
}

func (k Keystore) resolve() (Signer, error) {
	keystoreJSON, err := os.ReadFile(k.Path)
	if err != nil {
		return nil, fmt.Errorf("reading keystore file: %w", err)
	}
	key, err := keystore.DecryptKey(keystoreJSON, k.Password)
	if err != nil {
		return nil, fmt.Errorf("decrypting keystore: %w", err)
	}
	return NewKeySigner(key.PrivateKey), nil
}

func (b bound) resolve() (Signer, error) {
	if b.signer == nil {
		return nil, fmt.Errorf("bound signer is nil")
	}
	return b.signer, nil
}

// ValidatePrivateKeyHex checks that s decodes to exactly 32 bytes of hex.
func ValidatePrivateKeyHex(s string) error {
	keyData := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	keyBytes, err := hex.DecodeString(keyData)
	if err != nil {
		return fmt.Errorf("private key is not valid hex")
	}
	if len(keyBytes) != 32 {
		return fmt.Errorf("private key must be 32 bytes, got %d", len(keyBytes))
	}
	return nil
}

// ParsePrivateKey parses a hex-encoded 32-byte private key.
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	if err := ValidatePrivateKeyHex(s); err != nil {
		return nil, err
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	return key, nil
}
