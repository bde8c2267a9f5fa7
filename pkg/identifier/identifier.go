// Package identifier implements the 32-byte handle that names a credit
// account in the ledger.
package identifier

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Size is the fixed byte length of every identifier.
const Size = 32

// Identifier names a credit account. The zero value is a valid (all-zero)
// identifier but is never produced by the ledger.
type Identifier [Size]byte

// Normalize left-pads b with zero bytes to exactly 32 bytes. Input that is
// already 32 bytes is returned unchanged; empty input and input longer than
// 32 bytes are rejected.
func Normalize(b []byte) (Identifier, error) {
	var id Identifier
	if len(b) == 0 {
		return id, fmt.Errorf("identifier is empty")
	}
	if len(b) > Size {
		return id, fmt.Errorf("identifier is %d bytes, max %d", len(b), Size)
	}
	copy(id[Size-len(b):], b)
	return id, nil
}

// MustNormalize is Normalize for inputs known to be valid.
func MustNormalize(b []byte) Identifier {
	id, err := Normalize(b)
	if err != nil {
		panic(err)
	}
	return id
}

// FromHex parses a hex identifier, with or without a 0x prefix. Odd-length
// input is treated as having an implicit leading zero nibble.
func FromHex(s string) (Identifier, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hexutil.Decode("0x" + s)
	if err != nil {
		return Identifier{}, fmt.Errorf("decoding identifier hex: %w", err)
	}
	return Normalize(b)
}

// FromBig converts a non-negative integer to an identifier.
func FromBig(n *big.Int) (Identifier, error) {
	if n == nil || n.Sign() < 0 {
		return Identifier{}, fmt.Errorf("identifier must be a non-negative integer")
	}
	if n.Sign() == 0 {
		return Identifier{}, nil
	}
	return Normalize(n.Bytes())
}

// Bytes returns a copy of the 32 raw bytes.
func (id Identifier) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, id[:])
	return out
}

// Hex returns the 64-character lowercase hex encoding without 0x prefix,
// which is the form the DA service expects.
func (id Identifier) Hex() string {
	return id.String()[2:]
}

func (id Identifier) String() string {
	return hexutil.Encode(id[:])
}

func (id Identifier) IsZero() bool {
	return id == Identifier{}
}
