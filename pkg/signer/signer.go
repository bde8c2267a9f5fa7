// Package signer provides the message and transaction signing capability used
// to authenticate uploads and ledger transactions.
package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs upload payloads and ledger transactions on behalf of one address.
type Signer interface {
	// Address returns the account the signer signs for.
	Address() common.Address
	// SignMessage returns a 65-byte EIP-191 personal_sign signature over msg,
	// with V in {27, 28}.
	SignMessage(msg []byte) ([]byte, error)
	// SignTx signs tx for the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

var _ Signer = (*KeySigner)(nil)

// KeySigner signs with an in-memory secp256k1 private key.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (s *KeySigner) Address() common.Address {
	return s.address
}

func (s *KeySigner) SignMessage(msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), s.key)
	if err != nil {
		return nil, fmt.Errorf("signing message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

func (s *KeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	return signed, nil
}

// RecoverAddress returns the address that produced sig over msg with
// SignMessage.
func RecoverAddress(msg, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash(msg), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("recovering public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// TransactOpts builds transaction auth that routes signing through s. Gas is
// left for the backend to estimate.
func TransactOpts(ctx context.Context, s Signer, chainID *big.Int) *bind.TransactOpts {
	from := s.Address()
	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, bind.ErrNotAuthorized
			}
			return s.SignTx(tx, chainID)
		},
		GasLimit: 0,
	}
}
