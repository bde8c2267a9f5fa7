package bindings_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/storacha/daclient/pkg/ledger/bindings"
)

func TestABIEvents(t *testing.T) {
	parsed, err := bindings.CreditLedgerMetaData.GetAbi()
	require.NoError(t, err)

	ev, ok := parsed.Events["IdentifierCreated"]
	require.True(t, ok)
	require.Equal(t, crypto.Keccak256Hash([]byte("IdentifierCreated(bytes32,address)")), ev.ID)

	for _, m := range []string{"getBalance", "topup", "createIdentifier", "getUserIdentifierCount", "getUserIdentifierAt", "getIdentifierOwner"} {
		_, ok := parsed.Methods[m]
		require.True(t, ok, m)
	}
	require.True(t, parsed.Methods["topup"].IsPayable())
}

func TestParseIdentifierCreated(t *testing.T) {
	addr := common.HexToAddress("0x1000000000000000000000000000000000000001")
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	id := common.BigToHash(big.NewInt(42))

	f, err := bindings.NewCreditLedgerFilterer(addr, nil)
	require.NoError(t, err)

	log := types.Log{
		Address: addr,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("IdentifierCreated(bytes32,address)")),
			id,
			common.BytesToHash(owner.Bytes()),
		},
	}
	ev, err := f.ParseIdentifierCreated(log)
	require.NoError(t, err)
	require.Equal(t, [32]byte(id), ev.Identifier)
	require.Equal(t, owner, ev.Owner)

	other := types.Log{
		Address: addr,
		Topics:  []common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))},
	}
	_, err = f.ParseIdentifierCreated(other)
	require.Error(t, err)
}

func TestParseCreditsToppedUp(t *testing.T) {
	addr := common.HexToAddress("0x1000000000000000000000000000000000000001")
	f, err := bindings.NewCreditLedgerFilterer(addr, nil)
	require.NoError(t, err)

	amount := common.BigToHash(big.NewInt(1_000_000_000_000_000_000))
	ev, err := f.ParseCreditsToppedUp(types.Log{
		Address: addr,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("CreditsToppedUp(bytes32,uint256)")),
			common.BigToHash(big.NewInt(7)),
		},
		Data: amount.Bytes(),
	})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1_000_000_000_000_000_000), ev.Amount)
}
