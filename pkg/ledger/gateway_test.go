package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/storacha/daclient/internal/mocks"
	"github.com/storacha/daclient/pkg/identifier"
	"github.com/storacha/daclient/pkg/ledger"
	"github.com/storacha/daclient/pkg/ledger/bindings"
	"github.com/storacha/daclient/pkg/signer"
	dtypes "github.com/storacha/daclient/pkg/types"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	ledgerAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	chainID       = big.NewInt(31337)
)

type harness struct {
	contract *mocks.MockContract
	receipts *mocks.MockReceiptBackend
	signer   signer.Signer
	gateway  *ledger.Gateway
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	s, err := signer.Resolve(signer.RawKey(testKey))
	require.NoError(t, err)

	h := &harness{
		contract: mocks.NewMockContract(ctrl),
		receipts: mocks.NewMockReceiptBackend(ctrl),
		signer:   s,
	}
	h.gateway, err = ledger.New(h.contract, h.receipts, s, chainID, ledgerAddress,
		ledger.WithReceiptInterval(time.Millisecond),
		ledger.WithReceiptTimeout(5*time.Second),
	)
	require.NoError(t, err)
	return h
}

func testTx(nonce uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: nonce, Gas: 21000, GasPrice: big.NewInt(1), To: &ledgerAddress, Value: big.NewInt(0)})
}

func identifierCreatedLog(t *testing.T, address common.Address, id identifier.Identifier, owner common.Address) *types.Log {
	t.Helper()
	parsed, err := bindings.CreditLedgerMetaData.GetAbi()
	require.NoError(t, err)
	return &types.Log{
		Address: address,
		Topics: []common.Hash{
			parsed.Events["IdentifierCreated"].ID,
			common.Hash(id),
			common.BytesToHash(owner.Bytes()),
		},
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := ledger.New(nil, nil, nil, chainID, ledgerAddress)
	require.True(t, dtypes.IsKind(err, dtypes.KindConfiguration))
}

func TestGetBalance(t *testing.T) {
	h := newHarness(t)
	id := identifier.MustNormalize([]byte{0x01})
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)

	h.contract.EXPECT().GetBalance(gomock.Any(), [32]byte(id)).Return(wei, nil)

	bal, err := h.gateway.GetBalance(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "1.5", bal.Text('f', -1))
}

func TestGetBalanceError(t *testing.T) {
	h := newHarness(t)
	h.contract.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down"))

	_, err := h.gateway.GetBalance(context.Background(), identifier.Identifier{})
	require.Error(t, err)
	require.True(t, dtypes.IsKind(err, dtypes.KindLedger))
	require.Contains(t, err.Error(), "rpc down")
}

func TestTopupCredits(t *testing.T) {
	tests := []struct {
		name          string
		receiptStatus uint64
		want          string
	}{
		{"mined", types.ReceiptStatusSuccessful, ledger.TopupSuccess},
		{"reverted", types.ReceiptStatusFailed, ledger.TopupFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			id := identifier.MustNormalize([]byte{0xab, 0xcd})
			tx := testTx(1)

			h.contract.EXPECT().Topup(gomock.Any(), [32]byte(id)).DoAndReturn(
				func(opts *bind.TransactOpts, _ [32]byte) (*types.Transaction, error) {
					require.Equal(t, h.signer.Address(), opts.From)
					require.Equal(t, "250000000000000000", opts.Value.String())
					return tx, nil
				})
			h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
				Return(&types.Receipt{TxHash: tx.Hash(), Status: tc.receiptStatus}, nil)

			res, err := h.gateway.TopupCredits(context.Background(), id, big.NewFloat(0.25))
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Status)
			require.Equal(t, tx.Hash(), res.TransactionHash)
		})
	}
}

func TestTopupWaitsForReceipt(t *testing.T) {
	h := newHarness(t)
	tx := testTx(2)

	h.contract.EXPECT().Topup(gomock.Any(), gomock.Any()).Return(tx, nil)
	gomock.InOrder(
		h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(nil, ethereum.NotFound).Times(2),
		h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
			Return(&types.Receipt{TxHash: tx.Hash(), Status: types.ReceiptStatusSuccessful}, nil),
	)

	res, err := h.gateway.TopupCreditsWei(context.Background(), identifier.Identifier{}, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, ledger.TopupSuccess, res.Status)
}

func TestTopupReceiptLookupErrorIsFatal(t *testing.T) {
	h := newHarness(t)
	tx := testTx(3)

	h.contract.EXPECT().Topup(gomock.Any(), gomock.Any()).Return(tx, nil)
	h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(nil, errors.New("boom")).Times(1)

	_, err := h.gateway.TopupCreditsWei(context.Background(), identifier.Identifier{}, big.NewInt(1))
	require.Error(t, err)
	require.True(t, dtypes.IsKind(err, dtypes.KindLedger))
}

func TestTopupRejectsNonPositiveAmount(t *testing.T) {
	h := newHarness(t)
	for _, amt := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := h.gateway.TopupCreditsWei(context.Background(), identifier.Identifier{}, amt)
		require.True(t, dtypes.IsKind(err, dtypes.KindLedger))
	}
}

func TestCreateIdentifier(t *testing.T) {
	h := newHarness(t)
	tx := testTx(4)
	want := identifier.MustNormalize([]byte{0x42})

	h.contract.EXPECT().CreateIdentifier(gomock.Any()).Return(tx, nil)
	h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(&types.Receipt{
		TxHash: tx.Hash(),
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			// same event from a different contract is ignored
			identifierCreatedLog(t, common.HexToAddress("0x01"), identifier.MustNormalize([]byte{0x99}), h.signer.Address()),
			{Address: ledgerAddress, Topics: []common.Hash{common.HexToHash("0xdead")}},
			identifierCreatedLog(t, ledgerAddress, want, h.signer.Address()),
		},
	}, nil)

	got, err := h.gateway.CreateIdentifier(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	// the creator owns the new identifier without another contract read
	owner, err := h.gateway.GetIdentifierOwner(context.Background(), got)
	require.NoError(t, err)
	require.Equal(t, h.signer.Address(), owner)
}

func TestCreateIdentifierMissingEvent(t *testing.T) {
	h := newHarness(t)
	tx := testTx(5)

	h.contract.EXPECT().CreateIdentifier(gomock.Any()).Return(tx, nil)
	h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{TxHash: tx.Hash(), Status: types.ReceiptStatusSuccessful}, nil)

	_, err := h.gateway.CreateIdentifier(context.Background())
	require.Error(t, err)
	require.True(t, dtypes.IsKind(err, dtypes.KindLedger))
	require.Contains(t, err.Error(), "IdentifierCreated event not found")
}

func TestCreateIdentifierReverted(t *testing.T) {
	h := newHarness(t)
	tx := testTx(6)

	h.contract.EXPECT().CreateIdentifier(gomock.Any()).Return(tx, nil)
	h.receipts.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{TxHash: tx.Hash(), Status: types.ReceiptStatusFailed}, nil)

	_, err := h.gateway.CreateIdentifier(context.Background())
	require.ErrorContains(t, err, "reverted")
}

func TestGetIdentifiersKeepsLedgerOrder(t *testing.T) {
	h := newHarness(t)
	owner := h.signer.Address()
	const n = 20

	h.contract.EXPECT().GetUserIdentifierCount(gomock.Any(), owner).Return(big.NewInt(n), nil)

	var mu sync.Mutex
	seen := map[int64]bool{}
	h.contract.EXPECT().GetUserIdentifierAt(gomock.Any(), owner, gomock.Any()).DoAndReturn(
		func(_ *bind.CallOpts, _ common.Address, index *big.Int) ([32]byte, error) {
			mu.Lock()
			seen[index.Int64()] = true
			mu.Unlock()
			// later indices answer first
			time.Sleep(time.Duration(n-index.Int64()) * time.Millisecond)
			return identifier.MustNormalize([]byte{byte(index.Int64())}), nil
		}).Times(n)

	ids, err := h.gateway.GetIdentifiers(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, n)
	require.Len(t, seen, n)
	for i, id := range ids {
		require.Equal(t, identifier.MustNormalize([]byte{byte(i)}), id)
	}
}

func TestGetIdentifiersEmpty(t *testing.T) {
	h := newHarness(t)
	h.contract.EXPECT().GetUserIdentifierCount(gomock.Any(), gomock.Any()).Return(big.NewInt(0), nil)

	ids, err := h.gateway.GetIdentifiers(context.Background())
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestGetIdentifiersLookupError(t *testing.T) {
	h := newHarness(t)
	h.contract.EXPECT().GetUserIdentifierCount(gomock.Any(), gomock.Any()).Return(big.NewInt(3), nil)
	h.contract.EXPECT().GetUserIdentifierAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([32]byte{}, errors.New("execution reverted")).AnyTimes()

	_, err := h.gateway.GetIdentifiers(context.Background())
	require.Error(t, err)
	require.True(t, dtypes.IsKind(err, dtypes.KindLedger))
}

func TestGetIdentifierOwner(t *testing.T) {
	h := newHarness(t)
	id := identifier.MustNormalize([]byte{0x07})
	owner := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	h.contract.EXPECT().GetIdentifierOwner(gomock.Any(), [32]byte(id)).Return(owner, nil)

	got, err := h.gateway.GetIdentifierOwner(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, owner, got)

	// served from cache, the contract expects exactly one call
	got, err = h.gateway.GetIdentifierOwner(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, owner, got)
}

func TestGetIdentifierOwnerUnknownIsNotCached(t *testing.T) {
	h := newHarness(t)
	id := identifier.MustNormalize([]byte{0x08})

	h.contract.EXPECT().GetIdentifierOwner(gomock.Any(), [32]byte(id)).Return(common.Address{}, nil).Times(2)

	for range 2 {
		got, err := h.gateway.GetIdentifierOwner(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, common.Address{}, got)
	}
}

func TestStatusFromReceipt(t *testing.T) {
	require.Equal(t, "success", ledger.StatusFromReceipt(1))
	require.Equal(t, "failed", ledger.StatusFromReceipt(0))
	require.Equal(t, "failed", ledger.StatusFromReceipt(2))
}
