// Package ledger talks to the on-chain credit ledger contract: balances,
// topups and identifier management.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/storacha/daclient/pkg/identifier"
	"github.com/storacha/daclient/pkg/ledger/bindings"
	"github.com/storacha/daclient/pkg/signer"
	dtypes "github.com/storacha/daclient/pkg/types"
)

var log = logging.Logger("ledger")

const (
	TopupSuccess = "success"
	TopupFailed  = "failed"

	// DefaultOwnerCacheSize is the number of identifier owners remembered.
	DefaultOwnerCacheSize = 1024

	// DefaultFanOut bounds concurrent identifier lookups.
	DefaultFanOut = 8
)

// Contract is the subset of the credit ledger binding the gateway calls.
type Contract interface {
	GetBalance(opts *bind.CallOpts, identifier [32]byte) (*big.Int, error)
	GetUserIdentifierCount(opts *bind.CallOpts, user common.Address) (*big.Int, error)
	GetUserIdentifierAt(opts *bind.CallOpts, user common.Address, index *big.Int) ([32]byte, error)
	GetIdentifierOwner(opts *bind.CallOpts, identifier [32]byte) (common.Address, error)
	Topup(opts *bind.TransactOpts, identifier [32]byte) (*types.Transaction, error)
	CreateIdentifier(opts *bind.TransactOpts) (*types.Transaction, error)
}

var _ Contract = (*bindings.CreditLedger)(nil)

// TopupResult reports the outcome of a mined topup transaction.
type TopupResult struct {
	TransactionHash common.Hash
	Status          string
}

// StatusFromReceipt maps a receipt status code to a topup status.
func StatusFromReceipt(status uint64) string {
	if status == types.ReceiptStatusSuccessful {
		return TopupSuccess
	}
	return TopupFailed
}

type Option func(*Gateway)

// WithReceiptTimeout bounds how long a transaction may take to be mined.
func WithReceiptTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.receiptTimeout = d
		}
	}
}

// WithReceiptInterval sets the first delay between receipt lookups.
func WithReceiptInterval(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.receiptInterval = d
		}
	}
}

// WithFanOut limits concurrent lookups when listing identifiers.
func WithFanOut(n int) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.fanOut = n
		}
	}
}

// WithOwnerCacheSize sets how many identifier owners are remembered. Owners
// never change, so a cached answer stays correct.
func WithOwnerCacheSize(n int) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.ownerCacheSize = n
		}
	}
}

// Gateway performs ledger operations as the account of its signer.
type Gateway struct {
	contract Contract
	receipts ReceiptBackend
	events   *bindings.CreditLedgerFilterer
	signer   signer.Signer
	chainID  *big.Int
	address  common.Address

	receiptTimeout  time.Duration
	receiptInterval time.Duration
	fanOut          int
	ownerCacheSize  int
	owners          *lru.Cache[identifier.Identifier, common.Address]

	closer func()
}

func New(contract Contract, receipts ReceiptBackend, s signer.Signer, chainID *big.Int, address common.Address, opts ...Option) (*Gateway, error) {
	if contract == nil || receipts == nil {
		return nil, dtypes.NewError(dtypes.KindConfiguration, "ledger contract and receipt backend are required")
	}
	if s == nil {
		return nil, dtypes.NewError(dtypes.KindConfiguration, "ledger signer is required")
	}
	if chainID == nil {
		return nil, dtypes.NewError(dtypes.KindConfiguration, "chain id is required")
	}
	events, err := bindings.NewCreditLedgerFilterer(address, nil)
	if err != nil {
		return nil, dtypes.WrapError(dtypes.KindConfiguration, "binding ledger events", err)
	}
	g := &Gateway{
		contract:        contract,
		receipts:        receipts,
		events:          events,
		signer:          s,
		chainID:         new(big.Int).Set(chainID),
		address:         address,
		receiptTimeout:  DefaultReceiptTimeout,
		receiptInterval: defaultInitialInterval,
		fanOut:          DefaultFanOut,
		ownerCacheSize:  DefaultOwnerCacheSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.owners, err = lru.New[identifier.Identifier, common.Address](g.ownerCacheSize); err != nil {
		return nil, dtypes.WrapError(dtypes.KindConfiguration, "creating owner cache", err)
	}
	return g, nil
}

// Dial connects to an RPC endpoint and binds the ledger deployed at address.
func Dial(ctx context.Context, rpcURL string, address common.Address, s signer.Signer, opts ...Option) (*Gateway, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, dtypes.WrapError(dtypes.KindConfiguration, fmt.Sprintf("connecting to %s", rpcURL), err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, dtypes.WrapError(dtypes.KindLedger, "getting chain ID", err)
	}
	contract, err := bindings.NewCreditLedger(address, client)
	if err != nil {
		client.Close()
		return nil, dtypes.WrapError(dtypes.KindConfiguration, "binding ledger contract", err)
	}
	g, err := New(contract, client, s, chainID, address, opts...)
	if err != nil {
		client.Close()
		return nil, err
	}
	g.closer = client.Close
	log.Infow("connected to ledger", "rpc", rpcURL, "chain_id", chainID, "contract", address.Hex())
	return g, nil
}

// Close releases the RPC connection when the gateway owns one.
func (g *Gateway) Close() {
	if g.closer != nil {
		g.closer()
	}
}

func (g *Gateway) Address() common.Address {
	return g.address
}

func (g *Gateway) Owner() common.Address {
	return g.signer.Address()
}

func (g *Gateway) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: g.signer.Address()}
}

// GetBalanceWei returns the credit balance of id in wei.
func (g *Gateway) GetBalanceWei(ctx context.Context, id identifier.Identifier) (*big.Int, error) {
	wei, err := g.contract.GetBalance(g.callOpts(ctx), id)
	if err != nil {
		return nil, dtypes.WrapError(dtypes.KindLedger, fmt.Sprintf("getting balance of %s", id), err)
	}
	return wei, nil
}

// GetBalance returns the credit balance of id in native currency units.
func (g *Gateway) GetBalance(ctx context.Context, id identifier.Identifier) (*big.Float, error) {
	wei, err := g.GetBalanceWei(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromWei(wei), nil
}

// TopupCredits sends amount, in native units, to the credit account id.
func (g *Gateway) TopupCredits(ctx context.Context, id identifier.Identifier, amount *big.Float) (TopupResult, error) {
	wei, err := ToWei(amount)
	if err != nil {
		return TopupResult{}, dtypes.WrapError(dtypes.KindLedger, "invalid topup amount", err)
	}
	return g.TopupCreditsWei(ctx, id, wei)
}

// TopupCreditsWei sends wei to the credit account id and waits for the
// transaction to be mined. A reverted transaction is reported with status
// "failed" rather than as an error.
func (g *Gateway) TopupCreditsWei(ctx context.Context, id identifier.Identifier, wei *big.Int) (TopupResult, error) {
	if wei == nil || wei.Sign() <= 0 {
		return TopupResult{}, dtypes.NewError(dtypes.KindLedger, "topup amount must be positive")
	}
	opts := signer.TransactOpts(ctx, g.signer, g.chainID)
	opts.Value = new(big.Int).Set(wei)

	tx, err := g.contract.Topup(opts, id)
	if err != nil {
		return TopupResult{}, dtypes.WrapError(dtypes.KindLedger, fmt.Sprintf("sending topup for %s", id), err)
	}
	receipt, err := g.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return TopupResult{}, dtypes.WrapError(dtypes.KindLedger, "topup not confirmed", err)
	}
	res := TopupResult{
		TransactionHash: receipt.TxHash,
		Status:          StatusFromReceipt(receipt.Status),
	}
	log.Infow("topup mined", "identifier", id, "wei", wei, "tx", res.TransactionHash.Hex(), "status", res.Status)
	return res, nil
}

// CreateIdentifier registers a new credit account owned by the signer and
// returns the identifier announced by the IdentifierCreated event.
func (g *Gateway) CreateIdentifier(ctx context.Context) (identifier.Identifier, error) {
	tx, err := g.contract.CreateIdentifier(signer.TransactOpts(ctx, g.signer, g.chainID))
	if err != nil {
		return identifier.Identifier{}, dtypes.WrapError(dtypes.KindLedger, "sending createIdentifier", err)
	}
	receipt, err := g.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return identifier.Identifier{}, dtypes.WrapError(dtypes.KindLedger, "createIdentifier not confirmed", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return identifier.Identifier{}, dtypes.NewErrorf(dtypes.KindLedger, "createIdentifier transaction %s reverted", receipt.TxHash.Hex())
	}
	id, err := g.identifierFromReceipt(receipt)
	if err != nil {
		return identifier.Identifier{}, err
	}
	g.owners.Add(id, g.signer.Address())
	log.Infow("identifier created", "identifier", id, "tx", receipt.TxHash.Hex())
	return id, nil
}

func (g *Gateway) identifierFromReceipt(receipt *types.Receipt) (identifier.Identifier, error) {
	for _, l := range receipt.Logs {
		if l == nil || l.Address != g.address {
			continue
		}
		event, err := g.events.ParseIdentifierCreated(*l)
		if err != nil {
			continue
		}
		id, err := identifier.Normalize(event.Identifier[:])
		if err != nil {
			return identifier.Identifier{}, dtypes.WrapError(dtypes.KindLedger, "decoding created identifier", err)
		}
		return id, nil
	}
	return identifier.Identifier{}, dtypes.NewErrorf(dtypes.KindLedger, "IdentifierCreated event not found in transaction %s", receipt.TxHash.Hex())
}

// GetIdentifiers lists the identifiers owned by the signer, in ledger order.
func (g *Gateway) GetIdentifiers(ctx context.Context) ([]identifier.Identifier, error) {
	return g.GetIdentifiersFor(ctx, g.signer.Address())
}

// GetIdentifiersFor lists the identifiers owned by owner, in ledger order.
func (g *Gateway) GetIdentifiersFor(ctx context.Context, owner common.Address) ([]identifier.Identifier, error) {
	count, err := g.contract.GetUserIdentifierCount(g.callOpts(ctx), owner)
	if err != nil {
		return nil, dtypes.WrapError(dtypes.KindLedger, fmt.Sprintf("getting identifier count for %s", owner.Hex()), err)
	}
	if !count.IsInt64() || count.Sign() < 0 {
		return nil, dtypes.NewErrorf(dtypes.KindLedger, "identifier count %s out of range", count)
	}
	n := int(count.Int64())
	ids := make([]identifier.Identifier, n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.fanOut)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			raw, err := g.contract.GetUserIdentifierAt(g.callOpts(egCtx), owner, big.NewInt(int64(i)))
			if err != nil {
				return fmt.Errorf("getting identifier %d: %w", i, err)
			}
			id, err := identifier.Normalize(raw[:])
			if err != nil {
				return fmt.Errorf("decoding identifier %d: %w", i, err)
			}
			ids[i] = id
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, dtypes.WrapError(dtypes.KindLedger, fmt.Sprintf("listing identifiers for %s", owner.Hex()), err)
	}
	return ids, nil
}

// GetIdentifierOwner returns the account that owns id. Unknown identifiers
// report the zero address and are not cached.
func (g *Gateway) GetIdentifierOwner(ctx context.Context, id identifier.Identifier) (common.Address, error) {
	if owner, ok := g.owners.Get(id); ok {
		return owner, nil
	}
	owner, err := g.contract.GetIdentifierOwner(g.callOpts(ctx), id)
	if err != nil {
		return common.Address{}, dtypes.WrapError(dtypes.KindLedger, fmt.Sprintf("getting owner of %s", id), err)
	}
	if owner != (common.Address{}) {
		g.owners.Add(id, owner)
	}
	return owner, nil
}
