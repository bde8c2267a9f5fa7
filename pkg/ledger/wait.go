package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ReceiptBackend looks up mined transaction receipts.
type ReceiptBackend interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

const (
	DefaultReceiptTimeout  = 5 * time.Minute
	defaultInitialInterval = 2 * time.Second
	defaultMaxInterval     = 30 * time.Second
)

// waitForReceipt polls for the receipt of txHash until it is mined. Receipts
// are returned whatever their status; callers decide what a revert means.
// Only "not found" is retried, any other lookup error ends the wait.
func (g *Gateway) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	log.Infow("transaction submitted, waiting for confirmation", "tx", txHash.Hex())

	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = g.receiptInterval
	exponentialBackoff.MaxInterval = defaultMaxInterval
	exponentialBackoff.Multiplier = 2.0

	operation := func() (*types.Receipt, error) {
		receipt, err := g.receipts.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return receipt, nil
	}

	receipt, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithBackOff(exponentialBackoff),
		backoff.WithMaxElapsedTime(g.receiptTimeout),
		backoff.WithNotify(func(err error, d time.Duration) {
			log.Debugw("transaction not yet mined", "tx", txHash.Hex(), "retry_in", d)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("waiting for transaction %s: %w", txHash.Hex(), err)
	}
	return receipt, nil
}
