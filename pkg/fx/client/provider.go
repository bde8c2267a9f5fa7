package client

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/storacha/daclient/pkg/client"
	"github.com/storacha/daclient/pkg/config"
	"github.com/storacha/daclient/pkg/signer"
)

var Module = fx.Module("daclient",
	fx.Provide(
		ProvideSigner,
		ProvideClient,
	),
)

// ProvideSigner resolves the configured credential.
func ProvideSigner(cfg config.Config) (signer.Signer, error) {
	s, err := signer.Resolve(cfg.Credential())
	if err != nil {
		return nil, fmt.Errorf("providing signer: %w", err)
	}
	return s, nil
}

type Params struct {
	fx.In

	Config config.Config
	Signer signer.Signer
	// Ledger replaces the gateway dialed from the configured RPC endpoint.
	Ledger client.Ledger `optional:"true"`
}

func ProvideClient(lc fx.Lifecycle, p Params) (*client.Client, error) {
	opts := []client.Option{client.WithSigner(p.Signer)}
	if p.Ledger != nil {
		opts = append(opts, client.WithLedger(p.Ledger))
	}
	c, err := client.New(p.Config, opts...)
	if err != nil {
		return nil, fmt.Errorf("providing client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
	return c, nil
}
