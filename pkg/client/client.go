// Package client is the entry point for applications: one Client stores and
// retrieves content on the DA service and manages credits on the ledger.
package client

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log/v2"
	"github.com/raulk/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/storacha/daclient/lib"
	"github.com/storacha/daclient/pkg/config"
	"github.com/storacha/daclient/pkg/identifier"
	"github.com/storacha/daclient/pkg/ledger"
	"github.com/storacha/daclient/pkg/poller"
	"github.com/storacha/daclient/pkg/resolver"
	"github.com/storacha/daclient/pkg/signer"
	"github.com/storacha/daclient/pkg/transfer"
	"github.com/storacha/daclient/pkg/types"
)

var (
	log    = logging.Logger("client")
	tracer = otel.Tracer("github.com/storacha/daclient/pkg/client")
)

// Transfer moves content to and from the DA service.
type Transfer interface {
	poller.StatusAPI
	resolver.Retriever
	Upload(ctx context.Context, content string, id *identifier.Identifier) (types.UploadResponse, error)
}

// Ledger manages credit accounts.
type Ledger interface {
	GetBalance(ctx context.Context, id identifier.Identifier) (*big.Float, error)
	TopupCredits(ctx context.Context, id identifier.Identifier, amount *big.Float) (ledger.TopupResult, error)
	CreateIdentifier(ctx context.Context) (identifier.Identifier, error)
	GetIdentifiers(ctx context.Context) ([]identifier.Identifier, error)
	GetIdentifierOwner(ctx context.Context, id identifier.Identifier) (common.Address, error)
	Close()
}

var (
	_ Transfer = (*transfer.Client)(nil)
	_ Ledger   = (*ledger.Gateway)(nil)
)

type Option func(*options)

type options struct {
	signer   signer.Signer
	transfer Transfer
	ledger   Ledger
	waiter   resolver.StatusWaiter
	clock    clock.Clock
	http     *http.Client
}

// WithSigner supplies a pre-bound signer. The configured credential is then
// not required.
func WithSigner(s signer.Signer) Option {
	return func(o *options) { o.signer = s }
}

func WithTransfer(t Transfer) Option {
	return func(o *options) { o.transfer = t }
}

// WithLedger supplies the ledger gateway instead of dialing the configured
// RPC endpoint.
func WithLedger(l Ledger) Option {
	return func(o *options) { o.ledger = l }
}

// WithPoller replaces the status poller.
func WithPoller(w resolver.StatusWaiter) Option {
	return func(o *options) { o.waiter = w }
}

// WithClock sets the clock used by the default status poller.
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// WithHTTPClient sets the HTTP client used by the default transfer client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.http = c }
}

type Client struct {
	signer   signer.Signer
	transfer Transfer
	ledger   Ledger
	waiter   resolver.StatusWaiter
	resolver *resolver.Resolver
}

// New builds a client from cfg. The credential is resolved and every
// collaborator is constructed up front; New either returns a usable client or
// an error, never a half-built one.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.signer != nil {
		if err := cfg.ValidateSettings(); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := o.signer
	if s == nil {
		var err error
		if s, err = signer.Resolve(cfg.Credential()); err != nil {
			return nil, types.WrapError(types.KindConfiguration, "resolving credential", err)
		}
	}

	c := &Client{signer: s, transfer: o.transfer, ledger: o.ledger, waiter: o.waiter}

	if c.transfer == nil {
		endpoint, err := lib.ParseBaseURL(cfg.APIURL)
		if err != nil {
			return nil, types.WrapError(types.KindConfiguration, "invalid api_url", err)
		}
		httpClient := o.http
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
		}
		tc, err := transfer.New(endpoint, s, transfer.WithHTTPClient(httpClient))
		if err != nil {
			return nil, types.WrapError(types.KindConfiguration, "creating transfer client", err)
		}
		c.transfer = tc
	}

	if c.waiter == nil {
		popts := []poller.Option{poller.WithDefaults(cfg.PollSettings())}
		if o.clock != nil {
			popts = append(popts, poller.WithClock(o.clock))
		}
		c.waiter = poller.New(c.transfer, popts...)
	}
	c.resolver = resolver.New(c.waiter, c.transfer)

	if c.ledger == nil && cfg.LedgerEnabled() {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = transfer.DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		gw, err := ledger.Dial(ctx, cfg.RPCURL, cfg.LedgerAddr(), s, ledger.WithReceiptTimeout(cfg.ReceiptTimeout))
		if err != nil {
			return nil, err
		}
		c.ledger = gw
	}

	log.Infow("client ready", "address", s.Address().Hex(), "api", cfg.APIURL, "ledger", c.ledger != nil)
	return c, nil
}

// Address is the account uploads are signed by and ledger transactions are
// sent from.
func (c *Client) Address() common.Address {
	return c.signer.Address()
}

// Close releases the ledger connection, if any.
func (c *Client) Close() error {
	if c.ledger != nil {
		c.ledger.Close()
	}
	return nil
}

// Upload signs content and submits it. A non-nil id charges the upload to
// that credit account.
func (c *Client) Upload(ctx context.Context, content string, id *identifier.Identifier) (resp types.UploadResponse, err error) {
	ctx, span := tracer.Start(ctx, "Upload", trace.WithAttributes(attribute.Int("content.length", len(content))))
	defer func() { endSpan(span, err) }()

	resp, err = c.transfer.Upload(ctx, content, id)
	if err != nil {
		return types.UploadResponse{}, err
	}
	span.SetAttributes(attribute.String("job.id", resp.JobID))
	log.Infow("uploaded", "job_id", resp.JobID)
	return resp, nil
}

// GetStatus fetches a single status snapshot.
func (c *Client) GetStatus(ctx context.Context, jobID string) (resp types.StatusResponse, err error) {
	ctx, span := tracer.Start(ctx, "GetStatus", trace.WithAttributes(attribute.String("job.id", jobID)))
	defer func() { endSpan(span, err) }()

	return c.transfer.GetStatus(ctx, jobID)
}

// WaitForStatus polls jobID until it reaches the target status, fails, or the
// check budget runs out. Options override the client's configured timing.
func (c *Client) WaitForStatus(ctx context.Context, jobID string, opts ...poller.WaitOption) (resp types.StatusResponse, err error) {
	ctx, span := tracer.Start(ctx, "WaitForStatus", trace.WithAttributes(attribute.String("job.id", jobID)))
	defer func() { endSpan(span, err) }()

	resp, err = c.waiter.WaitForStatus(ctx, jobID, opts...)
	if err == nil {
		span.SetAttributes(attribute.String("job.status", resp.Status.String()))
	}
	return resp, err
}

// Retrieve fetches content addressed by opts.
func (c *Client) Retrieve(ctx context.Context, opts resolver.RetrieveOptions) (p resolver.Payload, err error) {
	ctx, span := tracer.Start(ctx, "Retrieve", trace.WithAttributes(
		attribute.String("job.id", opts.JobID),
		attribute.String("request.id", opts.RequestID),
		attribute.Bool("wait", opts.WaitForCompletion),
	))
	defer func() { endSpan(span, err) }()

	p, err = c.resolver.Retrieve(ctx, opts)
	if err == nil {
		span.SetAttributes(attribute.Int("payload.length", len(p.Raw)), attribute.Bool("payload.structured", p.Structured))
	}
	return p, err
}

// GetBalance returns the credit balance of id in native currency units.
func (c *Client) GetBalance(ctx context.Context, id identifier.Identifier) (bal *big.Float, err error) {
	ctx, span := tracer.Start(ctx, "GetBalance", trace.WithAttributes(attribute.String("identifier", id.Hex())))
	defer func() { endSpan(span, err) }()

	l, err := c.requireLedger()
	if err != nil {
		return nil, err
	}
	return l.GetBalance(ctx, id)
}

// TopupCredits adds amount, in native currency units, to id.
func (c *Client) TopupCredits(ctx context.Context, id identifier.Identifier, amount *big.Float) (res ledger.TopupResult, err error) {
	ctx, span := tracer.Start(ctx, "TopupCredits", trace.WithAttributes(attribute.String("identifier", id.Hex())))
	defer func() { endSpan(span, err) }()

	l, err := c.requireLedger()
	if err != nil {
		return ledger.TopupResult{}, err
	}
	res, err = l.TopupCredits(ctx, id, amount)
	if err == nil {
		span.SetAttributes(attribute.String("tx.hash", res.TransactionHash.Hex()), attribute.String("tx.status", res.Status))
	}
	return res, err
}

// CreateIdentifier registers a new credit account owned by Address.
func (c *Client) CreateIdentifier(ctx context.Context) (id identifier.Identifier, err error) {
	ctx, span := tracer.Start(ctx, "CreateIdentifier")
	defer func() { endSpan(span, err) }()

	l, err := c.requireLedger()
	if err != nil {
		return identifier.Identifier{}, err
	}
	return l.CreateIdentifier(ctx)
}

// GetIdentifiers lists the credit accounts owned by Address.
func (c *Client) GetIdentifiers(ctx context.Context) (ids []identifier.Identifier, err error) {
	ctx, span := tracer.Start(ctx, "GetIdentifiers")
	defer func() { endSpan(span, err) }()

	l, err := c.requireLedger()
	if err != nil {
		return nil, err
	}
	return l.GetIdentifiers(ctx)
}

func (c *Client) GetIdentifierOwner(ctx context.Context, id identifier.Identifier) (owner common.Address, err error) {
	ctx, span := tracer.Start(ctx, "GetIdentifierOwner", trace.WithAttributes(attribute.String("identifier", id.Hex())))
	defer func() { endSpan(span, err) }()

	l, err := c.requireLedger()
	if err != nil {
		return common.Address{}, err
	}
	return l.GetIdentifierOwner(ctx, id)
}

func (c *Client) requireLedger() (Ledger, error) {
	if c.ledger == nil {
		return nil, types.NewError(types.KindConfiguration, "ledger is not configured: set rpc_url and ledger_address")
	}
	return c.ledger, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("error.kind", types.KindOf(err).String()))
	}
	span.End()
}

// UploadAndWait uploads content and waits for the job to reach the target
// status, returning the final status snapshot alongside the upload handles.
func (c *Client) UploadAndWait(ctx context.Context, content string, id *identifier.Identifier, opts ...poller.WaitOption) (types.UploadResponse, types.StatusResponse, error) {
	up, err := c.Upload(ctx, content, id)
	if err != nil {
		return types.UploadResponse{}, types.StatusResponse{}, err
	}
	start := time.Now()
	st, err := c.WaitForStatus(ctx, up.JobID, opts...)
	if err != nil {
		return up, types.StatusResponse{}, err
	}
	log.Infow("upload complete", "job_id", up.JobID, "status", st.Status, "waited", time.Since(start))
	return up, st, nil
}
