// Package transfer is the HTTP transport to the DA service: signed uploads,
// job status lookups and raw retrievals. It never retries; polling belongs to
// the poller package.
package transfer

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/daclient/pkg/identifier"
	"github.com/storacha/daclient/pkg/signer"
	"github.com/storacha/daclient/pkg/types"
)

var log = logging.Logger("transfer")

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "daclient"
	saltSize         = 32
)

// Client performs upload, status and retrieve calls against one DA service.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	signer     signer.Signer
	userAgent  string
}

type Option func(*Client) error

// WithHTTPClient replaces the underlying HTTP client (for custom timeouts, tracing, etc.).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		if client == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.httpClient = client
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// New constructs a transfer client. The signer authenticates uploads; status
// and retrieve calls are unauthenticated.
func New(endpoint *url.URL, s signer.Signer, opts ...Option) (*Client, error) {
	if endpoint == nil {
		return nil, fmt.Errorf("endpoint is required")
	}
	if s == nil {
		return nil, fmt.Errorf("signer is required")
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		signer:     s,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Upload signs and submits content. A nil id means the upload is not charged
// to a credit account.
func (c *Client) Upload(ctx context.Context, content string, id *identifier.Identifier) (types.UploadResponse, error) {
	req, err := c.newUploadRequest(content, id)
	if err != nil {
		return types.UploadResponse{}, types.WrapError(types.KindUpload, "preparing upload", err)
	}

	route := c.endpoint.JoinPath(uploadPath).String()
	res, err := c.postJSON(ctx, route, req)
	if err != nil {
		return types.UploadResponse{}, types.WrapError(types.KindUpload, "uploading content", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return types.UploadResponse{}, types.WrapError(types.KindUpload, "uploading content", errFromResponse(res))
	}

	var resp types.UploadResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return types.UploadResponse{}, types.WrapError(types.KindUpload, "decoding upload response", err)
	}

	log.Debugw("upload accepted", "job", resp.JobID, "request", resp.RequestID, "bytes", len(content))
	return resp, nil
}

// GetStatus performs exactly one status lookup.
func (c *Client) GetStatus(ctx context.Context, jobID string) (types.StatusResponse, error) {
	if jobID == "" || strings.Contains(jobID, "/") {
		return types.StatusResponse{}, types.NewErrorf(types.KindStatus, "invalid job id %q", jobID)
	}

	route := c.endpoint.JoinPath(statusPath, jobID).String()
	var resp types.StatusResponse
	if err := c.getJSON(ctx, route, &resp); err != nil {
		return types.StatusResponse{}, types.WrapError(types.KindStatus, "checking job status", err)
	}
	return resp, nil
}

// Retrieve sends one retrieval request and returns the raw response body.
func (c *Client) Retrieve(ctx context.Context, req RetrieveRequest) ([]byte, error) {
	route := c.endpoint.JoinPath(retrievePath).String()
	res, err := c.postJSON(ctx, route, req)
	if err != nil {
		return nil, types.WrapError(types.KindRetrieve, "retrieving content", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, types.WrapError(types.KindRetrieve, "retrieving content", errFromResponse(res))
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, types.WrapError(types.KindRetrieve, "reading retrieval response", err)
	}
	return data, nil
}

func (c *Client) newUploadRequest(content string, id *identifier.Identifier) (UploadRequest, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return UploadRequest{}, fmt.Errorf("generating salt: %w", err)
	}
	saltHex := hexutil.Encode(salt)

	msg, err := SigningMessage(content, saltHex)
	if err != nil {
		return UploadRequest{}, err
	}
	sig, err := c.signer.SignMessage(msg)
	if err != nil {
		return UploadRequest{}, fmt.Errorf("signing upload: %w", err)
	}

	req := UploadRequest{
		Content:   content,
		AccountID: c.signer.Address().Hex(),
		Salt:      saltHex,
		Signature: hexutil.Encode(sig),
	}
	if id != nil {
		req.Identifier = id.Hex()
	}
	return req, nil
}

// SigningMessage returns the exact bytes an upload signature covers: compact
// JSON of {content, salt} with keys in name order and no HTML escaping.
func SigningMessage(content, salt string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(signedPayload{Content: content, Salt: salt}); err != nil {
		return nil, fmt.Errorf("encoding signed payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	// Only set content-type when we have a body to avoid surprising intermediaries.
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugw("sending request", "method", method, "url", url, "request_id", requestID)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	return res, nil
}

func (c *Client) postJSON(ctx context.Context, url string, params interface{}) (*http.Response, error) {
	var body io.Reader
	if params != nil {
		asBytes, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("encoding request parameters: %w", err)
		}
		body = bytes.NewReader(asBytes)
	}

	return c.sendRequest(ctx, http.MethodPost, url, body)
}

func (c *Client) getJSON(ctx context.Context, url string, target interface{}) error {
	res, err := c.sendRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return errFromResponse(res)
	}
	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response JSON: %w", err)
	}
	return nil
}
