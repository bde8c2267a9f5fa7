package transfer_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/storacha/daclient/pkg/identifier"
	"github.com/storacha/daclient/pkg/signer"
	"github.com/storacha/daclient/pkg/transfer"
	"github.com/storacha/daclient/pkg/types"
)

const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newClient(t *testing.T, handler http.Handler) (*transfer.Client, signer.Signer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := signer.Resolve(signer.RawKey(testKey))
	require.NoError(t, err)

	endpoint, err := url.Parse(srv.URL)
	require.NoError(t, err)

	c, err := transfer.New(endpoint, s, transfer.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c, s
}

func TestNewRequiresEndpointAndSigner(t *testing.T) {
	s, err := signer.Resolve(signer.RawKey(testKey))
	require.NoError(t, err)

	_, err = transfer.New(nil, s)
	require.Error(t, err)

	_, err = transfer.New(&url.URL{Scheme: "http", Host: "localhost"}, nil)
	require.Error(t, err)

	_, err = transfer.New(&url.URL{Scheme: "http", Host: "localhost"}, s, transfer.WithHTTPClient(nil))
	require.Error(t, err)
}

func TestUpload(t *testing.T) {
	var got transfer.UploadRequest
	c, s := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"jobId":"job-1","requestId":""}`))
	}))

	id := identifier.MustNormalize([]byte{0x01, 0x02})
	resp, err := c.Upload(t.Context(), "hello <world>", &id)
	require.NoError(t, err)
	require.Equal(t, "job-1", resp.JobID)

	require.Equal(t, "hello <world>", got.Content)
	require.Equal(t, s.Address().Hex(), got.AccountID)
	require.Equal(t, strings.Repeat("0", 60)+"0102", got.Identifier)

	salt, err := hexutil.Decode(got.Salt)
	require.NoError(t, err)
	require.Len(t, salt, 32)

	msg, err := transfer.SigningMessage(got.Content, got.Salt)
	require.NoError(t, err)
	require.Equal(t, `{"content":"hello <world>","salt":"`+got.Salt+`"}`, string(msg))

	sig, err := hexutil.Decode(got.Signature)
	require.NoError(t, err)
	signerAddr, err := signer.RecoverAddress(msg, sig)
	require.NoError(t, err)
	require.Equal(t, s.Address(), signerAddr)
}

func TestUploadWithoutIdentifierOmitsField(t *testing.T) {
	var raw map[string]any
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"jobId":"job-2"}`))
	}))

	_, err := c.Upload(t.Context(), "data", nil)
	require.NoError(t, err)
	require.NotContains(t, raw, "identifier")
}

func TestUploadFreshSaltPerCall(t *testing.T) {
	var mu sync.Mutex
	salts := map[string]struct{}{}
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req transfer.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		salts[req.Salt] = struct{}{}
		mu.Unlock()
		_, _ = w.Write([]byte(`{"jobId":"j"}`))
	}))

	for range 5 {
		_, err := c.Upload(t.Context(), "same content", nil)
		require.NoError(t, err)
	}
	require.Len(t, salts, 5)
}

func TestUploadServerError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"insufficient credits for identifier"}`))
	}))

	_, err := c.Upload(t.Context(), "data", nil)
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindUpload))
	require.Contains(t, err.Error(), "insufficient credits for identifier")

	var failed transfer.ErrFailedResponse
	require.ErrorAs(t, err, &failed)
	require.Equal(t, http.StatusPaymentRequired, failed.StatusCode)
}

func TestUploadTransportError(t *testing.T) {
	s, err := signer.Resolve(signer.RawKey(testKey))
	require.NoError(t, err)

	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint, err := url.Parse(srv.URL)
	require.NoError(t, err)
	srv.Close()

	c, err := transfer.New(endpoint, s)
	require.NoError(t, err)

	_, err = c.Upload(t.Context(), "data", nil)
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindUpload))
	require.Contains(t, err.Error(), "sending request")
}

func TestGetStatus(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/status/job-9", r.URL.Path)
		require.Empty(t, r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"status":"CONFIRMED","requestId":"req-9","blobInfo":{"batchHeaderHash":"0xabc","blobIndex":4}}`))
	}))

	st, err := c.GetStatus(t.Context(), "job-9")
	require.NoError(t, err)
	require.Equal(t, types.StatusConfirmed, st.Status)
	require.Equal(t, "req-9", st.RequestID)
	require.Equal(t, &types.BlobInfo{BatchHeaderHash: "0xabc", BlobIndex: 4}, st.BlobInfo)
}

func TestGetStatusErrors(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such job"))
	}))

	_, err := c.GetStatus(t.Context(), "missing")
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindStatus))
	require.Contains(t, err.Error(), "no such job")

	_, err = c.GetStatus(t.Context(), "")
	require.True(t, types.IsKind(err, types.KindStatus))
}

func TestRetrieveBinary(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xff}
	var got map[string]any
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/retrieve", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}))

	idx := uint32(0)
	data, err := c.Retrieve(t.Context(), transfer.RetrieveRequest{BatchHeaderHash: "0xbeef", BlobIndex: &idx})
	require.NoError(t, err)
	require.Equal(t, payload, data)
	require.Equal(t, map[string]any{"batch_header_hash": "0xbeef", "blob_index": float64(0)}, got)
}

func TestRetrieveServerError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"blob expired"}`))
	}))

	_, err := c.Retrieve(t.Context(), transfer.RetrieveRequest{RequestID: "r"})
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindRetrieve))
	require.Contains(t, err.Error(), "blob expired")
}
