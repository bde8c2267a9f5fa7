package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storacha/daclient/pkg/transfer"
	"github.com/storacha/daclient/pkg/types"
)

const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newDAServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", func(w http.ResponseWriter, r *http.Request) {
		var req transfer.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "hello from stdin", req.Content)
		_ = json.NewEncoder(w).Encode(types.UploadResponse{JobID: "job-42"})
	})
	mux.HandleFunc("GET /status/job-42", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.StatusResponse{
			Status:    types.StatusConfirmed,
			RequestID: "req-42",
			BlobInfo:  &types.BlobInfo{BatchHeaderHash: "0xfeed", BlobIndex: 3},
		})
	})
	mux.HandleFunc("POST /retrieve", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"request_id":"req-42"}`, string(body))
		_, _ = w.Write([]byte{0x00, 0xff, 0x10})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestUploadCmd(t *testing.T) {
	srv := newDAServer(t)

	out, err := run(t, "hello from stdin", "upload", "-", "--api-url", srv.URL, "--private-key", testKey, "-o", "json")
	require.NoError(t, err)

	var resp types.UploadResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "job-42", resp.JobID)
}

func TestStatusCmd(t *testing.T) {
	srv := newDAServer(t)

	out, err := run(t, "", "status", "job-42", "--api-url", srv.URL, "--private-key", testKey, "-o", "json")
	require.NoError(t, err)

	var st types.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	require.Equal(t, types.StatusConfirmed, st.Status)
	require.Equal(t, "req-42", st.RequestID)
	require.EqualValues(t, 3, st.BlobInfo.BlobIndex)
}

func TestRetrieveCmdWritesRawBytes(t *testing.T) {
	srv := newDAServer(t)

	out, err := run(t, "", "retrieve", "--request-id", "req-42", "--api-url", srv.URL, "--private-key", testKey)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0x10}, []byte(out))
}

func TestCreditsRequireLedger(t *testing.T) {
	srv := newDAServer(t)

	_, err := run(t, "", "credits", "balance", "0x01", "--api-url", srv.URL, "--private-key", testKey)
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindConfiguration))
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, "version: ")
}

func TestStatusCmdWaitWithProgress(t *testing.T) {
	srv := newDAServer(t)

	out, err := run(t, "", "status", "job-42", "--wait", "--progress",
		"--initial-delay", "0s", "--interval", "1ms", "--max-checks", "2",
		"--api-url", srv.URL, "--private-key", testKey, "-o", "json")
	require.NoError(t, err)

	var st types.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	require.Equal(t, types.StatusConfirmed, st.Status)
}
