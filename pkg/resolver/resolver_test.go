package resolver_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/storacha/daclient/internal/mocks"
	"github.com/storacha/daclient/pkg/poller"
	"github.com/storacha/daclient/pkg/resolver"
	"github.com/storacha/daclient/pkg/transfer"
	"github.com/storacha/daclient/pkg/types"
)

func fastPoller(api poller.StatusAPI) *poller.Poller {
	return poller.New(api, poller.WithDefaults(poller.Settings{
		Target:        types.StatusConfirmed,
		MaxChecks:     5,
		CheckInterval: time.Millisecond,
	}))
}

func TestBuildRequestPrecedence(t *testing.T) {
	idx := resolver.BlobIndex(3)
	tests := []struct {
		name      string
		requestID string
		opts      resolver.RetrieveOptions
		want      transfer.RetrieveRequest
		wantErr   bool
	}{
		{
			name: "request id wins over everything",
			opts: resolver.RetrieveOptions{RequestID: "R", JobID: "J", BatchHeaderHash: "0xab", BlobIndex: idx},
			want: transfer.RetrieveRequest{RequestID: "R"},
		},
		{
			name:      "resolved request id overrides supplied one",
			requestID: "R2",
			opts:      resolver.RetrieveOptions{RequestID: "R", JobID: "J"},
			want:      transfer.RetrieveRequest{RequestID: "R2"},
		},
		{
			name: "job id over batch coordinates",
			opts: resolver.RetrieveOptions{JobID: "J", BatchHeaderHash: "0xab", BlobIndex: idx},
			want: transfer.RetrieveRequest{JobID: "J"},
		},
		{
			name: "batch coordinates",
			opts: resolver.RetrieveOptions{BatchHeaderHash: "0xab", BlobIndex: idx},
			want: transfer.RetrieveRequest{BatchHeaderHash: "0xab", BlobIndex: resolver.BlobIndex(3)},
		},
		{
			name: "blob index zero is valid",
			opts: resolver.RetrieveOptions{BatchHeaderHash: "0xab", BlobIndex: resolver.BlobIndex(0)},
			want: transfer.RetrieveRequest{BatchHeaderHash: "0xab", BlobIndex: resolver.BlobIndex(0)},
		},
		{
			name:    "hash without index",
			opts:    resolver.RetrieveOptions{BatchHeaderHash: "0xab"},
			wantErr: true,
		},
		{
			name:    "index without hash",
			opts:    resolver.RetrieveOptions{BlobIndex: idx},
			wantErr: true,
		},
		{
			name:    "nothing",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.BuildRequest(tt.requestID, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, types.IsKind(err, types.KindRetrieve))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRetrieveByJobIDDoesNotPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	statusAPI := mocks.NewMockStatusAPI(ctrl)
	retriever := mocks.NewMockRetriever(ctrl)

	retriever.EXPECT().
		Retrieve(gomock.Any(), transfer.RetrieveRequest{JobID: "J"}).
		Return([]byte("plain text"), nil)

	r := resolver.New(fastPoller(statusAPI), retriever)
	p, err := r.Retrieve(t.Context(), resolver.RetrieveOptions{JobID: "J"})
	require.NoError(t, err)
	require.False(t, p.Structured)
	require.Equal(t, []byte("plain text"), p.Raw)
}

func TestRetrieveWaitsForCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	statusAPI := mocks.NewMockStatusAPI(ctrl)
	retriever := mocks.NewMockRetriever(ctrl)

	gomock.InOrder(
		statusAPI.EXPECT().GetStatus(gomock.Any(), "J").Return(types.StatusResponse{Status: types.StatusProcessing}, nil),
		statusAPI.EXPECT().GetStatus(gomock.Any(), "J").Return(types.StatusResponse{Status: types.StatusConfirmed, RequestID: "R"}, nil),
		retriever.EXPECT().Retrieve(gomock.Any(), transfer.RetrieveRequest{RequestID: "R"}).Return([]byte(`{"hello":"world"}`), nil),
	)

	r := resolver.New(fastPoller(statusAPI), retriever)
	p, err := r.Retrieve(t.Context(), resolver.RetrieveOptions{JobID: "J", WaitForCompletion: true})
	require.NoError(t, err)
	require.True(t, p.Structured)
	require.Equal(t, map[string]any{"hello": "world"}, p.Value)
}

func TestRetrieveWaitWithoutRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	statusAPI := mocks.NewMockStatusAPI(ctrl)
	retriever := mocks.NewMockRetriever(ctrl)

	statusAPI.EXPECT().GetStatus(gomock.Any(), "J").Return(types.StatusResponse{Status: types.StatusConfirmed}, nil)
	// no retrieval expected

	r := resolver.New(fastPoller(statusAPI), retriever)
	_, err := r.Retrieve(t.Context(), resolver.RetrieveOptions{JobID: "J", WaitForCompletion: true})
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindRetrieve))
	require.Contains(t, err.Error(), "no request id")
}

func TestRetrieveWaitFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	statusAPI := mocks.NewMockStatusAPI(ctrl)
	retriever := mocks.NewMockRetriever(ctrl)

	statusAPI.EXPECT().GetStatus(gomock.Any(), "J").Return(types.StatusResponse{Status: types.StatusFailed, Error: "rejected"}, nil)

	r := resolver.New(fastPoller(statusAPI), retriever)
	_, err := r.Retrieve(t.Context(), resolver.RetrieveOptions{JobID: "J", WaitForCompletion: true})
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindStatus))
	require.Contains(t, err.Error(), "rejected")
}

func TestRetrieveNoAddressingIsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	statusAPI := mocks.NewMockStatusAPI(ctrl)
	retriever := mocks.NewMockRetriever(ctrl)

	r := resolver.New(fastPoller(statusAPI), retriever)
	_, err := r.Retrieve(t.Context(), resolver.RetrieveOptions{})
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.KindRetrieve))

	// wait flag without a job id is not an addressing mode
	_, err = r.Retrieve(t.Context(), resolver.RetrieveOptions{WaitForCompletion: true})
	require.True(t, types.IsKind(err, types.KindRetrieve))
}

func TestDecode(t *testing.T) {
	structured := resolver.Decode([]byte(`{"a":[1,2,{"b":null}],"c":"d"}`))
	require.True(t, structured.Structured)
	require.Equal(t, map[string]any{
		"a": []any{json.Number("1"), json.Number("2"), map[string]any{"b": nil}},
		"c": "d",
	}, structured.Value)

	binary := []byte{0x00, 0x01, 0xff}
	raw := resolver.Decode(binary)
	require.False(t, raw.Structured)
	require.Nil(t, raw.Value)
	require.Equal(t, binary, raw.Raw)
	_, ok := raw.Text()
	require.False(t, ok)

	text := resolver.Decode([]byte("not json"))
	require.False(t, text.Structured)
	s, ok := text.Text()
	require.True(t, ok)
	require.Equal(t, "not json", s)

	null := resolver.Decode([]byte("null"))
	require.True(t, null.Structured)
	require.Nil(t, null.Value)

	empty := resolver.Decode(nil)
	require.False(t, empty.Structured)
}
