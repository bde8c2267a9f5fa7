// Package resolver turns retrieval addressing options into exactly one
// retrieval request, waiting for job completion first when asked to.
package resolver

import (
	"context"

	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/daclient/pkg/poller"
	"github.com/storacha/daclient/pkg/transfer"
	"github.com/storacha/daclient/pkg/types"
)

var log = logging.Logger("resolver")

// StatusWaiter blocks until a job reaches a status.
type StatusWaiter interface {
	WaitForStatus(ctx context.Context, jobID string, opts ...poller.WaitOption) (types.StatusResponse, error)
}

// Retriever sends a single retrieval request and returns the raw body.
type Retriever interface {
	Retrieve(ctx context.Context, req transfer.RetrieveRequest) ([]byte, error)
}

// RetrieveOptions addresses content by request id, job id, or batch
// coordinates. When more than one mode is set the precedence is request id,
// then job id, then batch coordinates.
type RetrieveOptions struct {
	JobID string
	// WaitForCompletion waits for JobID to be CONFIRMED and retrieves by the
	// request id the completed job reports.
	WaitForCompletion bool

	RequestID string

	BatchHeaderHash string
	BlobIndex       *uint32
}

// BlobIndex is a convenience for building RetrieveOptions literals.
func BlobIndex(i uint32) *uint32 {
	return &i
}

type Resolver struct {
	waiter    StatusWaiter
	retriever Retriever
}

func New(waiter StatusWaiter, retriever Retriever) *Resolver {
	return &Resolver{
		waiter:    waiter,
		retriever: retriever,
	}
}

// Resolve produces the retrieval request for opts. It only touches the
// network when opts asks to wait for a job.
func (r *Resolver) Resolve(ctx context.Context, opts RetrieveOptions) (transfer.RetrieveRequest, error) {
	requestID := opts.RequestID
	if opts.JobID != "" && opts.WaitForCompletion {
		st, err := r.waiter.WaitForStatus(ctx, opts.JobID, poller.WithTargetStatus(poller.DefaultTarget))
		if err != nil {
			return transfer.RetrieveRequest{}, err
		}
		if st.RequestID == "" {
			return transfer.RetrieveRequest{}, types.NewErrorf(types.KindRetrieve, "no request id in completed status for job %s", opts.JobID)
		}
		log.Debugw("resolved request id from completed job", "job", opts.JobID, "request", st.RequestID)
		requestID = st.RequestID
	}
	return BuildRequest(requestID, opts)
}

// BuildRequest applies the addressing precedence without any I/O. requestID
// overrides opts.RequestID when non-empty.
func BuildRequest(requestID string, opts RetrieveOptions) (transfer.RetrieveRequest, error) {
	if requestID == "" {
		requestID = opts.RequestID
	}
	switch {
	case requestID != "":
		return transfer.RetrieveRequest{RequestID: requestID}, nil
	case opts.JobID != "":
		return transfer.RetrieveRequest{JobID: opts.JobID}, nil
	case opts.BatchHeaderHash != "" && opts.BlobIndex != nil:
		idx := *opts.BlobIndex
		return transfer.RetrieveRequest{BatchHeaderHash: opts.BatchHeaderHash, BlobIndex: &idx}, nil
	default:
		return transfer.RetrieveRequest{}, types.NewError(types.KindRetrieve, "must provide jobId, requestId, or batchHeaderHash+blobIndex")
	}
}

// Retrieve resolves opts, sends the request and decodes the response.
func (r *Resolver) Retrieve(ctx context.Context, opts RetrieveOptions) (Payload, error) {
	req, err := r.Resolve(ctx, opts)
	if err != nil {
		return Payload{}, err
	}
	data, err := r.retriever.Retrieve(ctx, req)
	if err != nil {
		return Payload{}, err
	}
	return Decode(data), nil
}
