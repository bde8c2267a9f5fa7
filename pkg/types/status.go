package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the lifecycle state of an upload job as reported by the DA service.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusFinalized  Status = "FINALIZED"
	StatusFailed     Status = "FAILED"
)

var statuses = []Status{StatusPending, StatusProcessing, StatusConfirmed, StatusFinalized, StatusFailed}

// ParseStatus accepts any casing of a known status name.
func ParseStatus(s string) (Status, error) {
	up := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range statuses {
		if st == up {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Terminal reports whether no further transitions happen after this status.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFinalized || s == StatusFailed
}

// Failed reports whether the status is the negative terminal state.
func (s Status) Failed() bool {
	return s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

// BlobInfo locates a confirmed blob by batch coordinates.
type BlobInfo struct {
	BatchHeaderHash string `json:"batchHeaderHash"`
	BlobIndex       uint32 `json:"blobIndex"`
}

// StatusResponse is a snapshot of a job's server-side state. RequestID and
// BlobInfo are only populated once the job has passed CONFIRMED.
type StatusResponse struct {
	Status    Status    `json:"status"`
	RequestID string    `json:"requestId,omitempty"`
	BlobInfo  *BlobInfo `json:"blobInfo,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// UploadResponse is returned once per accepted upload.
type UploadResponse struct {
	JobID     string `json:"jobId"`
	RequestID string `json:"requestId"`
}

// UnmarshalJSON normalizes the status casing so servers that report
// lowercase states still compare equal to the constants above.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
