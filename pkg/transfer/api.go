package transfer

const (
	uploadPath   = "/upload"
	statusPath   = "/status"
	retrievePath = "/retrieve"
)

// UploadRequest is the signed body of POST /upload. Identifier is omitted when
// the upload is not associated with a credit account.
type UploadRequest struct {
	Content    string `json:"content"`
	AccountID  string `json:"account_id"`
	Identifier string `json:"identifier,omitempty"`
	Salt       string `json:"salt"`
	Signature  string `json:"signature"`
}

// RetrieveRequest is the body of POST /retrieve. Exactly one addressing mode
// is populated: RequestID, JobID, or BatchHeaderHash together with BlobIndex.
type RetrieveRequest struct {
	RequestID       string  `json:"request_id,omitempty"`
	JobID           string  `json:"job_id,omitempty"`
	BatchHeaderHash string  `json:"batch_header_hash,omitempty"`
	BlobIndex       *uint32 `json:"blob_index,omitempty"`
}

// signedPayload is the message covered by the upload signature. Fields are
// declared in name order so the serialized form is stable.
type signedPayload struct {
	Content string `json:"content"`
	Salt    string `json:"salt"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}
