package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrFailedResponse is returned for any non-2xx response from the DA service.
// Message holds the service's own error text when the body carried one.
type ErrFailedResponse struct {
	StatusCode int
	Body       string
	Message    string
}

func errFromResponse(res *http.Response) ErrFailedResponse {
	err := ErrFailedResponse{StatusCode: res.StatusCode}

	message, merr := io.ReadAll(res.Body)
	if merr != nil {
		err.Body = merr.Error()
		return err
	}
	err.Body = strings.TrimSpace(string(message))

	var body errorBody
	if json.Unmarshal(message, &body) == nil {
		switch {
		case body.Error != "":
			err.Message = body.Error
		case body.Message != "":
			err.Message = body.Message
		case body.Detail != "":
			err.Message = body.Detail
		}
	}
	return err
}

func (e ErrFailedResponse) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("http request received unexpected status: %d %s, message: %s", e.StatusCode, http.StatusText(e.StatusCode), msg)
}
