package iris

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrMissingCredentials = errors.New("missing credentials: set VECTORIZE_API_TOKEN and VECTORIZE_ORG_ID or pass WithToken and WithOrganization")

	ErrNoData = errors.New("extraction completed but no data was returned")
)

type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "file not found: " + e.Path
}

// StatusError reports an unexpected HTTP status from one of the protocol
// steps. Op identifies the step; Body is the raw response body.
type StatusError struct {
	Op string

	StatusCode int
	Body       string
}

const (
	OpUploadStart     = "start upload"
	OpUploadTransfer  = "upload file"
	OpExtractionStart = "start extraction"
	OpStatusCheck     = "check status"
)

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to %s: %d - %s", e.Op, e.StatusCode, e.Body)
}

type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("extraction timed out after %v", e.Timeout)
}

// ExtractionError reports a job that finished with success=false.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return "extraction failed: " + e.Message
}

func statusError(op string, resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	return &StatusError{
		Op: op,

		StatusCode: resp.StatusCode,
		Body:       string(data),
	}
}
