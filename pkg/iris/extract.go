package iris

import (
	"bytes"
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Extract uploads the file, starts an extraction job and polls until the job
// reaches a terminal state or the configured timeout elapses. It blocks the
// calling goroutine; inter-poll delays honor ctx cancellation.
func (c *Client) Extract(ctx context.Context, file File, options *ExtractionOptions) (*Result, error) {
	if options == nil {
		options = new(ExtractionOptions)
	}

	fileID, err := c.upload(ctx, file)

	if err != nil {
		return nil, err
	}

	job, err := c.startExtraction(ctx, fileID, options)

	if err != nil {
		return nil, err
	}

	return c.poll(ctx, job.ExtractionID)
}

// ExtractFile reads the file at path eagerly into memory and delegates to
// Extract. The path is validated before any request is issued.
func (c *Client) ExtractFile(ctx context.Context, path string, options *ExtractionOptions) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &FileNotFoundError{Path: path}
	}

	content, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file := File{
		Name: filepath.Base(path),

		Content:     content,
		ContentType: contentType,
	}

	return c.Extract(ctx, file, options)
}

func (c *Client) startExtraction(ctx context.Context, fileID string, options *ExtractionOptions) (*StartExtractionResponse, error) {
	body, err := json.Marshal(options.request(fileID))

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.baseURL()+"/extraction", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(OpExtractionStart, resp)
	}

	var result StartExtractionResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// poll checks the job status until it is ready. The deadline check happens
// before each status request, so the wall-clock bound holds no matter how
// slow individual requests are.
func (c *Client) poll(ctx context.Context, extractionID string) (*Result, error) {
	start := time.Now()

	for {
		if time.Since(start) > c.timeout {
			return nil, &TimeoutError{Timeout: c.timeout}
		}

		status, err := c.checkStatus(ctx, extractionID)

		if err != nil {
			return nil, err
		}

		if status.Ready {
			return resolve(status)
		}

		if err := wait(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}
}

func (c *Client) checkStatus(ctx context.Context, extractionID string) (*ExtractionStatus, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.baseURL()+"/extraction/"+extractionID, nil)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(OpStatusCheck, resp)
	}

	var status ExtractionStatus

	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}

func resolve(status *ExtractionStatus) (*Result, error) {
	if status.Data == nil {
		return nil, ErrNoData
	}

	if !status.Data.Success {
		message := status.Data.Error

		if message == "" {
			message = "Unknown error"
		}

		return nil, &ExtractionError{Message: message}
	}

	return status.Data, nil
}

func wait(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		return nil
	}
}
