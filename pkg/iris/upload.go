package iris

import (
	"bytes"
	"context"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/google/uuid"
)

// upload requests a presigned upload slot, transfers the file bytes to it
// and returns the file id linking the upload to the extraction phase.
func (c *Client) upload(ctx context.Context, file File) (string, error) {
	if file.ContentType == "" {
		file.ContentType = "application/octet-stream"
	}

	if file.Name == "" {
		file.Name = uuid.New().String()

		if ext, _ := mime.ExtensionsByType(file.ContentType); len(ext) > 0 {
			file.Name += ext[0]
		}
	}

	ticket, err := c.startUpload(ctx, file)

	if err != nil {
		return "", err
	}

	if err := c.transfer(ctx, ticket.UploadURL, file.Content); err != nil {
		return "", err
	}

	return ticket.FileID, nil
}

func (c *Client) startUpload(ctx context.Context, file File) (*StartUploadResponse, error) {
	body, _ := json.Marshal(StartUploadRequest{
		Name:        file.Name,
		ContentType: file.ContentType,
	})

	req, _ := http.NewRequestWithContext(ctx, "POST", c.baseURL()+"/files", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(OpUploadStart, resp)
	}

	var result StartUploadResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// transfer puts the raw bytes to the presigned URL. The URL carries its own
// authorization, so no bearer token is sent.
func (c *Client) transfer(ctx context.Context, url string, content []byte) error {
	req, _ := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(content))
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = int64(len(content))

	resp, err := c.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	}

	return statusError(OpUploadTransfer, resp)
}
