package pulse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pulsesocial/pulse-go/routes"
)

// ImagesClient uploads images attached to posts.
type ImagesClient struct {
	client *Client
}

func (c *ImagesClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("pulse: images client not initialized")
	}
	return nil
}

// Upload sends an image as a multipart form: a "description" field plus a
// "file" part named after filename. The backend answers 201 with no body the
// client needs.
func (c *ImagesClient) Upload(ctx context.Context, description, filename string, content io.Reader) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("pulse: filename is required")
	}
	if content == nil {
		return fmt.Errorf("pulse: content is required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("description", description); err != nil {
		return fmt.Errorf("pulse: build multipart form: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("pulse: build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("pulse: read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("pulse: build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.client.buildURL(routes.ImageUpload), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	injectTraceparent(ctx, req)

	resp, err := c.client.send(req)
	if err != nil {
		return err
	}
	return drainBody(resp, nil)
}
