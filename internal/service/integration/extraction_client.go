package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ExtractionClient talks to the external upload/extraction pipeline. The
// engine never receives raw files; when a content item is registered with a
// source file and no text, the already-extracted plain text is fetched here.
type ExtractionClient interface {
	GetExtractedText(ctx context.Context, fileID string) (string, error)
	GetExtractionInfo(ctx context.Context, fileID string) (*ExtractionInfoResponse, error)
}

type extractionClient struct {
	baseURL    string
	timeout    time.Duration
	retryCount int
	retryDelay time.Duration
	client     *http.Client
	logger     zerolog.Logger
}

type ExtractionInfoResponse struct {
	FileID      string `json:"file_id"`
	FileName    string `json:"file_name"`
	MimeType    string `json:"mime_type"`
	TextLength  int    `json:"text_length"`
	ExtractedAt string `json:"extracted_at"`
}

func NewExtractionClient(baseURL string, timeout time.Duration, retryCount int, retryDelay time.Duration, logger zerolog.Logger) ExtractionClient {
	return &extractionClient{
		baseURL:    baseURL,
		timeout:    timeout,
		retryCount: retryCount,
		retryDelay: retryDelay,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *extractionClient) GetExtractedText(ctx context.Context, fileID string) (string, error) {
	url := fmt.Sprintf("%s/files/%s/text", c.baseURL, fileID)

	var lastErr error

	for i := 0; i <= c.retryCount; i++ {
		if i > 0 {
			c.logger.Warn().Int("attempt", i).Msg("Retrying extracted text fetch")
			time.Sleep(c.retryDelay * time.Duration(i))
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)
			continue
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("failed to get extracted text: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			content, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				lastErr = fmt.Errorf("failed to read response body: %w", err)
				continue
			}

			c.logger.Debug().
				Str("file_id", fileID).
				Int("text_length", len(content)).
				Msg("Got extracted text")

			return string(content), nil
		}

		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			return "", fmt.Errorf("extracted text not found: %s", fileID)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		lastErr = fmt.Errorf("extraction service returned status %d: %s", resp.StatusCode, string(body))
	}

	return "", fmt.Errorf("failed to get extracted text after %d attempts: %w", c.retryCount+1, lastErr)
}

func (c *extractionClient) GetExtractionInfo(ctx context.Context, fileID string) (*ExtractionInfoResponse, error) {
	url := fmt.Sprintf("%s/files/%s/info", c.baseURL, fileID)

	var lastErr error

	for i := 0; i <= c.retryCount; i++ {
		if i > 0 {
			c.logger.Warn().Int("attempt", i).Msg("Retrying extraction info fetch")
			time.Sleep(c.retryDelay * time.Duration(i))
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)
			continue
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("failed to get extraction info: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			var info ExtractionInfoResponse
			err := json.NewDecoder(resp.Body).Decode(&info)
			resp.Body.Close()
			if err != nil {
				lastErr = fmt.Errorf("failed to decode response: %w", err)
				continue
			}
			return &info, nil
		}

		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			return nil, fmt.Errorf("extraction info not found: %s", fileID)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		lastErr = fmt.Errorf("extraction service returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil, fmt.Errorf("failed to get extraction info after %d attempts: %w", c.retryCount+1, lastErr)
}
