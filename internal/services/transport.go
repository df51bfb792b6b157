package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"alfredoptarigan/resume-reviewer/internal/models"
)

const (
	PathUploadResume = "/upload-resume"
	PathAnalyze      = "/analyze"
	PathLinkedIn     = "/linkedin"
)

// AnalysisClient sends one encoded request to the analysis service and
// returns the decoded JSON body. Every failure is a *models.TransportError.
type AnalysisClient interface {
	Send(ctx context.Context, req *models.WireRequest, path string, action models.Action) (any, error)
}

type analysisClient struct {
	baseURL string
	http    *http.Client
}

// NewAnalysisClient creates a client for baseURL. A zero timeout means the
// request runs until the server answers or the connection fails.
func NewAnalysisClient(baseURL string, timeout time.Duration) AnalysisClient {
	return &analysisClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Send implements AnalysisClient. It issues exactly one request.
func (c *analysisClient) Send(ctx context.Context, wire *models.WireRequest, path string, action models.Action) (any, error) {
	fail := func(status int, cause error) error {
		tErr := &models.TransportError{Action: action, StatusCode: status, Cause: cause}
		log.Printf("❌ %s %s failed: %s\n", http.MethodPost, path, tErr.Detail())
		return tErr
	}

	if wire == nil {
		return nil, fail(0, fmt.Errorf("nil request"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(wire.Body))
	if err != nil {
		return nil, fail(0, fmt.Errorf("new request: %w", err))
	}
	req.Header.Set("Content-Type", wire.ContentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail(0, fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body of a failed response is not part of the contract.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fail(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	decoder := json.NewDecoder(resp.Body)

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	// The body must hold exactly one JSON value.
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fail(resp.StatusCode, fmt.Errorf("decode response: trailing data after JSON value"))
	}

	return payload, nil
}
