package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// recordedRequest is what the fake analysis service saw.
type recordedRequest struct {
	Path        string
	ContentType string
	Body        []byte
}

// fakeAnalyzer is an httptest server standing in for the analysis service.
type fakeAnalyzer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	response string
}

func newFakeAnalyzer(t *testing.T, status int, response string) *fakeAnalyzer {
	t.Helper()

	f := &fakeAnalyzer{status: status, response: response}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		status, response := f.status, f.response
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(f.Close)

	return f
}

func (f *fakeAnalyzer) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeAnalyzer) Respond(status int, response string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.response = status, response
}

// spyClient records Send calls without touching the network.
type spyClient struct {
	calls int
	raw   any
	err   error
}

func (s *spyClient) Send(ctx context.Context, req *models.WireRequest, path string, action models.Action) (any, error) {
	s.calls++
	return s.raw, s.err
}

// spyBuilder counts builds and delegates to the real builder.
type spyBuilder struct {
	RequestBuilder
	calls int
}

func (s *spyBuilder) BuildAnalyzeMultipart(req models.AnalysisRequest) (*models.WireRequest, error) {
	s.calls++
	return s.RequestBuilder.BuildAnalyzeMultipart(req)
}

func (s *spyBuilder) BuildUploadMultipart(c *models.UploadCandidate) (*models.WireRequest, error) {
	s.calls++
	return s.RequestBuilder.BuildUploadMultipart(c)
}

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", data, err)
	}
	return out
}

func pdfFile(name string, payload []byte) *models.SelectedFile {
	return &models.SelectedFile{
		FileName: name,
		MimeType: models.MimePDF,
		Size:     int64(len(payload)),
		Payload:  payload,
	}
}
