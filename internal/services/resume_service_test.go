package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-reviewer/internal/models"
)

func newTestService(client AnalysisClient, builder RequestBuilder) ResumeService {
	return NewResumeService(NewFileValidator(models.DefaultMaxFileSize), builder, client, NewResultPresenter())
}

func TestResumeService_InvalidFileNeverReachesNetwork(t *testing.T) {
	tests := []struct {
		name   string
		file   *models.SelectedFile
		reason string
	}{
		{"no file", nil, "Please select a resume file"},
		{"wrong type", &models.SelectedFile{FileName: "cv.txt", MimeType: "text/plain", Size: 10}, "Please upload a PDF or DOCX file"},
		{"too large", &models.SelectedFile{FileName: "cv.pdf", MimeType: models.MimePDF, Size: models.DefaultMaxFileSize + 1}, "File size must be less than 10MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &spyClient{}
			builder := &spyBuilder{RequestBuilder: NewRequestBuilder()}
			svc := newTestService(client, builder)

			outcome := svc.AnalyzeFile(context.Background(), tt.file, "jd")

			assert.Equal(t, models.OutcomeValidationFailure, outcome.Kind)
			assert.Equal(t, tt.reason, outcome.Message)
			assert.Nil(t, outcome.Value)
			assert.Zero(t, builder.calls)
			assert.Zero(t, client.calls)

			upload := svc.UploadResume(context.Background(), tt.file)
			assert.Equal(t, models.OutcomeValidationFailure, upload.Kind)
			assert.Zero(t, builder.calls)
			assert.Zero(t, client.calls)
		})
	}
}

func TestResumeService_AnalyzeFileEndToEnd(t *testing.T) {
	server := newFakeAnalyzer(t, http.StatusOK, `{"ats_score": 45, "missing_keywords": ["Go"]}`)
	svc := newTestService(NewAnalysisClient(server.URL, time.Second), NewRequestBuilder())

	outcome := svc.AnalyzeFile(context.Background(), pdfFile("cv.pdf", []byte("%PDF-1.4 body")), "Go developer")

	require.True(t, outcome.OK())
	require.NotNil(t, outcome.Value)
	assert.Equal(t, 45.0, outcome.Value.ATSScore)
	assert.Equal(t, models.BandAverage, outcome.Value.Band.Category)
	assert.Equal(t, []string{"Go"}, outcome.Value.MissingKeywords)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, PathAnalyze, requests[0].Path)
	assert.Contains(t, requests[0].ContentType, "multipart/form-data; boundary=")
	assert.Contains(t, string(requests[0].Body), "%PDF-1.4 body")
	assert.Contains(t, string(requests[0].Body), "Go developer")
}

func TestResumeService_TransportFailure(t *testing.T) {
	server := newFakeAnalyzer(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	svc := newTestService(NewAnalysisClient(server.URL, time.Second), NewRequestBuilder())

	outcome := svc.AnalyzeFile(context.Background(), pdfFile("cv.pdf", []byte("pdf")), "")

	assert.Equal(t, models.OutcomeTransportFailure, outcome.Kind)
	assert.Equal(t, "Failed to analyze resume", outcome.Message)
	assert.Nil(t, outcome.Value)
	assert.True(t, models.IsTransportError(outcome.Err))
}

func TestResumeService_AnalyzeText(t *testing.T) {
	server := newFakeAnalyzer(t, http.StatusOK, `{"analysis": {"ats_score": 8, "strengths": ["Clear"]}}`)
	svc := newTestService(NewAnalysisClient(server.URL, time.Second), NewRequestBuilder())

	outcome := svc.AnalyzeText(context.Background(), "Jane Doe, Go developer", "Backend role")

	require.True(t, outcome.OK())
	assert.Equal(t, 80.0, outcome.Value.ATSScore)
	assert.Equal(t, models.ScaleTen, outcome.Value.ReportedScale)
	assert.Equal(t, []string{"Clear"}, outcome.Value.Strengths)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "application/json", requests[0].ContentType)
	body := decodeJSON(t, requests[0].Body)
	assert.Equal(t, "Jane Doe, Go developer", body["resume_content"])
	assert.Equal(t, "Backend role", body["job_description"])
}

func TestResumeService_TextFlowsRequireContent(t *testing.T) {
	client := &spyClient{}
	svc := newTestService(client, NewRequestBuilder())

	analyze := svc.AnalyzeText(context.Background(), "   ", "jd")
	assert.Equal(t, models.OutcomeValidationFailure, analyze.Kind)
	assert.Equal(t, "Resume content is required", analyze.Message)

	linkedin := svc.OptimizeLinkedIn(context.Background(), "", nil)
	assert.Equal(t, models.OutcomeValidationFailure, linkedin.Kind)

	assert.Zero(t, client.calls)
}

func TestResumeService_OptimizeLinkedIn(t *testing.T) {
	client := &spyClient{raw: map[string]any{
		"optimized_profile": map[string]any{
			"optimized_profile": map[string]any{"headline": "Go Engineer"},
			"recommendations":   []any{"Add a photo"},
		},
	}}
	svc := newTestService(client, NewRequestBuilder())

	outcome := svc.OptimizeLinkedIn(context.Background(), "resume", &models.LinkedInProfile{Headline: "Dev"})

	require.True(t, outcome.OK())
	assert.Equal(t, "Go Engineer", outcome.Value.Headline)
	assert.Equal(t, []string{"Add a photo"}, outcome.Value.Recommendations)
	assert.Equal(t, 1, client.calls)
}

func TestResumeService_OptimizeLinkedInFailure(t *testing.T) {
	client := &spyClient{err: &models.TransportError{Action: models.ActionLinkedIn, StatusCode: 503}}
	svc := newTestService(client, NewRequestBuilder())

	outcome := svc.OptimizeLinkedIn(context.Background(), "resume", nil)

	assert.Equal(t, models.OutcomeTransportFailure, outcome.Kind)
	assert.Equal(t, "Failed to optimize LinkedIn profile", outcome.Message)
}

func TestResumeService_UploadResume(t *testing.T) {
	server := newFakeAnalyzer(t, http.StatusOK, `{"status":"success","filename":"cv.pdf","content":"text"}`)
	svc := newTestService(NewAnalysisClient(server.URL, time.Second), NewRequestBuilder())

	outcome := svc.UploadResume(context.Background(), pdfFile("cv.pdf", []byte("pdf")))

	require.True(t, outcome.OK())
	assert.Equal(t, "success", outcome.Value.Status)
	assert.Equal(t, "cv.pdf", outcome.Value.FileName)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, PathUploadResume, requests[0].Path)
	assert.NotContains(t, string(requests[0].Body), "job_description")
}

type failingBuilder struct {
	RequestBuilder
}

func (failingBuilder) BuildAnalyzeMultipart(models.AnalysisRequest) (*models.WireRequest, error) {
	return nil, errors.New("encode failed")
}

func TestResumeService_BuildFailureIsTransportFailure(t *testing.T) {
	client := &spyClient{}
	svc := newTestService(client, failingBuilder{RequestBuilder: NewRequestBuilder()})

	outcome := svc.AnalyzeFile(context.Background(), pdfFile("cv.pdf", []byte("pdf")), "")

	assert.Equal(t, models.OutcomeTransportFailure, outcome.Kind)
	assert.Equal(t, "Failed to analyze resume", outcome.Message)
	assert.Zero(t, client.calls)
}
