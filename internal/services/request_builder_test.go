package services

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-reviewer/internal/models"
)

type parsedPart struct {
	FileName    string
	ContentType string
	Data        []byte
}

func parseMultipart(t *testing.T, wire *models.WireRequest) map[string]parsedPart {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(wire.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(wire.Body), params["boundary"])
	parts := map[string]parsedPart{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = parsedPart{
			FileName:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	return parts
}

func TestRequestBuilder_AnalyzeMultipart(t *testing.T) {
	payload := []byte("%PDF-1.7\x00\xff\r\n--not-a-boundary\r\nbinary")
	candidate := &models.UploadCandidate{
		FileName:  `my "best" cv.pdf`,
		MimeType:  models.MimePDF,
		SizeBytes: int64(len(payload)),
		Payload:   payload,
	}

	wire, err := NewRequestBuilder().BuildAnalyzeMultipart(models.AnalysisRequest{Candidate: candidate, JobDescription: "Senior Go engineer"})
	require.NoError(t, err)
	assert.Equal(t, models.EncodingMultipart, wire.Encoding)

	parts := parseMultipart(t, wire)
	require.Len(t, parts, 2)

	file := parts["file"]
	assert.Equal(t, `my "best" cv.pdf`, file.FileName)
	assert.Equal(t, models.MimePDF, file.ContentType)
	assert.Equal(t, payload, file.Data)

	assert.Equal(t, "Senior Go engineer", string(parts["job_description"].Data))
}

func TestRequestBuilder_EmptyJobDescriptionIsStillSent(t *testing.T) {
	candidate := &models.UploadCandidate{FileName: "cv.docx", MimeType: models.MimeDOCX, Payload: []byte("PK")}

	wire, err := NewRequestBuilder().BuildAnalyzeMultipart(models.AnalysisRequest{Candidate: candidate})
	require.NoError(t, err)

	parts := parseMultipart(t, wire)
	jd, ok := parts["job_description"]
	require.True(t, ok)
	assert.Empty(t, jd.Data)
	assert.Equal(t, models.MimeDOCX, parts["file"].ContentType)
}

func TestRequestBuilder_IsDeterministic(t *testing.T) {
	builder := NewRequestBuilder()
	candidate := &models.UploadCandidate{FileName: "cv.pdf", MimeType: models.MimePDF, Payload: []byte("same bytes")}

	first, err := builder.BuildAnalyzeMultipart(models.AnalysisRequest{Candidate: candidate, JobDescription: "jd"})
	require.NoError(t, err)
	second, err := builder.BuildAnalyzeMultipart(models.AnalysisRequest{Candidate: candidate, JobDescription: "jd"})
	require.NoError(t, err)

	assert.Equal(t, first.ContentType, second.ContentType)
	assert.Equal(t, first.Body, second.Body)

	other, err := builder.BuildAnalyzeMultipart(models.AnalysisRequest{Candidate: candidate, JobDescription: "different jd"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ContentType, other.ContentType)
}

func TestRequestBuilder_DoesNotModifyPayload(t *testing.T) {
	payload := []byte("original")
	candidate := &models.UploadCandidate{FileName: "cv.pdf", MimeType: models.MimePDF, Payload: payload}

	_, err := NewRequestBuilder().BuildAnalyzeMultipart(models.AnalysisRequest{Candidate: candidate, JobDescription: "jd"})
	require.NoError(t, err)

	assert.Equal(t, []byte("original"), payload)
}

func TestRequestBuilder_UploadMultipartHasOnlyFile(t *testing.T) {
	candidate := &models.UploadCandidate{FileName: "cv.pdf", MimeType: models.MimePDF, Payload: []byte("pdf")}

	wire, err := NewRequestBuilder().BuildUploadMultipart(candidate)
	require.NoError(t, err)

	parts := parseMultipart(t, wire)
	require.Len(t, parts, 1)
	assert.Equal(t, []byte("pdf"), parts["file"].Data)
}

func TestRequestBuilder_NilCandidate(t *testing.T) {
	_, err := NewRequestBuilder().BuildAnalyzeMultipart(models.AnalysisRequest{})
	assert.Error(t, err)
}

func TestRequestBuilder_AnalyzeJSON(t *testing.T) {
	wire, err := NewRequestBuilder().BuildAnalyzeJSON("Jane Doe\nGo developer", "")
	require.NoError(t, err)

	assert.Equal(t, models.EncodingJSON, wire.Encoding)
	assert.Equal(t, "application/json", wire.ContentType)

	body := decodeJSON(t, wire.Body)
	assert.Equal(t, "Jane Doe\nGo developer", body["resume_content"])
	assert.Equal(t, "", body["job_description"])
}

func TestRequestBuilder_LinkedInJSON(t *testing.T) {
	builder := NewRequestBuilder()

	wire, err := builder.BuildLinkedInJSON("resume text", nil)
	require.NoError(t, err)
	body := decodeJSON(t, wire.Body)
	assert.Equal(t, "resume text", body["resume_content"])
	assert.Equal(t, map[string]any{}, body["current_profile"])

	wire, err = builder.BuildLinkedInJSON("resume text", &models.LinkedInProfile{
		Headline: "Backend Engineer",
		Skills:   []string{"Go", "Postgres"},
	})
	require.NoError(t, err)
	body = decodeJSON(t, wire.Body)
	assert.Equal(t, map[string]any{
		"headline": "Backend Engineer",
		"skills":   []any{"Go", "Postgres"},
	}, body["current_profile"])
}
