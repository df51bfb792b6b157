package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"alfredoptarigan/resume-reviewer/internal/models"
)

const (
	fieldFile           = "file"
	fieldJobDescription = "job_description"
)

// RequestBuilder encodes outbound requests. It performs no I/O and never
// looks inside the file payload.
type RequestBuilder interface {
	BuildAnalyzeMultipart(req models.AnalysisRequest) (*models.WireRequest, error)
	BuildUploadMultipart(candidate *models.UploadCandidate) (*models.WireRequest, error)
	BuildAnalyzeJSON(resumeContent, jobDescription string) (*models.WireRequest, error)
	BuildLinkedInJSON(resumeContent string, profile *models.LinkedInProfile) (*models.WireRequest, error)
}

type requestBuilder struct{}

func NewRequestBuilder() RequestBuilder {
	return &requestBuilder{}
}

// BuildAnalyzeMultipart implements RequestBuilder.
func (b *requestBuilder) BuildAnalyzeMultipart(req models.AnalysisRequest) (*models.WireRequest, error) {
	return b.buildMultipart(req.Candidate, map[string]string{fieldJobDescription: req.JobDescription}, []string{fieldJobDescription})
}

// BuildUploadMultipart implements RequestBuilder.
func (b *requestBuilder) BuildUploadMultipart(candidate *models.UploadCandidate) (*models.WireRequest, error) {
	return b.buildMultipart(candidate, nil, nil)
}

// BuildAnalyzeJSON implements RequestBuilder.
func (b *requestBuilder) BuildAnalyzeJSON(resumeContent, jobDescription string) (*models.WireRequest, error) {
	return b.buildJSON(models.AnalyzeTextRequest{
		ResumeContent:  resumeContent,
		JobDescription: jobDescription,
	})
}

// BuildLinkedInJSON implements RequestBuilder. A nil profile is sent as {}.
func (b *requestBuilder) BuildLinkedInJSON(resumeContent string, profile *models.LinkedInProfile) (*models.WireRequest, error) {
	if profile == nil {
		profile = &models.LinkedInProfile{}
	}

	return b.buildJSON(models.LinkedInRequest{
		ResumeContent:  resumeContent,
		CurrentProfile: profile,
	})
}

func (b *requestBuilder) buildJSON(payload any) (*models.WireRequest, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	return &models.WireRequest{
		Encoding:    models.EncodingJSON,
		ContentType: "application/json",
		Body:        body,
	}, nil
}

func (b *requestBuilder) buildMultipart(candidate *models.UploadCandidate, fields map[string]string, order []string) (*models.WireRequest, error) {
	if candidate == nil {
		return nil, fmt.Errorf("no upload candidate to encode")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.SetBoundary(deriveBoundary(candidate, fields, order)); err != nil {
		return nil, fmt.Errorf("failed to set multipart boundary: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fieldFile, escapeQuotes(candidate.FileName)))
	header.Set("Content-Type", candidate.MimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(candidate.Payload); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}

	for _, name := range order {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &models.WireRequest{
		Encoding:    models.EncodingMultipart,
		ContentType: writer.FormDataContentType(),
		Body:        body.Bytes(),
	}, nil
}

// deriveBoundary hashes every input so equal inputs always produce the
// same body.
func deriveBoundary(candidate *models.UploadCandidate, fields map[string]string, order []string) string {
	h := sha256.New()
	writeChunk := func(p []byte) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write(p)
	}

	writeChunk([]byte(candidate.FileName))
	writeChunk([]byte(candidate.MimeType))
	writeChunk(candidate.Payload)
	for _, name := range order {
		writeChunk([]byte(name))
		writeChunk([]byte(fields[name]))
	}

	return "resume-reviewer-" + hex.EncodeToString(h.Sum(nil))[:40]
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
