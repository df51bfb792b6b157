package services

import (
	"fmt"

	"alfredoptarigan/resume-reviewer/internal/models"
)

const (
	reasonNoFile      = "Please select a resume file"
	reasonInvalidType = "Please upload a PDF or DOCX file"
)

var allowedMimeTypes = map[string]struct{}{
	models.MimePDF:  {},
	models.MimeDOCX: {},
}

type FileValidator interface {
	Validate(file *models.SelectedFile) (*models.UploadCandidate, error)
}

type fileValidator struct {
	maxFileSize   int64
	tooLargeError string
}

func NewFileValidator(maxFileSize int64) FileValidator {
	if maxFileSize <= 0 {
		maxFileSize = models.DefaultMaxFileSize
	}

	return &fileValidator{
		maxFileSize:   maxFileSize,
		tooLargeError: fmt.Sprintf("File size must be less than %s", FormatSize(maxFileSize)),
	}
}

// Validate implements FileValidator. The declared MIME type must match
// exactly; the size limit is inclusive.
func (v *fileValidator) Validate(file *models.SelectedFile) (*models.UploadCandidate, error) {
	if file == nil {
		return nil, models.NewValidationError(reasonNoFile)
	}

	if _, ok := allowedMimeTypes[file.MimeType]; !ok {
		return nil, models.NewValidationError(reasonInvalidType)
	}

	if file.Size > v.maxFileSize || int64(len(file.Payload)) > v.maxFileSize {
		return nil, models.NewValidationError(v.tooLargeError)
	}

	return &models.UploadCandidate{
		FileName:  file.FileName,
		MimeType:  file.MimeType,
		SizeBytes: file.Size,
		Payload:   file.Payload,
	}, nil
}

// FormatSize renders a byte limit the way it is shown to users: whole
// megabytes or kilobytes when exact, bytes otherwise.
func FormatSize(size int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)

	switch {
	case size >= mb && size%mb == 0:
		return fmt.Sprintf("%dMB", size/mb)
	case size >= kb && size%kb == 0:
		return fmt.Sprintf("%dKB", size/kb)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
