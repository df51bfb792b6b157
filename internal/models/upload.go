package models

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// DefaultMaxFileSize is 10 MiB. A file of exactly this size is accepted.
	DefaultMaxFileSize int64 = 10 * 1024 * 1024
)

// SelectedFile is a file as the user picked it, before validation.
// Payload may be nil when the file was too large to be worth reading.
type SelectedFile struct {
	FileName string
	MimeType string
	Size     int64
	Payload  []byte
}

// UploadCandidate is a selected file that passed validation.
type UploadCandidate struct {
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	Payload   []byte `json:"-"`
}

// AnalysisRequest is built once per submit.
type AnalysisRequest struct {
	Candidate      *UploadCandidate
	JobDescription string
}

// UploadAck is the acknowledgement returned by /upload-resume. Nothing
// downstream consumes it.
type UploadAck struct {
	Status   string `json:"status,omitempty"`
	FileName string `json:"filename,omitempty"`
	Content  string `json:"content,omitempty"`
	Message  string `json:"message,omitempty"`
}
