package models

import "time"

// WorkspaceSnapshot is a copy of one browser session's UI state.
type WorkspaceSnapshot struct {
	ID             string           `json:"id"`
	SelectedFile   *UploadCandidate `json:"selected_file,omitempty"`
	JobDescription string           `json:"job_description"`
	Busy           bool             `json:"busy"`
	LastResult     *AnalysisResult  `json:"last_result,omitempty"`
	LastError      string           `json:"last_error,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type JobDescriptionRequest struct {
	JobDescription string `json:"job_description"`
}

type ErrorResponse struct {
	Error string      `json:"error"`
	Kind  OutcomeKind `json:"kind,omitempty"`
}
