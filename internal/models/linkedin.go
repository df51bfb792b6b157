package models

// LinkedInProfile is the user's current profile sent as current_profile.
type LinkedInProfile struct {
	Headline string   `json:"headline,omitempty" yaml:"headline"`
	Summary  string   `json:"summary,omitempty" yaml:"summary"`
	Skills   []string `json:"skills,omitempty" yaml:"skills"`
}

type LinkedInRequest struct {
	ResumeContent  string           `json:"resume_content"`
	CurrentProfile *LinkedInProfile `json:"current_profile"`
}

type LinkedInResult struct {
	Headline        string   `json:"headline,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}
