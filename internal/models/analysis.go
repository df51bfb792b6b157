package models

// ScoreScale is the maximum of the scale a service reported a score on.
type ScoreScale int

const (
	ScalePercent ScoreScale = 100
	ScaleTen     ScoreScale = 10
)

type BandCategory string

const (
	BandExcellent BandCategory = "excellent"
	BandGood      BandCategory = "good"
	BandAverage   BandCategory = "average"
	BandPoor      BandCategory = "poor"
)

type ScoreBand struct {
	Category BandCategory `json:"category"`
	Label    string       `json:"label"`
}

// AnalysisResult is what a view may render. ATSScore is always on the
// 0-100 scale; ReportedScore keeps the value as the service sent it.
type AnalysisResult struct {
	ATSScore           float64    `json:"ats_score"`
	HasScore           bool       `json:"has_score"`
	ReportedScore      float64    `json:"reported_score"`
	ReportedScale      ScoreScale `json:"reported_scale"`
	Band               ScoreBand  `json:"band"`
	MissingKeywords    []string   `json:"missing_keywords,omitempty"`
	Suggestions        []string   `json:"suggestions,omitempty"`
	Strengths          []string   `json:"strengths,omitempty"`
	Improvements       []string   `json:"improvements,omitempty"`
	KeyRecommendations []string   `json:"key_recommendations,omitempty"`
	RawAnalysis        string     `json:"raw_analysis,omitempty"`
}

// AnalyzeTextRequest is the JSON body of the text based /analyze call.
type AnalyzeTextRequest struct {
	ResumeContent  string `json:"resume_content"`
	JobDescription string `json:"job_description"`
}
