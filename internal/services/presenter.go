package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// ResultPresenter turns loosely typed service responses into what a view
// may render. It never fails: missing or malformed fields are left empty.
type ResultPresenter interface {
	Present(raw any, scale models.ScoreScale) models.AnalysisResult
	PresentLinkedIn(raw any) models.LinkedInResult
	PresentUpload(raw any) models.UploadAck
}

type resultPresenter struct{}

func NewResultPresenter() ResultPresenter {
	return &resultPresenter{}
}

// Present implements ResultPresenter. Scores reported out of 10 are
// converted to the 0-100 scale before banding.
func (p *resultPresenter) Present(raw any, scale models.ScoreScale) models.AnalysisResult {
	obj := asObject(raw)
	if inner := asObject(obj["analysis"]); inner != nil {
		obj = inner
	}

	if scale != models.ScaleTen {
		scale = models.ScalePercent
	}

	result := models.AnalysisResult{
		ReportedScale:      scale,
		MissingKeywords:    readStrings(obj, "missing_keywords"),
		Suggestions:        readStrings(obj, "suggestions"),
		Strengths:          readStrings(obj, "strengths"),
		Improvements:       readStrings(obj, "improvements"),
		KeyRecommendations: readStrings(obj, "key_recommendations"),
		RawAnalysis:        readString(obj, "raw_analysis"),
	}

	if score, ok := readNumber(obj, "ats_score"); ok {
		result.HasScore = true
		result.ReportedScore = score
		result.ATSScore = score * float64(models.ScalePercent) / float64(scale)
	}
	result.Band = BandFor(result.ATSScore)

	return result
}

// PresentLinkedIn implements ResultPresenter. The reference service nests
// the sections twice: {"optimized_profile": {"optimized_profile": {...},
// "recommendations": [...]}}. Each level of the chain is read, so flatter
// shapes work too.
func (p *resultPresenter) PresentLinkedIn(raw any) models.LinkedInResult {
	var result models.LinkedInResult

	obj := asObject(raw)
	for depth := 0; obj != nil && depth < 3; depth++ {
		if recs := readStrings(obj, "recommendations"); recs != nil {
			result.Recommendations = recs
		}
		if headline := readString(obj, "headline"); headline != "" {
			result.Headline = headline
		}
		if summary := readString(obj, "summary"); summary != "" {
			result.Summary = summary
		}
		if skills := readStrings(obj, "skills"); skills != nil {
			result.Skills = skills
		}

		obj = asObject(obj["optimized_profile"])
	}

	return result
}

// PresentUpload implements ResultPresenter.
func (p *resultPresenter) PresentUpload(raw any) models.UploadAck {
	obj := asObject(raw)

	return models.UploadAck{
		Status:   readString(obj, "status"),
		FileName: readString(obj, "filename"),
		Content:  readString(obj, "content"),
		Message:  readString(obj, "message"),
	}
}

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

func readString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// readStrings keeps only the string elements of a list. A result with no
// strings is reported as absent.
func readStrings(obj map[string]any, key string) []string {
	items, ok := obj[key].([]any)
	if !ok {
		return nil
	}

	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}

	return out
}

func readNumber(obj map[string]any, key string) (float64, bool) {
	var (
		n   float64
		err error
	)

	switch v := obj[key].(type) {
	case float64:
		n = v
	case json.Number:
		n, err = v.Float64()
	case string:
		n, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}
