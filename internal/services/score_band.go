package services

import "alfredoptarigan/resume-reviewer/internal/models"

// BandFor places a 0-100 score into a band. It is total: anything that
// fails every threshold, NaN included, is poor.
func BandFor(score float64) models.ScoreBand {
	switch {
	case score >= 80:
		return models.ScoreBand{Category: models.BandExcellent, Label: "Excellent!"}
	case score >= 60:
		return models.ScoreBand{Category: models.BandGood, Label: "Good"}
	case score >= 40:
		return models.ScoreBand{Category: models.BandAverage, Label: "Needs Improvement"}
	default:
		return models.ScoreBand{Category: models.BandPoor, Label: "Poor"}
	}
}
