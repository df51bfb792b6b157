package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// report prints an outcome and returns the process exit code for it.
func report[T any](c *cli, outcome models.Outcome[T], asJSON bool, render func(io.Writer, *T)) int {
	switch outcome.Kind {
	case models.OutcomeValidationFailure:
		fmt.Fprintf(c.stderr, "error: %s\n", outcome.Message)
		return exitValidation
	case models.OutcomeTransportFailure:
		fmt.Fprintf(c.stderr, "error: %s\n", outcome.Message)
		return exitTransport
	}

	if asJSON {
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(outcome.Value); err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			return exitTransport
		}
		return exitOK
	}

	render(c.stdout, outcome.Value)
	return exitOK
}

func renderAnalysis(w io.Writer, result *models.AnalysisResult) {
	fmt.Fprintf(w, "ATS Compatibility Score: %.0f%% (%s)\n", result.ATSScore, result.Band.Label)
	if result.HasScore && result.ReportedScale == models.ScaleTen {
		fmt.Fprintf(w, "  reported as %g/10\n", result.ReportedScore)
	}

	writeList(w, "Missing Keywords", result.MissingKeywords)
	writeList(w, "Improvement Suggestions", result.Suggestions)
	writeList(w, "Strengths", result.Strengths)
	writeList(w, "Key Recommendations", result.KeyRecommendations)
	writeList(w, "Areas for Improvement", result.Improvements)

	if result.RawAnalysis != "" {
		fmt.Fprintf(w, "\nDetailed Analysis\n%s\n", result.RawAnalysis)
	}
}

func renderLinkedIn(w io.Writer, result *models.LinkedInResult) {
	if result.Headline != "" {
		fmt.Fprintf(w, "Headline\n%s\n", result.Headline)
	}
	if result.Summary != "" {
		fmt.Fprintf(w, "\nSummary\n%s\n", result.Summary)
	}
	if len(result.Skills) > 0 {
		fmt.Fprintf(w, "\nSkills\n%s\n", strings.Join(result.Skills, ", "))
	}
	writeList(w, "Recommendations", result.Recommendations)
}

func renderUpload(w io.Writer, ack *models.UploadAck) {
	fmt.Fprintf(w, "Uploaded %s", ack.FileName)
	if ack.Status != "" {
		fmt.Fprintf(w, " (%s)", ack.Status)
	}
	fmt.Fprintln(w)
	if ack.Message != "" {
		fmt.Fprintln(w, ack.Message)
	}
}

// writeList omits empty sections entirely.
func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
