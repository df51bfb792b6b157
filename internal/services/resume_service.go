package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/resume-reviewer/internal/models"
)

const reasonNoResumeContent = "Resume content is required"

// ResumeService runs one submit: validate, build, send, present. It never
// returns an error; every failure is folded into the outcome.
type ResumeService interface {
	AnalyzeFile(ctx context.Context, file *models.SelectedFile, jobDescription string) models.RequestOutcome
	AnalyzeCandidate(ctx context.Context, candidate *models.UploadCandidate, jobDescription string) models.RequestOutcome
	AnalyzeText(ctx context.Context, resumeContent, jobDescription string) models.RequestOutcome
	OptimizeLinkedIn(ctx context.Context, resumeContent string, profile *models.LinkedInProfile) models.Outcome[models.LinkedInResult]
	UploadResume(ctx context.Context, file *models.SelectedFile) models.Outcome[models.UploadAck]
}

type resumeService struct {
	validator FileValidator
	builder   RequestBuilder
	client    AnalysisClient
	presenter ResultPresenter
}

func NewResumeService(
	validator FileValidator,
	builder RequestBuilder,
	client AnalysisClient,
	presenter ResultPresenter,
) ResumeService {
	return &resumeService{
		validator: validator,
		builder:   builder,
		client:    client,
		presenter: presenter,
	}
}

// AnalyzeFile implements ResumeService. An invalid file never reaches the
// builder or the network.
func (s *resumeService) AnalyzeFile(ctx context.Context, file *models.SelectedFile, jobDescription string) models.RequestOutcome {
	candidate, err := s.validator.Validate(file)
	if err != nil {
		log.Printf("⚠️  Rejected resume file: %v\n", err)
		return models.Failed[models.AnalysisResult](err)
	}

	return s.AnalyzeCandidate(ctx, candidate, jobDescription)
}

// AnalyzeCandidate implements ResumeService.
func (s *resumeService) AnalyzeCandidate(ctx context.Context, candidate *models.UploadCandidate, jobDescription string) models.RequestOutcome {
	if candidate == nil {
		return models.Failed[models.AnalysisResult](models.NewValidationError(reasonNoFile))
	}

	log.Printf("📄 Analyzing %s (%d bytes)\n", candidate.FileName, candidate.SizeBytes)

	wire, err := s.builder.BuildAnalyzeMultipart(models.AnalysisRequest{
		Candidate:      candidate,
		JobDescription: jobDescription,
	})
	if err != nil {
		return s.buildFailed(models.ActionAnalyze, err)
	}

	raw, err := s.client.Send(ctx, wire, PathAnalyze, models.ActionAnalyze)
	if err != nil {
		return models.Failed[models.AnalysisResult](err)
	}

	result := s.presenter.Present(raw, models.ScalePercent)
	log.Printf("✅ Analysis received: score %.0f (%s)\n", result.ATSScore, result.Band.Label)

	return models.Succeeded(result)
}

// AnalyzeText implements ResumeService. The text flow reports scores out
// of 10; the result is normalized to 0-100.
func (s *resumeService) AnalyzeText(ctx context.Context, resumeContent, jobDescription string) models.RequestOutcome {
	if strings.TrimSpace(resumeContent) == "" {
		return models.Failed[models.AnalysisResult](models.NewValidationError(reasonNoResumeContent))
	}

	wire, err := s.builder.BuildAnalyzeJSON(resumeContent, jobDescription)
	if err != nil {
		return s.buildFailed(models.ActionAnalyze, err)
	}

	raw, err := s.client.Send(ctx, wire, PathAnalyze, models.ActionAnalyze)
	if err != nil {
		return models.Failed[models.AnalysisResult](err)
	}

	return models.Succeeded(s.presenter.Present(raw, models.ScaleTen))
}

// OptimizeLinkedIn implements ResumeService.
func (s *resumeService) OptimizeLinkedIn(ctx context.Context, resumeContent string, profile *models.LinkedInProfile) models.Outcome[models.LinkedInResult] {
	if strings.TrimSpace(resumeContent) == "" {
		return models.Failed[models.LinkedInResult](models.NewValidationError(reasonNoResumeContent))
	}

	wire, err := s.builder.BuildLinkedInJSON(resumeContent, profile)
	if err != nil {
		return models.Failed[models.LinkedInResult](s.wrapBuildError(models.ActionLinkedIn, err))
	}

	raw, err := s.client.Send(ctx, wire, PathLinkedIn, models.ActionLinkedIn)
	if err != nil {
		return models.Failed[models.LinkedInResult](err)
	}

	return models.Succeeded(s.presenter.PresentLinkedIn(raw))
}

// UploadResume implements ResumeService. The acknowledgement is returned
// as is and feeds no other flow.
func (s *resumeService) UploadResume(ctx context.Context, file *models.SelectedFile) models.Outcome[models.UploadAck] {
	candidate, err := s.validator.Validate(file)
	if err != nil {
		return models.Failed[models.UploadAck](err)
	}

	wire, err := s.builder.BuildUploadMultipart(candidate)
	if err != nil {
		return models.Failed[models.UploadAck](s.wrapBuildError(models.ActionUpload, err))
	}

	raw, err := s.client.Send(ctx, wire, PathUploadResume, models.ActionUpload)
	if err != nil {
		return models.Failed[models.UploadAck](err)
	}

	return models.Succeeded(s.presenter.PresentUpload(raw))
}

func (s *resumeService) buildFailed(action models.Action, err error) models.RequestOutcome {
	return models.Failed[models.AnalysisResult](s.wrapBuildError(action, err))
}

// wrapBuildError reports an encoding failure with the same generic
// message a network failure would get.
func (s *resumeService) wrapBuildError(action models.Action, err error) error {
	log.Printf("❌ Failed to build %s request: %v\n", action, err)
	return &models.TransportError{Action: action, Cause: fmt.Errorf("build request: %w", err)}
}
