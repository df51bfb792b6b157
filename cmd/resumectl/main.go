package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"alfredoptarigan/resume-reviewer/internal/config"
	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
)

const (
	exitOK         = 0
	exitTransport  = 1
	exitValidation = 2
)

const usage = `usage: resumectl <command> [flags]

commands:
  analyze       -file resume.pdf [-jd job.txt]
  analyze-text  (-file resume.docx | -text resume.txt) [-jd job.txt]
  linkedin      (-file resume.pdf | -text resume.txt) [-profile profile.yaml]
  upload        -file resume.pdf

common flags:
  -json         print the result as JSON
`

type cli struct {
	intake    services.FileIntake
	validator services.FileValidator
	extractor services.TextExtractor
	service   services.ResumeService
	stdout    io.Writer
	stderr    io.Writer
}

func newCLI(cfg *config.Config, stdout, stderr io.Writer) *cli {
	validator := services.NewFileValidator(cfg.Upload.MaxFileSize)

	return &cli{
		intake:    services.NewFileIntake(cfg.Upload.MaxFileSize),
		validator: validator,
		extractor: services.NewTextExtractor(),
		service: services.NewResumeService(
			validator,
			services.NewRequestBuilder(),
			services.NewAnalysisClient(cfg.Analyzer.BaseURL, cfg.Analyzer.Timeout),
			services.NewResultPresenter(),
		),
		stdout: stdout,
		stderr: stderr,
	}
}

func main() {
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(exitValidation)
	}

	cfg := config.Load()
	app := newCLI(cfg, os.Stdout, os.Stderr)

	os.Exit(app.run(context.Background(), os.Args[1], os.Args[2:]))
}

func (c *cli) run(ctx context.Context, command string, args []string) int {
	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.SetOutput(c.stderr)

	filePath := flags.String("file", "", "resume file (PDF or DOCX)")
	textPath := flags.String("text", "", "plain text resume")
	jdPath := flags.String("jd", "", "job description text file")
	profilePath := flags.String("profile", "", "current LinkedIn profile (YAML)")
	asJSON := flags.Bool("json", false, "print JSON")

	if err := flags.Parse(args); err != nil {
		return exitValidation
	}

	jobDescription, err := readOptionalText(*jdPath)
	if err != nil {
		return c.fail(exitValidation, err)
	}

	switch command {
	case "analyze":
		file, err := c.selectFile(*filePath)
		if err != nil {
			return c.fail(exitValidation, err)
		}
		return report(c, c.service.AnalyzeFile(ctx, file, jobDescription), *asJSON, renderAnalysis)

	case "analyze-text":
		resumeText, code, err := c.resumeText(*filePath, *textPath)
		if err != nil {
			return c.fail(code, err)
		}
		return report(c, c.service.AnalyzeText(ctx, resumeText, jobDescription), *asJSON, renderAnalysis)

	case "linkedin":
		resumeText, code, err := c.resumeText(*filePath, *textPath)
		if err != nil {
			return c.fail(code, err)
		}
		profile, err := loadProfile(*profilePath)
		if err != nil {
			return c.fail(exitValidation, err)
		}
		return report(c, c.service.OptimizeLinkedIn(ctx, resumeText, profile), *asJSON, renderLinkedIn)

	case "upload":
		file, err := c.selectFile(*filePath)
		if err != nil {
			return c.fail(exitValidation, err)
		}
		return report(c, c.service.UploadResume(ctx, file), *asJSON, renderUpload)

	default:
		fmt.Fprint(c.stderr, usage)
		return exitValidation
	}
}

// selectFile returns nil for an empty path so the validator reports that
// nothing was selected.
func (c *cli) selectFile(path string) (*models.SelectedFile, error) {
	if path == "" {
		return nil, nil
	}
	return c.intake.FromPath(path)
}

// resumeText reads a plain text resume, or extracts one from a validated
// PDF/DOCX file.
func (c *cli) resumeText(filePath, textPath string) (string, int, error) {
	if textPath != "" {
		text, err := readOptionalText(textPath)
		if err != nil {
			return "", exitValidation, err
		}
		return text, exitOK, nil
	}

	file, err := c.selectFile(filePath)
	if err != nil {
		return "", exitValidation, err
	}

	candidate, err := c.validator.Validate(file)
	if err != nil {
		return "", exitValidation, err
	}

	log.Printf("📄 Extracting text from %s...\n", candidate.FileName)
	text, err := c.extractor.ExtractText(candidate)
	if err != nil {
		return "", exitValidation, fmt.Errorf("failed to extract text: %w", err)
	}

	return text, exitOK, nil
}

func (c *cli) fail(code int, err error) int {
	fmt.Fprintf(c.stderr, "error: %v\n", err)
	return code
}

func readOptionalText(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

func loadProfile(path string) (*models.LinkedInProfile, error) {
	profile := &models.LinkedInProfile{}
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return profile, nil
}
