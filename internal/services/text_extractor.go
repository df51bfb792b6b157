package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// TextExtractor pulls plain text out of a validated resume so it can be
// sent through the text based flows.
type TextExtractor interface {
	ExtractText(candidate *models.UploadCandidate) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor.
func (t *textExtractor) ExtractText(candidate *models.UploadCandidate) (string, error) {
	if candidate == nil || len(candidate.Payload) == 0 {
		return "", fmt.Errorf("no file content to extract")
	}

	var (
		text string
		err  error
	)

	switch candidate.MimeType {
	case models.MimePDF:
		text, err = extractPDFText(candidate.Payload)
	case models.MimeDOCX:
		text, err = extractDocxText(candidate.Payload)
	default:
		return "", fmt.Errorf("unsupported file type: %s", candidate.MimeType)
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text content found in %s", candidate.FileName)
	}

	return text, nil
}

func extractPDFText(payload []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(payload []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	return documentXMLText(doc.Editable().GetContent())
}

// documentXMLText returns the character data of a word/document.xml body,
// one line per paragraph.
func documentXMLText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var textBuilder strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX body: %w", err)
		}

		switch el := token.(type) {
		case xml.CharData:
			textBuilder.Write(el)
		case xml.StartElement:
			if el.Name.Local == "tab" {
				textBuilder.WriteString("\t")
			}
		case xml.EndElement:
			if el.Name.Local == "p" || el.Name.Local == "br" {
				textBuilder.WriteString("\n")
			}
		}
	}

	return textBuilder.String(), nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
