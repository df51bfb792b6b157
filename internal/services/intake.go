package services

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// FileIntake turns a browser upload or a local path into a SelectedFile.
// It does not validate; files larger than readLimit are described but
// their bytes are not read.
type FileIntake interface {
	FromUpload(file *multipart.FileHeader) (*models.SelectedFile, error)
	FromPath(path string) (*models.SelectedFile, error)
}

type fileIntake struct {
	readLimit int64
}

func NewFileIntake(readLimit int64) FileIntake {
	if readLimit <= 0 {
		readLimit = models.DefaultMaxFileSize
	}

	return &fileIntake{readLimit: readLimit}
}

// FromUpload implements FileIntake. The declared type is whatever the
// browser put on the part.
func (s *fileIntake) FromUpload(file *multipart.FileHeader) (*models.SelectedFile, error) {
	selected := &models.SelectedFile{
		FileName: filepath.Base(file.Filename),
		MimeType: strings.TrimSpace(file.Header.Get("Content-Type")),
		Size:     file.Size,
	}

	if file.Size > s.readLimit {
		return selected, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	payload, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	selected.Payload = payload
	selected.Size = int64(len(payload))

	return selected, nil
}

// FromPath implements FileIntake. Local files carry no declared type, so
// it is inferred from the extension the way a browser would.
func (s *fileIntake) FromPath(path string) (*models.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	selected := &models.SelectedFile{
		FileName: filepath.Base(path),
		MimeType: mimeTypeForName(path),
		Size:     info.Size(),
	}

	if info.Size() > s.readLimit {
		return selected, nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	selected.Payload = payload
	selected.Size = int64(len(payload))

	return selected, nil
}

func mimeTypeForName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return models.MimePDF
	case ".docx":
		return models.MimeDOCX
	}

	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}

	return "application/octet-stream"
}
