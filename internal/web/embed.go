// Package web renders the upload page from an embedded template.
package web

import (
	"embed"
	"html/template"
	"io"

	"alfredoptarigan/resume-reviewer/internal/models"
)

//go:embed templates/index.html
var templateFiles embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

// IndexView is the data the upload page renders.
type IndexView struct {
	Workspace   models.WorkspaceSnapshot
	MaxFileSize string
}

// RenderIndex writes the upload page for one workspace.
func RenderIndex(w io.Writer, view IndexView) error {
	return indexTemplate.ExecuteTemplate(w, "index.html", view)
}
