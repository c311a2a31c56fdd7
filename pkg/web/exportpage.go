package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/qazaqnlp/qural/pkg/types"
)

type exportRow struct {
	ID         string
	Category   string
	Difficulty string
	Author     string
	CreatedAt  string
}

type exportPageData struct {
	Username   string
	IsAdmin    bool
	Categories []types.Category
	Rows       []exportRow
	Selected   string
	FileName   string
	Count      int
	Skipped    []string
	Error      string
}

func (s *Server) exportPage(w http.ResponseWriter, r *http.Request, username string) {
	s.renderExport(w, r, username, exportPageData{})
}

// exportGenerate runs the pipeline and shows the outcome, including every
// skipped record, before the annotator downloads the file.
func (s *Server) exportGenerate(w http.ResponseWriter, r *http.Request, username string) {
	category := types.Category(r.FormValue("category"))
	if !category.Valid() {
		s.renderExport(w, r, username, exportPageData{Error: "Pick a category first"})
		return
	}

	result, err := s.exporter.Export(r.Context(), category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", string(category)).Msg("export failed")
		s.renderExport(w, r, username, exportPageData{Error: "Export failed, try again"})
		return
	}

	skipped := make([]string, 0, len(result.Skipped))
	for _, skip := range result.Skipped {
		skipped = append(skipped, fmt.Sprintf("%s: %v", skip.ID, skip.Err))
	}

	s.renderExport(w, r, username, exportPageData{
		Selected: string(category),
		FileName: result.FileName,
		Count:    result.Count,
		Skipped:  skipped,
	})
}

// exportFile streams the delivery file as a download.
func (s *Server) exportFile(w http.ResponseWriter, r *http.Request, username string) {
	category := types.Category(r.URL.Query().Get("category"))
	if !category.Valid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	result, err := s.exporter.Export(r.Context(), category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", string(category)).Msg("export failed")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	_, _ = w.Write(result.Data)
}

func (s *Server) renderExport(w http.ResponseWriter, r *http.Request, username string, data exportPageData) {
	records, err := s.store.ListAnnotations(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("listing annotations failed")
		if data.Error == "" {
			data.Error = "Could not read the record table"
		}
	}

	rows := make([]exportRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, exportRow{
			ID:         record.ID,
			Category:   record.Category,
			Difficulty: record.Difficulty,
			Author:     record.Author,
			CreatedAt:  record.CreatedAt.Format(time.DateTime),
		})
	}

	data.Username = username
	data.IsAdmin = s.isAdmin(username)
	data.Categories = types.Categories()
	data.Rows = rows
	s.render(w, "export.html", data)
}
