package web

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/opsdesk/loareturn/internal/logging"
	"github.com/opsdesk/loareturn/internal/recon"
	"github.com/opsdesk/loareturn/internal/table"
)

//go:embed static
var staticFiles embed.FS

// errRateLimited feeds the rate-limit middleware through MapError.
var errRateLimited = errors.New("rate limit exceeded")

// multipartMemory is the in-memory threshold for multipart parsing;
// larger uploads spill to temp files.
const multipartMemory = 32 << 20

// runIDPattern matches run directory names: timestamp plus random suffix.
// Validating against it also rejects any path traversal in download URLs.
var runIDPattern = regexp.MustCompile(`^\d{8}_\d{6}_[0-9a-f]{6}$`)

// processResponse is the JSON body for a successful reconciliation.
type processResponse struct {
	Status      string `json:"status"`
	RowCount    int    `json:"row_count"`
	DownloadURL string `json:"download_url"`
	OutputPath  string `json:"output_path"`
}

// handleIndex serves the embedded upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleProcess accepts the two roster uploads, stores them in a
// request-scoped run directory, and executes the reconciliation pipeline
// with that directory as both input home and output target.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return
	}

	salesFile, salesHdr, err := r.FormFile("sales_file")
	if err != nil {
		respondError(w, r, recon.ErrMissingInput, http.StatusBadRequest)
		return
	}
	defer salesFile.Close()

	peopleFile, peopleHdr, err := r.FormFile("people_file")
	if err != nil {
		respondError(w, r, recon.ErrMissingInput, http.StatusBadRequest)
		return
	}
	defer peopleFile.Close()

	runID := newRunID()
	runDir := filepath.Join(s.cfg.Output.Root, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		respondError(w, r, fmt.Errorf("creating run directory: %w", err), http.StatusInternalServerError)
		return
	}

	salesPath, err := saveUpload(runDir, salesHdr.Filename, "sales.xlsx", salesFile)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	peoplePath, err := saveUpload(runDir, peopleHdr.Filename, "people.xlsx", peopleFile)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	logger := logging.FromContext(r.Context())
	logger.Info("reconciliation request",
		"run_id", runID,
		"sales_file", filepath.Base(salesPath),
		"people_file", filepath.Base(peoplePath),
	)

	result, err := recon.Run(r.Context(), recon.Request{
		SalesPath:  salesPath,
		PeoplePath: peoplePath,
		OutputDir:  runDir,
		Projection: recon.ReturnUpdateWithTermination,
	})
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	logger.Info("reconciliation succeeded", "run_id", runID, "rows", result.RowCount)
	writeJSON(w, processResponse{
		Status:      "ok",
		RowCount:    result.RowCount,
		DownloadURL: "/download/" + runID,
		OutputPath:  result.OutputPath,
	})
}

// handleDownload serves a run's output workbook as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if !runIDPattern.MatchString(runID) {
		respondError(w, r, fmt.Errorf("unknown run %q", runID), http.StatusNotFound)
		return
	}

	path := filepath.Join(s.cfg.Output.Root, runID, table.OutputFileName)
	if _, err := os.Stat(path); err != nil {
		respondError(w, r, fmt.Errorf("unknown run %q", runID), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+table.OutputFileName+`"`)
	http.ServeFile(w, r, path)
}

// newRunID builds an isolated run directory name: timestamp plus a short
// random suffix so concurrent requests never collide.
func newRunID() string {
	stamp := time.Now().Format("20060102_150405")
	id := uuid.New()
	return fmt.Sprintf("%s_%x", stamp, id[:3])
}

// saveUpload writes an uploaded file into the run directory under a
// sanitized name, falling back to a fixed name for hostile or empty
// filenames.
func saveUpload(dir, clientName, fallback string, src multipart.File) (string, error) {
	name := sanitizeFilename(clientName)
	if name == "" {
		name = fallback
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	return path, nil
}

// sanitizeFilename strips path components and any character outside a
// conservative allow-list.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" || out == "." || out == ".." {
		return ""
	}
	return out
}
