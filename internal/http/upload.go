package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mauv0809/fighter-franchise/internal/api"
)

const maxUploadSize = 10 << 20

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadImageHandler stores the multipart "file" field under a fresh name and
// returns that name.
func (s *Server) UploadImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := api.Category(chi.URLParam(r, "category"))
		if !category.Valid() {
			writeJSON(w, http.StatusBadRequest, uploadResponse{Error: fmt.Sprintf("unknown category %q", category)})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, uploadResponse{Error: "missing file"})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedImageExt[ext] {
			writeJSON(w, http.StatusBadRequest, uploadResponse{Error: fmt.Sprintf("unsupported file type %q", ext)})
			return
		}

		dir := filepath.Join(s.Cfg.UploadDir, string(category))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Failed to create upload dir", "dir", dir, "error", err)
			writeJSON(w, http.StatusInternalServerError, uploadResponse{Error: "could not store file"})
			return
		}

		name := uuid.NewString() + ext
		out, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			log.Error("Failed to create upload", "error", err)
			writeJSON(w, http.StatusInternalServerError, uploadResponse{Error: "could not store file"})
			return
		}
		defer out.Close()
		if _, err := io.Copy(out, file); err != nil {
			log.Error("Failed to write upload", "error", err)
			writeJSON(w, http.StatusInternalServerError, uploadResponse{Error: "could not store file"})
			return
		}

		log.Info("Image uploaded", "category", category, "file", name, "original", header.Filename)
		writeJSON(w, http.StatusOK, uploadResponse{Success: true, FileName: name})
	}
}

// ServeImageHandler serves a previously uploaded image.
func (s *Server) ServeImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := api.Category(chi.URLParam(r, "category"))
		file := chi.URLParam(r, "file")
		if !category.Valid() || file != filepath.Base(file) || strings.HasPrefix(file, ".") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.Cfg.UploadDir, string(category), file))
	}
}
