package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/templui/fittrack/internal/storage"
)

// ExportHandler serves export files kept on local storage. S3 exports are
// downloaded through presigned URLs and never reach this handler.
type ExportHandler struct {
	files *storage.LocalStorage
}

func NewExportHandler(files *storage.LocalStorage) *ExportHandler {
	return &ExportHandler{
		files: files,
	}
}

func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")

	file, err := h.files.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidPath) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to open export", "error", err, "path", name)
		http.Error(w, "Failed to open export", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(name)+`"`)
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
