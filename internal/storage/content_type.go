package storage

import (
	"mime"
	"path/filepath"
)

func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".json":
		return "application/json"
	}
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
