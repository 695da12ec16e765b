package http

import (
	"io/fs"
	"net/http"
)

// ServeIndex serves index.html from the embedded frontend
func ServeIndex(frontend fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(frontend, "index.html")
		if err != nil {
			http.Error(w, "Dashboard page not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}

// StaticFiles serves the frontend's static directory under prefix
func StaticFiles(frontend fs.FS, prefix string) http.Handler {
	static, err := fs.Sub(frontend, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(static)))
}
