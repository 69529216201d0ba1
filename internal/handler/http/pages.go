// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

//go:embed web
var webFS embed.FS

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, webFS, "web/index.html")
}

// revealPage serves the reveal page for any id; the page itself asks the API
// whether the gift exists.
func (h *Handler) revealPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, webFS, "web/gift.html")
}

func (h *Handler) staticFiles(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if !isPlainFileName(name) {
		notFound(w, r)
		return
	}

	http.ServeFileFS(w, r, webFS, path.Join("web/static", name))
}

func (h *Handler) uploadedFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if !isPlainFileName(name) {
		notFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.files.UploadsDir, name))
}

// isPlainFileName rejects empty names, dot entries and anything with a path
// separator.
func isPlainFileName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
