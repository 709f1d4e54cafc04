package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/Akr1040317/CollegeApp-sub000/internal/auth"
	"github.com/Akr1040317/CollegeApp-sub000/internal/files"
)

// handleUploadFile accepts a multipart form with a "file" part and a
// "file_type" field (transcript, essay, recommendation, ...). Files land
// under the session user's own directory.
func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(files.MaxSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part")
		return
	}
	defer file.Close()

	fileType := strings.TrimSpace(r.FormValue("file_type"))
	if fileType == "" {
		fileType = "document"
	}

	rel, size, err := s.Files.Save(session.UserID.String(), fileType, header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"path": rel, "size": size, "file_type": fileType,
	})
}

// handleDeleteFile removes an uploaded file by its ?path= value. Only
// paths under the session user's directory are accepted.
func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rel := r.URL.Query().Get("path")
	if rel == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	if !strings.HasPrefix(rel, session.UserID.String()+"/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := s.Files.Delete(rel); err != nil {
		log.Printf("file delete failed for %s: %v", rel, err)
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
