package server

import (
	"bytes"
	"net/http"

	"github.com/JuhQ/e2e-playwright/internal/model"
	"go.uber.org/zap"
)

// SubmitHandler echoes the posted form fields back on the confirmation page.
func (s *Server) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	submission := model.FromValues(r.PostForm)

	var buf bytes.Buffer
	if err := s.renderer.Confirmation(&buf, submission); err != nil {
		s.log.Error("Error rendering confirmation page", zap.Error(err))
		http.Error(w, "Error rendering confirmation page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Debug("Error writing response", zap.Error(err))
	}
}
