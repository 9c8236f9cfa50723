package httpadapter

import "net/http"

type statusMessage struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, statusMessage{Message: "Keyword Search API is running"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, statusMessage{Status: "healthy", Message: "Keyword service is running"})
}
