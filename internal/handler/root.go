package handler

import "net/http"

type rootHandler struct{}

func NewRootHandler() *rootHandler {
	return &rootHandler{}
}

func (h *rootHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (h *rootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}
