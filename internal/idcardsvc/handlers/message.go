package handlers

import (
	"net/http"
	"strconv"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/media"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/service"

	"github.com/go-chi/chi"
)

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.MessageInput{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("message"),
	}

	if err := input.Validate(); err != nil {
		h.handleServiceError(w, err)
		return
	}

	imageURL, ok := h.saveUpload(w, r, "image")
	if !ok {
		return
	}

	if _, err := h.messages.Post(r.Context(), input, imageURL); err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "message received successfully",
	})
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "message deleted successfully",
	})
}
