package handlers

import (
	"net/http"
	"strconv"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/media"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/service"

	"github.com/go-chi/chi"
)

func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := service.CardInput{
		Name:       r.FormValue("name"),
		EmployeeID: r.FormValue("employeeId"),
		Position:   r.FormValue("position"),
		Gender:     r.FormValue("gender"),
		Phone:      r.FormValue("phone"),
		Email:      r.FormValue("email"),
		Company:    r.FormValue("company"),
		Skills:     r.FormValue("skills"),
	}

	// Validate before touching the blob store so a rejected request never
	// leaves an orphaned upload behind.
	if err := input.Validate(); err != nil {
		h.handleServiceError(w, err)
		return
	}

	photoURL, ok := h.saveUpload(w, r, "photo")
	if !ok {
		return
	}

	card, err := h.cards.Add(r.Context(), input, photoURL)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "card added successfully",
		"card":     card,
		"photoUrl": card.Photo,
	})
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

func (h *Handler) SearchCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := h.cards.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "card deleted successfully",
	})
}

func (h *Handler) CountCards(w http.ResponseWriter, r *http.Request) {
	total, err := h.cards.Count(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"total": total})
}
