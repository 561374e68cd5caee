package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/media"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/service"

	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth
	auth      *service.AuthService
	cards     *service.CardService
	messages  *service.MessageService
	updates   *service.UpdateService
	media     *media.Store
}

func NewHandler(
	tokenAuth *jwtauth.JWTAuth,
	auth *service.AuthService,
	cards *service.CardService,
	messages *service.MessageService,
	updates *service.UpdateService,
	mediaStore *media.Store,
) *Handler {
	return &Handler{
		tokenAuth: tokenAuth,
		auth:      auth,
		cards:     cards,
		messages:  messages,
		updates:   updates,
		media:     mediaStore,
	}
}

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{"error": msg})
}

// handleServiceError maps the service error taxonomy to HTTP. Anything
// unrecognized is logged and reported as a generic 500 so raw store errors
// never reach the caller.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAdminExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Errorf("unhandled service error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// saveUpload runs the optional image field through the upload intake and
// maps its validation failures to 400. Returns false after writing the
// response when the upload is rejected.
func (h *Handler) saveUpload(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	url, err := h.media.Save(r, field)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) || errors.Is(err, media.ErrFileTooLarge) {
			respondError(w, http.StatusBadRequest, err.Error())
			return "", false
		}
		log.Errorf("image upload failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to store image")
		return "", false
	}

	return url, true
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "idcard service is running",
	})
}
