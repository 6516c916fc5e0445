package reservation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes reservation HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reservations", func(r chi.Router) {
		r.Post("/", h.createReservation)                        // POST   /api/v1/reservations
		r.Get("/{id}", h.getReservation)                        // GET    /api/v1/reservations/{id}
		r.Get("/{id}/history", h.getHistory)                    // GET    /api/v1/reservations/{id}/history
		r.Post("/{id}/confirm", h.confirmReservation)           // POST   /api/v1/reservations/{id}/confirm
		r.Post("/{id}/cancel", h.cancelReservation)             // POST   /api/v1/reservations/{id}/cancel
		r.Get("/boutique/{boutique_id}", h.listBoutique)        // GET    /api/v1/reservations/boutique/{boutique_id}?status=PENDING
		r.Get("/client/{client_id}", h.listClient)              // GET    /api/v1/reservations/client/{client_id}
	})
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := h.service.CreateReservation(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, res)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GetReservation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.GetHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, history)
}

func (h *Handler) confirmReservation(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := h.service.ConfirmReservation(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := h.service.CancelReservation(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) listBoutique(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.ListBoutiqueReservations(r.Context(),
		chi.URLParam(r, "boutique_id"), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, reservations)
}

func (h *Handler) listClient(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.ListClientReservations(r.Context(), chi.URLParam(r, "client_id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, reservations)
}

// respondError maps the workflow error taxonomy onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, ErrInsufficientStock):
		code = http.StatusConflict
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInconsistentAmounts),
		errors.Is(err, ErrInvalidStatus):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
