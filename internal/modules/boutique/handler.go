package boutique

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes boutique HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/boutiques", func(r chi.Router) {
		r.Post("/", h.createBoutique)  // POST /api/v1/boutiques
		r.Get("/", h.listBoutiques)    // GET  /api/v1/boutiques
		r.Get("/{id}", h.getBoutique)  // GET  /api/v1/boutiques/{id}
	})
}

func (h *Handler) createBoutique(w http.ResponseWriter, r *http.Request) {
	var req CreateBoutiqueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	b, err := h.service.CreateBoutique(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, b)
}

func (h *Handler) getBoutique(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetBoutique(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) listBoutiques(w http.ResponseWriter, r *http.Request) {
	boutiques, err := h.service.ListBoutiques(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, boutiques)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
