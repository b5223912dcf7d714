package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cafefinder/internal/domain"
	"cafefinder/internal/service"

	"github.com/gorilla/mux"
)

// noFilterSentinel is the category value the client sends when no category
// filter is selected. It is resolved here, never inside the store.
const noFilterSentinel = "All"

type Handler struct {
	Cafes      service.CafeServiceInterface
	Popularity service.PopularityStore
	QR         service.QRGenerator
}

func NewHandler(cafeSvc service.CafeServiceInterface, popularity service.PopularityStore, qr service.QRGenerator) *Handler {
	return &Handler{
		Cafes:      cafeSvc,
		Popularity: popularity,
		QR:         qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// "/api/cafes/top" must be registered before "/api/cafes/{id}".
	r.HandleFunc("/api/cafes", h.getCafes).Methods("GET")
	r.HandleFunc("/api/cafes/top", h.getTopCafes).Methods("GET")
	r.HandleFunc("/api/cafes/{id}", h.getCafe).Methods("GET")
	r.HandleFunc("/api/cafes/{id}/favourite", h.toggleFavourite).Methods("POST")
	r.HandleFunc("/api/cafes/{id}/qrcode", h.getCafeQRCode).Methods("GET")
	r.HandleFunc("/api/favourites", h.getFavourites).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "cafe-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getCafes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var cafes []domain.CafeView
	switch {
	case query != "":
		cafes = h.Cafes.Search(query)
	case category != "" && !strings.EqualFold(category, noFilterSentinel):
		cafes = h.Cafes.FilterByCategory(category)
	default:
		cafes = h.Cafes.List()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cafes)
}

func (h *Handler) getCafe(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cafe, err := h.Cafes.Get(id)
	if err != nil {
		http.Error(w, "Cafe not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cafe)
}

func (h *Handler) toggleFavourite(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	favourited := h.Cafes.Toggle(r.Context(), id)

	response := map[string]interface{}{
		"id":         id,
		"favourited": favourited,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getFavourites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Cafes.Favourites())
}

func (h *Handler) getTopCafes(w http.ResponseWriter, r *http.Request) {
	if h.Popularity == nil {
		http.Error(w, "Analytics not configured", http.StatusServiceUnavailable)
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	top, err := h.Popularity.Top(r.Context(), int64(limit))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(top)
}

func (h *Handler) getCafeQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Cafes.Get(id); err != nil {
		http.Error(w, "Cafe not found", http.StatusNotFound)
		return
	}

	qrCode, err := h.QR.Generate(id)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
