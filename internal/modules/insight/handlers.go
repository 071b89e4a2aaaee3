package insight

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Handler handles insight HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new insight handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "insight").Logger(),
	}
}

// HandleGenerate handles POST /market-insight - one-line narrative summary
// of a pricing run
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp := h.service.Generate(req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
