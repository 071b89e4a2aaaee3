package marketdata

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles market data HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new market data handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "marketdata").Logger(),
	}
}

// HandleGetQuote handles GET /market-data/{ticker} - current quote for one
// ticker. Lookup failures degrade to an error payload rather than a 5xx so
// the dashboard keeps rendering.
func (h *Handler) HandleGetQuote(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "ticker")))
	if ticker == "" {
		http.Error(w, "Ticker is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	quote, err := h.service.GetQuote(ticker)
	if err != nil {
		h.log.Warn().Err(err).Str("ticker", ticker).Msg("Quote lookup failed")
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	json.NewEncoder(w).Encode(quote)
}
