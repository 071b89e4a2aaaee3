package greeks

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
)

// defaultTermSteps is the number of maturity slices when the caller does
// not specify one.
const defaultTermSteps = 20

// Handler handles greeks HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new greeks handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "greeks").Logger(),
	}
}

// HandleTermStructure handles POST /greeks-term-structure - greeks across
// maturities from T down to near-expiry
func (h *Handler) HandleTermStructure(w http.ResponseWriter, r *http.Request) {
	var params pricing.HestonParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	steps := defaultTermSteps
	if stepsStr := r.URL.Query().Get("steps"); stepsStr != "" {
		parsed, err := strconv.Atoi(stepsStr)
		if err != nil || parsed < 1 || parsed > 1000 {
			http.Error(w, "Invalid steps. Must be 1-1000", http.StatusBadRequest)
			return
		}
		steps = parsed
	}

	points := TermStructure(params, steps)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}
