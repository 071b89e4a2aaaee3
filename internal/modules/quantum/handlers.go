package quantum

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
)

// Handler handles quantum resource estimation HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new quantum handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "quantum").Logger(),
	}
}

// HandleEstimate handles POST /quantum-metrics - fault-tolerant resource
// estimate for the equivalent amplitude-estimation run
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var params pricing.HestonParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile := Estimate(params)

	if profile.CodeDistance == InfeasibleCodeDistance {
		h.log.Warn().
			Str("hardware", profile.Hardware).
			Msg("Hardware below fault-tolerance threshold")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
