package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/modules/marketdata"
)

// SystemHandlers handles system-wide monitoring endpoints
type SystemHandlers struct {
	log        zerolog.Logger
	startedAt  time.Time
	marketData *marketdata.Service
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, marketData *marketdata.Service) *SystemHandlers {
	return &SystemHandlers{
		log:        log.With().Str("component", "system_handlers").Logger(),
		startedAt:  time.Now(),
		marketData: marketData,
	}
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status        string   `json:"status"`
	UptimeSeconds float64  `json:"uptime_seconds"`
	Goroutines    int      `json:"goroutines"`
	AllocMB       uint64   `json:"alloc_mb"`
	SysMB         uint64   `json:"sys_mb"`
	NumGC         uint32   `json:"num_gc"`
	CachedQuotes  []string `json:"cached_quotes"`
}

// HandleSystemStatus returns process-level runtime statistics
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := SystemStatusResponse{
		Status:        "running",
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
		AllocMB:       m.Alloc / 1024 / 1024,
		SysMB:         m.Sys / 1024 / 1024,
		NumGC:         m.NumGC,
		CachedQuotes:  h.marketData.CachedSymbols(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
