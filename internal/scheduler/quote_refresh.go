package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/modules/marketdata"
)

// QuoteRefreshJob keeps the market data cache warm for the configured watch
// list so quote requests from the dashboard are served without an upstream
// round trip.
type QuoteRefreshJob struct {
	service *marketdata.Service
	symbols []string
	log     zerolog.Logger
}

// NewQuoteRefreshJob creates a quote refresh job for the given symbols.
func NewQuoteRefreshJob(service *marketdata.Service, symbols []string, log zerolog.Logger) *QuoteRefreshJob {
	return &QuoteRefreshJob{
		service: service,
		symbols: symbols,
		log:     log.With().Str("job", "quote_refresh").Logger(),
	}
}

// Name returns the job name
func (j *QuoteRefreshJob) Name() string {
	return "quote_refresh"
}

// Run refreshes quotes for all watched symbols
func (j *QuoteRefreshJob) Run() error {
	if len(j.symbols) == 0 {
		return nil
	}

	j.service.RefreshAll(j.symbols)
	j.log.Debug().Int("symbols", len(j.symbols)).Msg("Quote cache refreshed")
	return nil
}
