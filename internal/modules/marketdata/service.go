package marketdata

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/clients/yahoo"
)

// QuoteProvider fetches live quotes. Satisfied by the Yahoo client; tests
// substitute a stub.
type QuoteProvider interface {
	GetQuote(symbol string, maxRetries int) (*yahoo.Quote, error)
}

// Service serves market quotes through an in-memory cache so that chart
// polling does not hammer the upstream API. Quotes older than the TTL are
// re-fetched on demand; the scheduler refreshes watched symbols in the
// background.
type Service struct {
	provider QuoteProvider
	ttl      time.Duration
	log      zerolog.Logger

	mu    sync.RWMutex
	cache map[string]*yahoo.Quote
}

// NewService creates a market data service.
func NewService(provider QuoteProvider, ttl time.Duration, log zerolog.Logger) *Service {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		provider: provider,
		ttl:      ttl,
		log:      log.With().Str("service", "marketdata").Logger(),
		cache:    make(map[string]*yahoo.Quote),
	}
}

// GetQuote returns the cached quote for a symbol, fetching from the
// provider when the cache is cold or stale.
func (s *Service) GetQuote(symbol string) (*yahoo.Quote, error) {
	s.mu.RLock()
	cached, ok := s.cache[symbol]
	s.mu.RUnlock()

	if ok && time.Since(cached.FetchedAt) < s.ttl {
		return cached, nil
	}

	quote, err := s.provider.GetQuote(symbol, 3)
	if err != nil {
		// A stale quote beats no quote when the upstream is flaky.
		if ok {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("Refresh failed, serving stale quote")
			return cached, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.cache[symbol] = quote
	s.mu.Unlock()

	return quote, nil
}

// RefreshAll re-fetches quotes for the given symbols, updating the cache
// for each one that succeeds.
func (s *Service) RefreshAll(symbols []string) {
	for _, symbol := range symbols {
		quote, err := s.provider.GetQuote(symbol, 1)
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("Background quote refresh failed")
			continue
		}

		s.mu.Lock()
		s.cache[symbol] = quote
		s.mu.Unlock()
	}
}

// CachedSymbols returns the symbols currently held in the cache.
func (s *Service) CachedSymbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	symbols := make([]string, 0, len(s.cache))
	for symbol := range s.cache {
		symbols = append(symbols, symbol)
	}
	return symbols
}
