package yahoo

import "time"

// MarketStatus is the session state of the venue a quote came from.
type MarketStatus string

const (
	StatusPreMarket  MarketStatus = "PRE-MARKET"
	StatusOpen       MarketStatus = "OPEN"
	StatusAfterHours MarketStatus = "AFTER-HOURS"
	StatusClosed     MarketStatus = "CLOSED"
)

// Quote is a delayed market quote for one ticker.
type Quote struct {
	Symbol        string       `json:"symbol"`
	Price         float64      `json:"price"`
	Status        MarketStatus `json:"status"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
	Source        string       `json:"source"`
	FetchedAt     time.Time    `json:"fetchedAt"`
}

// statusFromMarketState maps Yahoo's marketState values onto session labels.
func statusFromMarketState(state string) MarketStatus {
	switch state {
	case "PRE", "PREPRE":
		return StatusPreMarket
	case "REGULAR":
		return StatusOpen
	case "POST", "POSTPOST":
		return StatusAfterHours
	default:
		return StatusClosed
	}
}
