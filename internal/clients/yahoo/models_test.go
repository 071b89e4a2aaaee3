package yahoo

import "testing"

func TestStatusFromMarketState(t *testing.T) {
	tests := []struct {
		state string
		want  MarketStatus
	}{
		{state: "PRE", want: StatusPreMarket},
		{state: "PREPRE", want: StatusPreMarket},
		{state: "REGULAR", want: StatusOpen},
		{state: "POST", want: StatusAfterHours},
		{state: "POSTPOST", want: StatusAfterHours},
		{state: "CLOSED", want: StatusClosed},
		{state: "", want: StatusClosed},
		{state: "SOMETHING_NEW", want: StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			if got := statusFromMarketState(tt.state); got != tt.want {
				t.Errorf("statusFromMarketState(%q) = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}
