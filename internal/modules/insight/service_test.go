package insight

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
	"github.com/quantdesk/quantum-pricer/internal/modules/quantum"
)

type stubGenerator struct {
	available bool
	text      string
	err       error
	calls     int
}

func (g *stubGenerator) Available() bool {
	return g.available
}

func (g *stubGenerator) GenerateContent(prompt string) (string, error) {
	g.calls++
	return g.text, g.err
}

func sampleRequest() Request {
	return Request{
		Params: pricing.HestonParams{
			S0:         105,
			K:          100,
			V0:         0.04,
			OptionType: pricing.Call,
		},
		Result: pricing.SimulationResult{
			Greeks: map[string]float64{
				"delta": 0.62,
				"gamma": 0.0185,
				"vega":  38.12,
			},
		},
		Quantum: quantum.ResourceProfile{
			TheoreticalSpeedup: 126.6,
			EstimatedQubits:    145,
			TGateCount:         44587600,
		},
		Ticker: "aapl",
	}
}

func TestGenerate_TemplateFallbackWhenUnavailable(t *testing.T) {
	gen := &stubGenerator{available: false}
	svc := NewService(gen, zerolog.Nop())

	resp := svc.Generate(sampleRequest())

	assert.Equal(t, 0, gen.calls, "unavailable generator must not be called")
	assert.Equal(t,
		"AAPL CALL 105.00 | 5.00% ITM | D 0.62 G 0.0185 V 38.12 | IV 20.0% | Q-SPD 126.6x",
		resp.Insight)
}

func TestGenerate_TemplateFallbackOnError(t *testing.T) {
	gen := &stubGenerator{available: true, err: fmt.Errorf("quota exceeded")}
	svc := NewService(gen, zerolog.Nop())

	resp := svc.Generate(sampleRequest())

	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, resp.Insight, "AAPL CALL 105.00")
}

func TestGenerate_UsesAIWhenAvailable(t *testing.T) {
	gen := &stubGenerator{available: true, text: "  AAPL CALL | FAST |\n"}
	svc := NewService(gen, zerolog.Nop())

	resp := svc.Generate(sampleRequest())

	assert.Equal(t, "AAPL CALL | FAST |", resp.Insight)
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := NewService(&stubGenerator{}, zerolog.Nop())

	first := svc.Generate(sampleRequest())
	second := svc.Generate(sampleRequest())

	assert.Equal(t, first, second)
}

func TestMoneyness(t *testing.T) {
	tests := []struct {
		name    string
		s0, k   float64
		kind    pricing.OptionKind
		wantPct float64
		wantDir string
	}{
		{name: "itm call", s0: 110, k: 100, kind: pricing.Call, wantPct: 10, wantDir: "ITM"},
		{name: "otm call", s0: 90, k: 100, kind: pricing.Call, wantPct: 10, wantDir: "OTM"},
		{name: "itm put", s0: 90, k: 100, kind: pricing.Put, wantPct: 10, wantDir: "ITM"},
		{name: "otm put", s0: 110, k: 100, kind: pricing.Put, wantPct: 10, wantDir: "OTM"},
		{name: "atm call counts as itm", s0: 100, k: 100, kind: pricing.Call, wantPct: 0, wantDir: "ITM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, dir := moneyness(pricing.HestonParams{S0: tt.s0, K: tt.k, OptionType: tt.kind})
			assert.InDelta(t, tt.wantPct, pct, 1e-9)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestBuildPrompt_ContainsConstraints(t *testing.T) {
	prompt := buildPrompt(sampleRequest())

	assert.True(t, strings.Contains(prompt, "STRICTLY ONE LINE"))
	assert.True(t, strings.Contains(prompt, "Ticker: aapl"))
	assert.True(t, strings.Contains(prompt, "44.6M"))
}
