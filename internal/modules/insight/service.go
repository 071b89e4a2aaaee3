package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
	"github.com/quantdesk/quantum-pricer/internal/modules/quantum"
)

// Generator produces narrative text from a prompt. Satisfied by the Gemini
// client; tests substitute a stub.
type Generator interface {
	Available() bool
	GenerateContent(prompt string) (string, error)
}

// Request bundles everything the insight line summarizes.
type Request struct {
	Params  pricing.HestonParams     `json:"params"`
	Result  pricing.SimulationResult `json:"result"`
	Quantum quantum.ResourceProfile  `json:"quantum"`
	Ticker  string                   `json:"ticker"`
}

// Response carries the generated one-liner.
type Response struct {
	Insight string `json:"insight"`
}

// Service generates a Bloomberg-style shorthand summary of a pricing run.
// The AI path is optional; the templated fallback always succeeds, so the
// endpoint never errors.
type Service struct {
	generator Generator
	log       zerolog.Logger
}

// NewService creates an insight service.
func NewService(generator Generator, log zerolog.Logger) *Service {
	return &Service{
		generator: generator,
		log:       log.With().Str("service", "insight").Logger(),
	}
}

// Generate produces the insight line, preferring the AI path when it is
// configured and falling back to the deterministic template otherwise.
func (s *Service) Generate(req Request) Response {
	if s.generator != nil && s.generator.Available() {
		text, err := s.generator.GenerateContent(buildPrompt(req))
		if err == nil {
			return Response{Insight: strings.TrimSpace(text)}
		}
		s.log.Warn().Err(err).Msg("AI insight failed, using template fallback")
	}

	return Response{Insight: templateInsight(req)}
}

// moneyness describes how far in or out of the money the option sits.
func moneyness(params pricing.HestonParams) (pct float64, direction string) {
	ratio := params.S0 / params.K
	inTheMoney := (params.IsPut() && ratio < 1) || (!params.IsPut() && ratio >= 1)
	direction = "OTM"
	if inTheMoney {
		direction = "ITM"
	}
	return math.Abs(1-ratio) * 100, direction
}

// templateInsight renders the shorthand line without any model call. Fully
// deterministic for a given request.
func templateInsight(req Request) string {
	pct, direction := moneyness(req.Params)
	iv := math.Sqrt(req.Params.V0) * 100

	return fmt.Sprintf("%s %s %.2f | %.2f%% %s | D %.2f G %.4f V %.2f | IV %.1f%% | Q-SPD %.1fx",
		strings.ToUpper(req.Ticker),
		strings.ToUpper(string(req.Params.OptionType)),
		req.Params.S0,
		pct, direction,
		req.Result.Greeks["delta"],
		req.Result.Greeks["gamma"],
		req.Result.Greeks["vega"],
		iv,
		req.Quantum.TheoreticalSpeedup,
	)
}

// buildPrompt assembles the model prompt for the AI path.
func buildPrompt(req Request) string {
	pct, direction := moneyness(req.Params)
	iv := math.Sqrt(req.Params.V0) * 100
	tGates := fmt.Sprintf("%.1fM", float64(req.Quantum.TGateCount)/1e6)

	var b strings.Builder
	b.WriteString("Role: High-Frequency Trading Algorithm Output.\n")
	b.WriteString("Task: Generate a SINGLE LINE of ultra-concise Bloomberg-style shorthand data.\n\n")
	b.WriteString("Data:\n")
	fmt.Fprintf(&b, "- Ticker: %s\n", req.Ticker)
	fmt.Fprintf(&b, "- Type: %s Option\n", strings.ToUpper(string(req.Params.OptionType)))
	fmt.Fprintf(&b, "- Price: %.2f\n", req.Params.S0)
	fmt.Fprintf(&b, "- Moneyness: %.2f%% %s\n", pct, direction)
	fmt.Fprintf(&b, "- Greeks: D %.2f, G %.4f, V %.2f\n",
		req.Result.Greeks["delta"], req.Result.Greeks["gamma"], req.Result.Greeks["vega"])
	fmt.Fprintf(&b, "- IV: %.1f%%\n", iv)
	fmt.Fprintf(&b, "- Quantum: %.1fx Speedup, %d Logical Qubits, %s T-Gates\n",
		req.Quantum.TheoreticalSpeedup, req.Quantum.EstimatedQubits, tGates)
	b.WriteString("\nConstraints:\n")
	b.WriteString("- STRICTLY ONE LINE.\n")
	b.WriteString("- USE \"|\" AS DELIMITER.\n")
	b.WriteString("- NO EXPLANATORY TEXT.\n")
	b.WriteString("- ABBREVIATIONS: D (Delta), G (Gamma), V (Vega), IV (Implied Vol), Q-SPD (Speedup).\n\n")
	b.WriteString("Format:\n")
	b.WriteString("[TICKER] [TYPE] [PRICE] | [Moneyness] | D.[val] G.[val] V.[val] | IV[val]% | Q-SPD [val]x\n")

	return b.String()
}
