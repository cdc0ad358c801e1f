package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"mortgage-strategy/domain"
)

const (
	DefaultExplanationModel = "gpt-4o-mini"
	DefaultExplanationURL   = "https://api.openai.com/v1/chat/completions"
)

type ExplanationConfig struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

// ExplanationService describes the winning strategy in plain English. With
// no API key it only ever returns the built-in summary.
type ExplanationService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewExplanationService(cfg ExplanationConfig, logger *zap.SugaredLogger) *ExplanationService {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultExplanationURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultExplanationModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &ExplanationService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.APIURL,
		model:   cfg.Model,
		enabled: cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (s *ExplanationService) Explain(ctx context.Context, result domain.SimulationResult) string {
	if !s.enabled {
		return fallbackExplanation(result)
	}

	explanation, err := s.callLLM(ctx, explanationPrompt(result))
	if err != nil {
		s.logger.Warnw("explanation request failed, using fallback", "error", err)
		return fallbackExplanation(result)
	}

	return explanation
}

func explanationPrompt(r domain.SimulationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A homeowner compared four ways to pay off a mortgage.\n\n")
	fmt.Fprintf(&b, "Monthly mortgage payment: $%.2f\n", r.MortgagePayment)
	fmt.Fprintf(&b, "Money left over each month after expenses, payment and maintenance: $%.2f\n", r.Leftover)
	fmt.Fprintf(&b, "Estimated home value today: $%.2f\n\n", r.HomeValue)

	for _, kind := range domain.RankedStrategies {
		s := r.Strategy(kind)
		fmt.Fprintf(&b, "- %s: paid off in %d months, interest $%.2f, line of credit interest $%.2f, tax savings $%.2f, net position $%.2f",
			kind.DisplayName(), s.Months, s.TotalInterest, s.TotalLocInterest, s.TotalTaxSavings, s.NetPosition)
		if s.Capped {
			b.WriteString(" (never paid off within the simulated horizon)")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nThe best strategy by net position is %s.\n\n", r.BestStrategy.Name)
	b.WriteString("In 3-4 sentences, explain why this strategy comes out ahead, what trade-off it makes ")
	b.WriteString("against the others, and one risk the homeowner should keep in mind. Use the numbers.")

	if r.CostExceedsIncome {
		b.WriteString(" Point out that expenses already exceed income.")
	}

	return b.String()
}

func (s *ExplanationService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a careful personal finance educator. You explain mortgage payoff strategies in plain English, you never promise returns, and you always mention that the figures are estimates.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("no response from model")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// smallSurplusShare is the share of the mortgage payment below which the
// monthly surplus counts as small.
const smallSurplusShare = 0.25

func fallbackExplanation(r domain.SimulationResult) string {
	best := r.Strategy(r.BestStrategy.Strategy)
	trad := r.Traditional

	if r.CostExceedsIncome {
		return fmt.Sprintf("Your expenses, mortgage payment and maintenance add up to more than your income, so there is nothing left to accelerate the mortgage. %s comes out ahead with a net position of $%.2f, but closing the $%.2f monthly gap matters more than the choice of strategy.",
			r.BestStrategy.Name, r.BestStrategy.NetWorth, -r.Leftover)
	}

	switch r.BestStrategy.Strategy {
	case domain.StrategyInvestment:
		return fmt.Sprintf("Investing the $%.2f left over each month and paying the mortgage on schedule ends with a net position of $%.2f after %d months. The portfolio grows to $%.2f, which outweighs the interest you would save by paying the loan down early. Market returns are not guaranteed, so this plan carries more risk than the others.",
			r.Leftover, best.NetPosition, best.Months, best.InvestmentBalance)
	case domain.StrategyAccelerated:
		return fmt.Sprintf("Moving chunks of the mortgage onto the line of credit and clearing them with your $%.2f monthly surplus pays the house off in %d months instead of %d, for a net position of $%.2f. It costs $%.2f in line of credit interest, and it depends on the line staying available at its current rate.",
			r.Leftover, best.Months, trad.Months, best.NetPosition, best.TotalLocInterest)
	case domain.StrategyExtraPayment:
		return fmt.Sprintf("Adding your $%.2f monthly surplus to the mortgage principal pays the house off in %d months instead of %d and saves $%.2f in interest, for a net position of $%.2f. It is the simplest way to get out of debt early, but that money is no longer available for emergencies.",
			r.Leftover, best.Months, trad.Months, trad.TotalInterest-best.TotalInterest, best.NetPosition)
	}

	lead := fmt.Sprintf("Paying the mortgage on its regular schedule over %d months gives the best net position, $%.2f.",
		best.Months, best.NetPosition)
	switch {
	case r.Leftover <= 0:
		return lead + " Nothing is left over each month, so there is no surplus for the other strategies to put to work."
	case r.Leftover < smallSurplusShare*r.MortgagePayment:
		return lead + fmt.Sprintf(" With only $%.2f left over each month, none of the accelerated strategies earns back what they cost.", r.Leftover)
	default:
		return lead + fmt.Sprintf(" Even with $%.2f left over each month, paying off early gives up more home appreciation than it saves in interest, and the other strategies do not earn more at these rates.", r.Leftover)
	}
}
