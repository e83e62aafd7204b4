package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vgs-buy-tracker/internal/domain"

	"github.com/openai/openai-go"
	"go.opentelemetry.io/otel/trace"
)

func testDashboard() *domain.Dashboard {
	gain := 8.5
	return &domain.Dashboard{
		Symbol: "VGS.AX",
		Params: domain.DefaultParams(),
		Table: []domain.DecoratedPoint{
			{
				Date:        time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
				Close:       94,
				SMA:         100,
				PctBelowSMA: -6,
				Downtrend:   true,
				Buy:         true,
			},
		},
		Simulation: domain.SimulationResult{
			TotalInvested: 6000,
			CurrentValue:  6510,
			Gain:          510,
			GainPct:       &gain,
		},
		Chart: domain.ChartSeries{
			BuyMarkers: []domain.ChartPoint{
				{Date: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), Close: 94},
			},
		},
	}
}

func TestExplainHappyPath(t *testing.T) {
	llm := &stubLLMClient{
		response: &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "the price sits well below its average"}},
			},
		},
	}

	svc := NewAdvisorService(trace.NewNoopTracerProvider().Tracer("test"), llm, "gpt-4o-mini")

	reply, err := svc.Explain(context.Background(), testDashboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "the price sits well below its average" {
		t.Fatalf("unexpected reply %q", reply)
	}

	if len(llm.params.Messages) != 2 {
		t.Fatalf("expected system + user message, got %d messages", len(llm.params.Messages))
	}
	if llm.params.Model != "gpt-4o-mini" {
		t.Fatalf("expected model gpt-4o-mini, got %q", llm.params.Model)
	}
}

func TestExplainLLMError(t *testing.T) {
	llm := &stubLLMClient{err: errors.New("api down")}

	svc := NewAdvisorService(trace.NewNoopTracerProvider().Tracer("test"), llm, "gpt-4o-mini")

	_, err := svc.Explain(context.Background(), testDashboard())
	if err == nil {
		t.Fatal("expected error from LLM failure")
	}
}

func TestExplainNoChoices(t *testing.T) {
	llm := &stubLLMClient{response: &openai.ChatCompletion{}}

	svc := NewAdvisorService(trace.NewNoopTracerProvider().Tracer("test"), llm, "gpt-4o-mini")

	_, err := svc.Explain(context.Background(), testDashboard())
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestFormatDashboardContext(t *testing.T) {
	got := FormatDashboardContext(testDashboard())

	for _, want := range []string{
		"Symbol: VGS.AX",
		"SMA window 20",
		"Latest (2025-07-04)",
		"downtrend=true, buy=true",
		"invested $6000.00 across 1 buy days",
		"(8.50%)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "synthetic") {
		t.Errorf("context should not mention synthetic data for a live feed:\n%s", got)
	}
}

func TestFormatDashboardContextSyntheticAndNoBuys(t *testing.T) {
	dash := testDashboard()
	dash.Synthetic = true
	dash.Simulation = domain.SimulationResult{}
	dash.Chart.BuyMarkers = nil

	got := FormatDashboardContext(dash)
	if !strings.Contains(got, "synthetic data") {
		t.Errorf("context should flag synthetic data:\n%s", got)
	}
	if !strings.Contains(got, "(no buys triggered)") {
		t.Errorf("context should report undefined gain when nothing was invested:\n%s", got)
	}
}

// --- stubs ---

type stubLLMClient struct {
	response *openai.ChatCompletion
	err      error
	params   openai.ChatCompletionNewParams
}

func (s *stubLLMClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	s.params = params
	return s.response, s.err
}
