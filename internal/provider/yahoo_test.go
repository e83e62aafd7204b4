package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

func newTestProvider(serverURL string) *YahooProvider {
	return &YahooProvider{
		client:   &http.Client{Timeout: 5 * time.Second},
		baseURL:  serverURL,
		tracer:   testTracer,
		throttle: NewThrottle(0),
	}
}

func chartJSON(timestamps []int64, closes []string) string {
	ts := ""
	for i, t := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += fmt.Sprintf("%d", t)
	}
	cl := ""
	for i, c := range closes {
		if i > 0 {
			cl += ","
		}
		cl += c
	}
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{
		"open":[%s],"high":[%s],"low":[%s],"close":[%s],"volume":[%s]}]}}],"error":null}}`,
		ts, cl, cl, cl, cl, cl)
}

func TestFetchDailyBars(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/VGS.AX" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("interval") != "1d" {
			t.Errorf("expected daily interval, got %s", r.URL.Query().Get("interval"))
		}
		fmt.Fprint(w, chartJSON(
			[]int64{day.Unix(), day.AddDate(0, 0, 1).Unix(), day.AddDate(0, 0, 2).Unix()},
			[]string{"101.5", "null", "103.25"},
		))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	bars, err := p.FetchDailyBars(context.Background(), "VGS.AX", day.AddDate(0, 0, -7), day.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The null bar (holiday) is dropped.
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 101.5 || bars[1].Close != 103.25 {
		t.Fatalf("unexpected closes: %+v", bars)
	}
	if !bars[0].Date.Equal(day) {
		t.Fatalf("expected date %s, got %s", day, bars[0].Date)
	}
	if h, m, s := bars[1].Date.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("bar date not normalized to midnight: %s", bars[1].Date)
	}
	if !bars[0].Date.Before(bars[1].Date) {
		t.Fatal("bars not ascending")
	}
}

func TestFetchDailyBarsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.FetchDailyBars(context.Background(), "VGS.AX", time.Now().AddDate(-1, 0, 0), time.Now()); err == nil {
		t.Fatal("expected error for API error payload")
	}
}

func TestFetchDailyBarsHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.FetchDailyBars(context.Background(), "VGS.AX", time.Now().AddDate(-1, 0, 0), time.Now()); err == nil {
		t.Fatal("expected error for HTTP 429")
	}
}

func TestFetchDailyBarsAllNull(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON([]int64{day.Unix()}, []string{"null"}))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.FetchDailyBars(context.Background(), "VGS.AX", day.AddDate(0, 0, -7), day); err == nil {
		t.Fatal("expected error when every bar is null")
	}
}
