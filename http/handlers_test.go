package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"mortgage-strategy/domain"
	"mortgage-strategy/repository"
	mock_repository "mortgage-strategy/repository/mocks"
	"mortgage-strategy/service"
)

const scenarioBody = `{
	"mortgageBalance": 240000,
	"mortgageRate": "6.5",
	"mortgageYears": 30,
	"monthlyIncome": 10000,
	"monthlyExpenses": 8000,
	"locLimit": 10000,
	"locRate": 10,
	"taxRate": 22,
	"investmentReturn": 8,
	"maintenanceRate": 1.5,
	"homeAppreciationRate": 3.5,
	"rentalDiscountPercent": "",
	"enableRentalComparison": false
}`

func newTestSimulationService(events repository.EventSink) *service.SimulationService {
	if events == nil {
		events = repository.NoopEventSink{}
	}
	sessions := repository.NewSessionRepositoryMemory(time.Hour)
	return service.NewSimulationService(repository.NewMemoryCache(), sessions, events, nil, time.Hour, zap.NewNop().Sugar())
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSimulationHandler_OK(t *testing.T) {
	handler := NewSimulationHandler(newTestSimulationService(nil))

	w := httptest.NewRecorder()
	handler.Simulate(w, postJSON("/mortgage/simulate", scenarioBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, domain.StrategyInvestment, result.BestStrategy.Strategy)
	require.Equal(t, 360, result.Traditional.Months)
	require.NotEmpty(t, result.RunID)
	require.Empty(t, result.Accelerated.DebugTrace)
	require.Len(t, result.ChartData, 31)
}

func TestSimulationHandler_DebugTrace(t *testing.T) {
	handler := NewSimulationHandler(newTestSimulationService(nil))

	w := httptest.NewRecorder()
	handler.Simulate(w, postJSON("/mortgage/simulate?debug=true", scenarioBody))

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Accelerated.DebugTrace, result.Accelerated.Months)
}

func TestSimulationHandler_Errors(t *testing.T) {
	handler := NewSimulationHandler(newTestSimulationService(nil))

	tests := []struct {
		name string
		req  func() *http.Request
		want int
	}{
		{
			name: "method not allowed",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/mortgage/simulate", nil) },
			want: http.StatusMethodNotAllowed,
		},
		{
			name: "wrong content type",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/mortgage/simulate", bytes.NewBufferString(scenarioBody))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			want: http.StatusUnsupportedMediaType,
		},
		{
			name: "invalid json",
			req:  func() *http.Request { return postJSON("/mortgage/simulate", `{invalid-json}`) },
			want: http.StatusBadRequest,
		},
		{
			name: "zero term",
			req:  func() *http.Request { return postJSON("/mortgage/simulate", `{"mortgageBalance": 100000, "mortgageYears": ""}`) },
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Simulate(w, tt.req())
			require.Equal(t, tt.want, w.Code)
		})
	}
}

func TestPaymentHandler(t *testing.T) {
	handler := NewPaymentHandler()

	w := httptest.NewRecorder()
	handler.CalculatePayment(w, postJSON("/mortgage/payment", `{"balance": 240000, "rate": 6.5, "years": 30}`))
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 1516.96, result.MonthlyPayment)

	w = httptest.NewRecorder()
	handler.CalculatePayment(w, postJSON("/mortgage/payment", `{"balance": 240000, "rate": 6.5, "years": 0}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSensitivityHandler(t *testing.T) {
	handler := NewSensitivityHandler(service.NewSensitivityService(zap.NewNop().Sugar()))

	body := `{"config": ` + scenarioBody + `, "field": "mortgageRate", "min": 3, "max": 9, "steps": 7}`
	w := httptest.NewRecorder()
	handler.Sweep(w, postJSON("/mortgage/sensitivity", body))
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SweepResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Points, 7)
	require.Equal(t, 3.0, result.Points[0].Value)
	require.Equal(t, domain.StrategyInvestment, result.Points[0].Best)
	require.Equal(t, domain.StrategyTraditional, result.Points[6].Best)

	w = httptest.NewRecorder()
	handler.Sweep(w, postJSON("/mortgage/sensitivity", `{"config": {}, "field": "nope", "min": 1, "max": 2, "steps": 3}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHandler_ChartCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mock_repository.NewMockEventSink(ctrl)
	events.EXPECT().Track(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.Event) error {
			require.Equal(t, domain.EventChartInteracted, e.Name)
			return nil
		})

	handler := NewExportHandler(NewSimulationHandler(newTestSimulationService(events)))

	req := postJSON("/mortgage/chart.csv", scenarioBody)
	req.Header.Set(sessionIDHeader, "session-1")
	w := httptest.NewRecorder()
	handler.ChartCSV(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 32)
	require.Equal(t, "year,traditional,extra_payment,accelerated,investment_balance", lines[0])
	require.Equal(t, "0,240000.00,240000.00,240000.00,0.00", lines[1])
}

func TestExportHandler_DebugCSV(t *testing.T) {
	handler := NewExportHandler(NewSimulationHandler(newTestSimulationService(nil)))

	w := httptest.NewRecorder()
	handler.DebugCSV(w, postJSON("/mortgage/debug.csv", scenarioBody))

	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 351)
	require.True(t, strings.HasPrefix(lines[1], "1,"))
	require.Contains(t, lines[1], ",10000.00,108.04,108.04,")
}

func TestNewRouter_RateLimitIgnoresForwardedFor(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := NewRouter(RouterDeps{
		Simulations: newTestSimulationService(nil),
		Limiter:     rl,
		Logger:      zap.NewNop().Sugar(),
	})

	allowed := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/mortgage/payment", bytes.NewBufferString(`{"balance": 240000, "rate": 6.5, "years": 30}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.RemoteAddr = "10.0.0.1:5555"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusTooManyRequests {
			allowed++
		}
	}

	require.Equal(t, 1, allowed)
}
