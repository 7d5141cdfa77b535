package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"DCASimulator/internal/model"
	"DCASimulator/internal/series"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	defaults := model.Parameters{
		InitialCapital:    50000,
		AnnualCashYield:   0.05,
		DropTrigger:       0.03,
		DropMultiplier:    3,
		ProfitTakeEnabled: true,
		ProfitTakeTarget:  0.08,
		EquityRatio:       0.80,
	}
	h := NewHandler(defaults, series.Default())
	return NewRouter(h, []string{"http://localhost:5173"})
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	testRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
}

func TestGetDataset(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dataset", nil)
	testRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var s model.PriceSeries
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode dataset: %v", err)
	}
	if s.Len() != 84 {
		t.Errorf("dataset length %d, want 84", s.Len())
	}
}

func TestSimulate_Defaults(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", nil)
	testRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Snapshots) != 84 {
		t.Fatalf("expected 84 snapshots, got %d", len(resp.Snapshots))
	}
	last := resp.Snapshots[len(resp.Snapshots)-1]
	if resp.Summary.FinalValue != last.TotalValue {
		t.Errorf("summary final value %.2f != last snapshot total %.2f", resp.Summary.FinalValue, last.TotalValue)
	}
}

func TestSimulate_CustomSeries(t *testing.T) {
	body, _ := json.Marshal(SimulateRequest{
		Parameters: &model.Parameters{
			InitialCapital:    1000,
			AnnualCashYield:   0,
			DropTrigger:       0.05,
			DropMultiplier:    2,
			ProfitTakeEnabled: false,
			ProfitTakeTarget:  0.08,
			EquityRatio:       0.5,
		},
		Prices:    []float64{100, 94},
		StartDate: "2024-01-31",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(resp.Snapshots))
	}
	if !resp.Snapshots[1].TriggerActive {
		t.Error("expected trigger active on 6 percent drop")
	}
}

func TestSimulate_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"equity ratio out of range", `{"parameters":{"initial_capital":1000,"annual_cash_yield":0.05,"drop_trigger":0.03,"drop_multiplier":3,"profit_take_target":0.08,"equity_ratio":1.5}}`},
		{"single price", `{"prices":[100],"start_date":"2024-01-31"}`},
		{"prices without start date", `{"prices":[100,101]}`},
		{"malformed json", `{"prices":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			testRouter().ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCharts_PNG(t *testing.T) {
	for _, route := range []string{"/api/charts/portfolio", "/api/charts/price"} {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, route, nil)
			testRouter().ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("content type %q, want image/png", ct)
			}
			if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
				t.Error("response body is not a PNG")
			}
		})
	}
}
