package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/kavia-common/cafe-pos/pos-service-go/internal/http"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/session"
)

type cachePingerMock struct {
	err error
}

func (m cachePingerMock) Ping(ctx context.Context) error { return m.err }

type diagResp struct {
	Service    string            `json:"service"`
	TaxRateBps string            `json:"taxRateBps"`
	Checks     map[string]string `json:"checks"`
}

func TestDiagnostics(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		h := httpapi.NewDiagHandler(dbPingerMock{}, session.NewMemoryStore(), true, money.DefaultTaxRateTenthBps)
		w := httptest.NewRecorder()
		h.Diagnostics(w, httptest.NewRequest(http.MethodGet, "/api/diagnostics", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp diagResp
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.TaxRateBps != "887.5" {
			t.Fatalf("expected tax rate 887.5, got %s", resp.TaxRateBps)
		}
		if resp.Checks["database"] != "ok" || resp.Checks["messaging"] != "enabled" {
			t.Fatalf("unexpected checks %+v", resp.Checks)
		}
	})

	t.Run("database down degrades status", func(t *testing.T) {
		h := httpapi.NewDiagHandler(dbPingerMock{err: errors.New("dial refused")}, session.NewMemoryStore(), false, money.DefaultTaxRateTenthBps)
		w := httptest.NewRecorder()
		h.Diagnostics(w, httptest.NewRequest(http.MethodGet, "/api/diagnostics", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("session cache failure does not degrade status", func(t *testing.T) {
		h := httpapi.NewDiagHandler(dbPingerMock{}, cachePingerMock{err: errors.New("redis down")}, false, money.DefaultTaxRateTenthBps)
		w := httptest.NewRecorder()
		h.Diagnostics(w, httptest.NewRequest(http.MethodGet, "/api/diagnostics", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 despite cache failure, got %d", w.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
