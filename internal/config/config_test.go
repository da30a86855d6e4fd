package config

import (
	"testing"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TAX_RATE_BPS", "")

	cfg := Load()
	if cfg.Port != "8084" {
		t.Fatalf("expected default port 8084, got %s", cfg.Port)
	}
	if cfg.TaxRateTenthBps != money.DefaultTaxRateTenthBps {
		t.Fatalf("expected default tax rate, got %d", cfg.TaxRateTenthBps)
	}
}

func TestLoadTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE_BPS", "1000")
	if cfg := Load(); cfg.TaxRateTenthBps != 10000 {
		t.Fatalf("expected 10000 tenth-bps, got %d", cfg.TaxRateTenthBps)
	}

	// unparseable rates fall back to the default rather than failing startup
	t.Setenv("TAX_RATE_BPS", "lots")
	if cfg := Load(); cfg.TaxRateTenthBps != money.DefaultTaxRateTenthBps {
		t.Fatalf("expected fallback to default, got %d", cfg.TaxRateTenthBps)
	}
}
