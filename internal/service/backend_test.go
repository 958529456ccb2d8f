package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fletera/fletera-mcp/internal/service"
)

// ─── Transports ───────────────────────────────────────────────────────────────

func TestSearchTransports(t *testing.T) {
	var gotPath, gotSearch, gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		gotKey = r.Header.Get("X-API-Key")
		fmt.Fprint(w, `[{"code":"T-01","name":"Acme","tax_identification":"76.543.210-K","is_active":true}]`)
	}))
	defer ts.Close()

	svc := service.NewBackendService(ts.URL, "sekrit", ts.Client())
	transports, err := svc.SearchTransports(context.Background(), "acme")
	if err != nil {
		t.Fatalf("SearchTransports: %v", err)
	}

	if gotPath != "/backend/api/v1/transports" {
		t.Errorf("path = %q", gotPath)
	}
	if gotSearch != "acme" {
		t.Errorf("search param = %q, want acme", gotSearch)
	}
	if gotKey != "sekrit" {
		t.Errorf("X-API-Key = %q, want sekrit", gotKey)
	}
	if len(transports) != 1 || transports[0].Code != "T-01" {
		t.Fatalf("unexpected transports: %+v", transports)
	}
}

func TestSearchTransportsNoFilter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("search") {
			t.Errorf("empty search should not send a search param, got %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	svc := service.NewBackendService(ts.URL, "", ts.Client())
	if _, err := svc.SearchTransports(context.Background(), ""); err != nil {
		t.Fatalf("SearchTransports: %v", err)
	}
}

// ─── Liquidations ─────────────────────────────────────────────────────────────

func TestRecentLiquidations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/backend/api/v1/liquidations/recent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `[{"id_transport":3,"liquidation_batch_id":7,"transport_name":"Acme","subtotal":100,"currency":"USD","total":110,"status":"closed","liquidation_date":"2024-01-01","details":[{"route_name":"R1","applied_amount":50,"calculation_details":"flat"}]}]`)
	}))
	defer ts.Close()

	svc := service.NewBackendService(ts.URL, "", ts.Client())
	liquidations, err := svc.RecentLiquidations(context.Background())
	if err != nil {
		t.Fatalf("RecentLiquidations: %v", err)
	}
	if len(liquidations) != 1 {
		t.Fatalf("got %d liquidations, want 1", len(liquidations))
	}
	l := liquidations[0]
	if l.LiquidationBatchID != 7 || l.TransportName != "Acme" || len(l.Details) != 1 {
		t.Errorf("unexpected liquidation: %+v", l)
	}
	if l.Details[0].RouteName != "R1" || l.Details[0].AppliedAmount != 50 {
		t.Errorf("unexpected detail: %+v", l.Details[0])
	}
}

func TestBackendServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	svc := service.NewBackendService(ts.URL, "", ts.Client())
	if _, err := svc.RecentLiquidations(context.Background()); err == nil {
		t.Fatal("expected error on 502 response")
	}
}
