package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fletera/fletera-mcp/internal/models"
)

// BackendService fetches transport and liquidation records from the
// logistics backend API.
type BackendService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewBackendService(baseURL, apiKey string, client *http.Client) *BackendService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &BackendService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// SearchTransports lists registered transports. The search term is matched
// by the backend; an empty term returns all transports.
func (s *BackendService) SearchTransports(ctx context.Context, search string) ([]models.Transport, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	var transports []models.Transport
	if err := s.getJSON(ctx, "/backend/api/v1/transports", query, &transports); err != nil {
		return nil, fmt.Errorf("search transports: %w", err)
	}
	return transports, nil
}

// RecentLiquidations returns the most recent liquidation batches.
func (s *BackendService) RecentLiquidations(ctx context.Context) ([]models.Liquidation, error) {
	var liquidations []models.Liquidation
	if err := s.getJSON(ctx, "/backend/api/v1/liquidations/recent", nil, &liquidations); err != nil {
		return nil, fmt.Errorf("recent liquidations: %w", err)
	}
	return liquidations, nil
}

func (s *BackendService) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend request failed: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}
