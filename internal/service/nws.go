package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fletera/fletera-mcp/internal/models"
)

// NWSService fetches data from the National Weather Service API.
// The caller owns the injected *http.Client; a default with a 10s timeout
// is used when none is provided.
type NWSService struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNWSService(baseURL, userAgent string, client *http.Client) *NWSService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &NWSService{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

// ActiveAlerts returns the active alerts for a two-letter US state code.
func (s *NWSService) ActiveAlerts(ctx context.Context, state string) ([]models.AlertFeature, error) {
	var resp models.AlertsResponse
	if err := s.getJSON(ctx, "/alerts/active/area/"+state, &resp); err != nil {
		return nil, fmt.Errorf("fetch alerts for %s: %w", state, err)
	}
	return resp.Features, nil
}

// Forecast resolves the forecast URL for a point and fetches its periods.
// The points response is a locator document; a missing forecast URL is a
// terminal error rather than an empty result.
func (s *NWSService) Forecast(ctx context.Context, latitude, longitude float64) ([]models.ForecastPeriod, error) {
	point := fmt.Sprintf("/points/%.4f,%.4f", latitude, longitude)

	var points models.PointsResponse
	if err := s.getJSON(ctx, point, &points); err != nil {
		return nil, fmt.Errorf("fetch point %.4f,%.4f: %w", latitude, longitude, err)
	}
	if points.Properties.Forecast == "" {
		return nil, fmt.Errorf("points response for %.4f,%.4f has no forecast URL", latitude, longitude)
	}

	var forecast models.ForecastResponse
	if err := s.getJSON(ctx, points.Properties.Forecast, &forecast); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	return forecast.Properties.Periods, nil
}

// getJSON issues a GET for a path (resolved against the base URL) or an
// absolute URL, and decodes the JSON body into out.
func (s *NWSService) getJSON(ctx context.Context, pathOrURL string, out any) error {
	url := pathOrURL
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = s.baseURL + pathOrURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nws request failed: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode nws response: %w", err)
	}
	return nil
}
