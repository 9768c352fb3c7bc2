// Package here resolves free-text addresses with the HERE Geocoding & Search API.
package here

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

const defaultBaseURL = "https://geocode.search.hereapi.com/v1"

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 1 << 20

// Provider geocodes addresses. Every failure, including zero results and
// timeouts, is reported as domain.ErrGeocode.
type Provider struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public endpoint.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout + time.Second},
		log:        logger.With("adapter", "here"),
	}
}

// Geocode returns the first match for address. No retry is attempted.
func (p *Provider) Geocode(ctx context.Context, address string) (*domain.GeocodedLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", address)
	q.Set("limit", "1")
	q.Set("apiKey", p.apiKey)
	reqURL := p.baseURL + "/geocode?" + q.Encode()

	p.log.DebugContext(ctx, "here request", slog.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("here: create request: %w: %w", domain.ErrGeocode, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "here request failed", slog.String("address", address), slog.String("error", err.Error()))
		return nil, fmt.Errorf("here: request failed: %w: %w", domain.ErrGeocode, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("here: read body: %w: %w", domain.ErrGeocode, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.Unmarshal(body, &apiErr)
		p.log.WarnContext(ctx, "here unexpected status",
			slog.Int("status", resp.StatusCode),
			slog.String("title", apiErr.Title),
		)
		return nil, fmt.Errorf("here: unexpected status %d: %w", resp.StatusCode, domain.ErrGeocode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("here: decode json: %w: %w", domain.ErrGeocode, err)
	}

	if len(parsed.Items) == 0 {
		p.log.InfoContext(ctx, "here no results", slog.String("address", address))
		return nil, fmt.Errorf("here: no results for %q: %w", address, domain.ErrGeocode)
	}

	first := parsed.Items[0]
	label := first.Address.Label
	if label == "" {
		label = first.Title
	}

	p.log.DebugContext(ctx, "here response",
		slog.String("address", address),
		slog.String("label", label),
		slog.Int("items", len(parsed.Items)),
	)

	return &domain.GeocodedLocation{
		Lat:     first.Position.Lat,
		Lng:     first.Position.Lng,
		Address: label,
	}, nil
}
