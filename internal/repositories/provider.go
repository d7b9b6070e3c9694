package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"precip-viewer/internal/models"
	"precip-viewer/pkg/observe"
)

const (
	TodayPath = "/api/weather/today/"
	WeekPath  = "/api/weather/week/"
)

// ProviderRepository reads forecasts from the HTTP forecast provider. Each fetch is exactly
// one GET; there is no retry.
type ProviderRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewProviderRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *ProviderRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ProviderRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

func (p *ProviderRepository) Name() string {
	return "provider"
}

func (p *ProviderRepository) FetchToday(ctx context.Context) (models.TodayForecast, error) {
	var today models.TodayForecast

	body, err := p.get(ctx, TodayPath)
	if err != nil {
		return today, err
	}

	if err = json.Unmarshal(body, &today); err != nil {
		return models.TodayForecast{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err = today.Validate(); err != nil {
		return models.TodayForecast{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return today, nil
}

func (p *ProviderRepository) FetchWeek(ctx context.Context) (models.WeekForecast, error) {
	body, err := p.get(ctx, WeekPath)
	if err != nil {
		return nil, err
	}

	var response models.WeekResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err = response.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return response.Predictions, nil
}

func (p *ProviderRepository) get(ctx context.Context, path string) ([]byte, error) {
	url := p.baseURL + path

	p.l.Debug("making provider request", map[string]any{"url": url})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	p.l.Debug("received provider response", map[string]any{
		"url":    url,
		"status": resp.StatusCode,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	return body, nil
}
