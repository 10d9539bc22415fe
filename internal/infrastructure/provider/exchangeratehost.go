package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"exchange-service/internal/application"
	"exchange-service/internal/domain"
	"exchange-service/internal/infrastructure/httpx"
)

const convertPath = "/convert"

// ExchangeRateHost is the primary provider, an exchangerate.host style /convert API.
type ExchangeRateHost struct {
	BaseURL      string
	APIKey       string
	APIKeyHeader string
	Client       *httpx.Client
	Now          func() time.Time
}

var _ application.RateProvider = (*ExchangeRateHost)(nil)

func (p *ExchangeRateHost) Name() string { return "exchangerate.host" }

func (p *ExchangeRateHost) Get(ctx context.Context, pair domain.Pair) (domain.Rate, error) {
	u, err := url.Parse(p.BaseURL + convertPath)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("exchangerate.host: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("from", pair.Base)
	q.Set("to", pair.Quote)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("exchangerate.host: create request: %w", err)
	}
	if p.APIKey != "" && p.APIKeyHeader != "" {
		req.Header.Set(p.APIKeyHeader, p.APIKey)
	}

	var body map[string]any
	if err := clientOrDefault(p.Client).DoJSON(ctx, req, &body); err != nil {
		return domain.Rate{}, fmt.Errorf("exchangerate.host: %w", err)
	}

	mid, err := convertRate(body)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("exchangerate.host: %w", err)
	}
	return domain.Rate{
		Mid:    mid,
		AsOf:   domain.ParseAsOf(body["date"], nowOrDefault(p.Now)),
		Source: p.Name(),
	}, nil
}

// convertRate reads info.rate, then the top-level result.
func convertRate(body map[string]any) (float64, error) {
	if info, ok := body["info"].(map[string]any); ok {
		if v, ok := info["rate"]; ok {
			return toFloat(v)
		}
	}
	if v, ok := body["result"]; ok {
		return toFloat(v)
	}
	return 0, domain.ErrMissingRate
}

func clientOrDefault(c *httpx.Client) *httpx.Client {
	if c == nil {
		return &httpx.Client{HTTP: http.DefaultClient}
	}
	return c
}

func nowOrDefault(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
