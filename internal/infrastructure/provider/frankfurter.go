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

// Frankfurter is the fallback provider, queried through its /latest endpoint.
type Frankfurter struct {
	URL    string
	Client *httpx.Client
	Now    func() time.Time
}

var _ application.RateProvider = (*Frankfurter)(nil)

type latestResp struct {
	Base  string         `json:"base"`
	Date  any            `json:"date"`
	Rates map[string]any `json:"rates"`
}

func (p *Frankfurter) Name() string { return "frankfurter" }

func (p *Frankfurter) Get(ctx context.Context, pair domain.Pair) (domain.Rate, error) {
	u, err := url.Parse(p.URL)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("frankfurter: invalid url: %w", err)
	}
	q := u.Query()
	q.Set("from", pair.Base)
	q.Set("to", pair.Quote)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("frankfurter: create request: %w", err)
	}

	var body latestResp
	if err := clientOrDefault(p.Client).DoJSON(ctx, req, &body); err != nil {
		return domain.Rate{}, fmt.Errorf("frankfurter: %w", err)
	}

	v, ok := body.Rates[pair.Quote]
	if !ok {
		return domain.Rate{}, domain.ErrUnsupportedCurrency
	}
	mid, err := toFloat(v)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("frankfurter: %w", err)
	}
	return domain.Rate{
		Mid:    mid,
		AsOf:   domain.ParseAsOf(body.Date, nowOrDefault(p.Now)),
		Source: p.Name(),
	}, nil
}
