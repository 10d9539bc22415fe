package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exchange-service/internal/application"
	"exchange-service/internal/domain"

	"github.com/stretchr/testify/require"
)

var _ application.RateProvider = (*stubRates)(nil)

type stubRates struct {
	rate  domain.Rate
	err   error
	calls int
	pair  domain.Pair
}

func (s *stubRates) Name() string { return "stub" }

func (s *stubRates) Get(_ context.Context, pair domain.Pair) (domain.Rate, error) {
	s.calls++
	s.pair = pair
	return s.rate, s.err
}

func setup(rates application.RateProvider, spreadBPS int) http.Handler {
	svc := application.NewQuoteService(rates, spreadBPS)
	return NewRouter(NewServer(svc, nil))
}

func get(h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rates := &stubRates{err: errors.New("down")}
	rec := get(setup(rates, 100), "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.Zero(t, rates.calls)
}

func TestExchange_OK(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 0.92, AsOf: time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)}}
	rec := get(setup(rates, 100), "/exchange/usd/eur", map[string]string{"id-account": "acct-123"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"sell":0.9246,"buy":0.9154,"date":"2025-11-08 00:00:00","id-account":"acct-123"}`, rec.Body.String())
	require.Equal(t, domain.Pair{Base: "USD", Quote: "EUR"}, rates.pair)
}

func TestExchange_LegacyUserID(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 1}}
	rec := get(setup(rates, 0), "/exchange/EUR/USD", map[string]string{"User-Id": "legacy-7"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id-account":"legacy-7"`)
}

func TestExchange_AccountPreferredOverUserID(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 1}}
	rec := get(setup(rates, 0), "/exchange/EUR/USD", map[string]string{"id-account": "A", "User-Id": "B"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id-account":"A"`)
}

func TestExchange_RepeatedIdentityHeaderUsesFirst(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 1}}
	req := httptest.NewRequest(http.MethodGet, "/exchange/USD/EUR", nil)
	req.Header.Add("id-account", "A")
	req.Header.Add("id-account", "A2")
	req.Header.Add("User-Id", "B")
	req.Header.Add("User-Id", "B2")
	rec := httptest.NewRecorder()
	setup(rates, 0).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id-account":"A"`)
	require.Equal(t, []string{"A", "A2"}, req.Header.Values("id-account"))
}

func TestExchange_RepeatedLegacyHeaderUsesFirst(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 1}}
	req := httptest.NewRequest(http.MethodGet, "/exchange/USD/EUR", nil)
	req.Header.Add("User-Id", "B")
	req.Header.Add("User-Id", "B2")
	rec := httptest.NewRecorder()
	setup(rates, 0).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id-account":"B"`)
}

func TestExchange_MissingIdentity(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 1}}
	rec := get(setup(rates, 100), "/exchange/USD/EUR", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"detail":"Missing id-account header"}`, rec.Body.String())
	require.Zero(t, rates.calls)
}

func TestExchange_EmptyIdentityHeaders(t *testing.T) {
	rates := &stubRates{rate: domain.Rate{Mid: 1}}
	rec := get(setup(rates, 100), "/exchange/USD/EUR", map[string]string{"id-account": "", "User-Id": ""})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExchange_ProvidersExhausted(t *testing.T) {
	rates := &stubRates{err: &domain.ExhaustedError{Last: domain.ErrUnsupportedCurrency}}
	rec := get(setup(rates, 100), "/exchange/USD/XYZ", map[string]string{"id-account": "acct-123"})

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"detail":"FX provider error: unsupported currency at fallback"}`, rec.Body.String())
}

func TestExchange_UnexpectedError(t *testing.T) {
	rates := &stubRates{err: errors.New("boom")}
	rec := get(setup(rates, 100), "/exchange/USD/EUR", map[string]string{"id-account": "acct-123"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := get(setup(&stubRates{}, 100), "/exchange/USD", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	setup(&stubRates{}, 100).ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	rec := get(setup(&stubRates{}, 100), "/health", map[string]string{"X-Request-ID": "rid-1"})
	require.Equal(t, "rid-1", rec.Header().Get("X-Request-ID"))
	require.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
}

func TestOpenAPIDocument(t *testing.T) {
	rec := get(setup(&stubRates{}, 100), "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/exchange/{from}/{to}")
}

func TestMetricsEndpoint(t *testing.T) {
	h := setup(&stubRates{}, 100)
	_ = get(h, "/health", nil)

	rec := get(h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "exchange_service_http_req_total")
}
