package provider_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"exchange-service/internal/domain"
	"exchange-service/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	name  string
	rate  domain.Rate
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Get(context.Context, domain.Pair) (domain.Rate, error) {
	s.calls++
	return s.rate, s.err
}

func TestChain_PrimaryWins(t *testing.T) {
	primary := &stubProvider{name: "primary", rate: domain.Rate{Mid: 0.9123}}
	fallback := &stubProvider{name: "fallback", err: errors.New("down")}

	rate, err := provider.NewChain(zap.NewNop(), primary, fallback).Get(context.Background(), domain.NewPair("USD", "EUR"))
	require.NoError(t, err)
	require.InDelta(t, 0.9123, rate.Mid, 1e-12)
	require.Equal(t, 1, primary.calls)
	require.Zero(t, fallback.calls)
}

func TestChain_FallbackOnPrimaryFailure(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("status 500")}
	fallback := &stubProvider{name: "fallback", rate: domain.Rate{Mid: 0.905}}

	rate, err := provider.NewChain(nil, primary, fallback).Get(context.Background(), domain.NewPair("USD", "EUR"))
	require.NoError(t, err)
	require.InDelta(t, 0.905, rate.Mid, 1e-12)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, fallback.calls)
}

func TestChain_Exhausted(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("timeout")}
	fallback := &stubProvider{name: "fallback", err: domain.ErrUnsupportedCurrency}

	_, err := provider.NewChain(nil, primary, fallback).Get(context.Background(), domain.NewPair("USD", "XYZ"))
	require.ErrorIs(t, err, domain.ErrProviderExhausted)

	var ex *domain.ExhaustedError
	require.ErrorAs(t, err, &ex)
	require.Equal(t, "unsupported currency at fallback", ex.Error())
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, fallback.calls)
}

func TestChain_Empty(t *testing.T) {
	_, err := provider.NewChain(nil).Get(context.Background(), domain.NewPair("USD", "EUR"))
	require.ErrorIs(t, err, domain.ErrProviderExhausted)
}

func TestChain_HTTPProviders(t *testing.T) {
	cases := []struct {
		name        string
		primaryCode int
		primaryBody string
	}{
		{"primary status 500", http.StatusInternalServerError, `{}`},
		{"primary malformed json", http.StatusOK, `{x`},
		{"primary non numeric rate", http.StatusOK, `{"info":{"rate":"abc"}}`},
		{"primary info without rate", http.StatusOK, `{"info":{},"date":"2025-11-07"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var fallbackCalls int
			primarySrv := jsonServer(t, c.primaryCode, c.primaryBody, nil)
			fallbackSrv := jsonServer(t, http.StatusOK, `{"base":"USD","date":"2025-11-07","rates":{"EUR":0.905}}`,
				func(*http.Request) { fallbackCalls++ })

			chain := provider.NewChain(nil,
				&provider.ExchangeRateHost{BaseURL: primarySrv.URL},
				&provider.Frankfurter{URL: fallbackSrv.URL + "/latest"},
			)
			rate, err := chain.Get(context.Background(), domain.NewPair("USD", "EUR"))
			require.NoError(t, err)
			require.InDelta(t, 0.905, rate.Mid, 1e-12)
			require.Equal(t, "frankfurter", rate.Source)
			require.Equal(t, "2025-11-07 00:00:00", rate.AsOfString())
			require.Equal(t, 1, fallbackCalls)
		})
	}
}

func TestChain_HTTPProvidersBothDown(t *testing.T) {
	primarySrv := jsonServer(t, http.StatusInternalServerError, `{}`, nil)
	fallbackSrv := jsonServer(t, http.StatusBadGateway, `{}`, nil)

	chain := provider.NewChain(nil,
		&provider.ExchangeRateHost{BaseURL: primarySrv.URL},
		&provider.Frankfurter{URL: fallbackSrv.URL + "/latest"},
	)
	_, err := chain.Get(context.Background(), domain.NewPair("USD", "EUR"))
	require.ErrorIs(t, err, domain.ErrProviderExhausted)
	require.EqualError(t, err, "frankfurter: status 502")
}
