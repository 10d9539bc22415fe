package bootstrap

import (
	"net"
	"net/http"

	"exchange-service/internal/application"
	"exchange-service/internal/config"
	infraconfig "exchange-service/internal/infrastructure/config"
	httpserver "exchange-service/internal/infrastructure/http"
	"exchange-service/internal/infrastructure/httpx"
	"exchange-service/internal/infrastructure/logx"
	"exchange-service/internal/infrastructure/provider"

	"go.uber.org/zap"
)

const fakeMid = 1.2345

// App is everything cmd/api needs to run.
type App struct {
	Server *http.Server
	Log    *zap.Logger
}

func ProvideConfig() (config.Config, error) { return config.Load() }

func ProvideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	log, err := logx.New(cfg.LogLevel)
	if err != nil {
		return nil, func() {}, err
	}
	log = log.With(zap.String("env", cfg.Env))
	return log, func() { _ = log.Sync() }, nil
}

func ProvideHTTPClient() *httpx.Client {
	return httpx.New(infraconfig.DefaultProviderTimeout)
}

// ProvideRateProvider wires the primary provider and the fixed fallback into a chain.
func ProvideRateProvider(cfg config.Config, client *httpx.Client, log *zap.Logger) application.RateProvider {
	if cfg.Provider == "fake" {
		log.Warn("using fake rate provider", zap.Float64("mid", fakeMid))
		return provider.NewFake(fakeMid)
	}
	primary := &provider.ExchangeRateHost{
		BaseURL: cfg.ProviderBaseURL,
		Client:  client,
	}
	if cfg.APIKeyEnabled() {
		primary.APIKey = cfg.ProviderAPIKey
		primary.APIKeyHeader = cfg.ProviderAPIKeyHeader
	}
	fallback := &provider.Frankfurter{
		URL:    infraconfig.FrankfurterLatestURL,
		Client: client,
	}
	return provider.NewChain(log.Named("provider"), primary, fallback)
}

func ProvideQuoteService(cfg config.Config, rp application.RateProvider) *application.QuoteService {
	return application.NewQuoteService(rp, cfg.SpreadBPS)
}

func ProvideHTTPServer(cfg config.Config, srv *httpserver.Server) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Port),
		Handler:           httpserver.NewRouter(srv),
		ReadHeaderTimeout: infraconfig.DefaultReadHeaderTimeout,
	}
}
