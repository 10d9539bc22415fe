//go:build wireinject

package bootstrap

import (
	httpserver "exchange-service/internal/infrastructure/http"

	"github.com/google/wire"
)

var apiSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideHTTPClient,
	ProvideRateProvider,
	ProvideQuoteService,
	httpserver.NewServer,
	ProvideHTTPServer,
	wire.Struct(new(App), "*"),
)

// InitAPI builds the HTTP application and its cleanup.
func InitAPI() (*App, func(), error) {
	wire.Build(apiSet)
	return nil, nil, nil
}
