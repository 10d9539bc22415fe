package application

import (
	"context"

	"exchange-service/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

// RateProvider returns a mid rate for a pair.
type RateProvider interface {
	Name() string
	Get(ctx context.Context, pair domain.Pair) (domain.Rate, error)
}
