package provider

import (
	"context"
	"time"

	"exchange-service/internal/application"
	"exchange-service/internal/domain"
)

// Ensure Fake implements application.RateProvider.
var _ application.RateProvider = (*Fake)(nil)

// Fake returns a constant mid rate; used for local runs with PROVIDER=fake.
type Fake struct {
	mid float64
}

func NewFake(mid float64) *Fake { return &Fake{mid: mid} }

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Get(_ context.Context, _ domain.Pair) (domain.Rate, error) {
	return domain.Rate{
		Mid:    f.mid,
		AsOf:   time.Now().UTC().Truncate(time.Second),
		Source: f.Name(),
	}, nil
}
