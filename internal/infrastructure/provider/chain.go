package provider

import (
	"context"
	"errors"
	"time"

	"exchange-service/internal/application"
	"exchange-service/internal/domain"

	"go.uber.org/zap"
)

var errNoProviders = errors.New("no rate providers configured")

// Attempt is the outcome of asking a single provider.
type Attempt struct {
	Provider string
	Rate     domain.Rate
	Err      error
}

func (a Attempt) OK() bool { return a.Err == nil }

// Chain asks its providers in order and returns the first rate obtained.
// Each provider is tried once.
type Chain struct {
	providers []application.RateProvider
	log       *zap.Logger
}

var _ application.RateProvider = (*Chain)(nil)

func NewChain(log *zap.Logger, providers ...application.RateProvider) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{providers: providers, log: log}
}

func (c *Chain) Name() string { return "chain" }

// Get returns a *domain.ExhaustedError holding the last failure when no provider succeeds.
func (c *Chain) Get(ctx context.Context, pair domain.Pair) (domain.Rate, error) {
	last := Attempt{Err: errNoProviders}
	for i, p := range c.providers {
		last = attempt(ctx, p, pair)
		if last.OK() {
			if i > 0 {
				c.log.Info("provider.fallback_used",
					zap.String("provider", last.Provider),
					zap.String("pair", pair.String()))
			}
			return last.Rate, nil
		}
		c.log.Warn("provider.attempt_failed",
			zap.String("provider", last.Provider),
			zap.String("pair", pair.String()),
			zap.Error(last.Err))
	}
	exhaustedTotal.Inc()
	return domain.Rate{}, &domain.ExhaustedError{Last: last.Err}
}

func attempt(ctx context.Context, p application.RateProvider, pair domain.Pair) Attempt {
	name := p.Name()
	started := time.Now()
	rate, err := p.Get(ctx, pair)
	requestDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	requestsTotal.WithLabelValues(name, outcome).Inc()
	return Attempt{Provider: name, Rate: rate, Err: err}
}
