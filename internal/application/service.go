package application

import (
	"context"

	"exchange-service/internal/domain"
)

type QuoteService struct {
	rates     RateProvider
	spreadBPS int
}

type QuoteRequest struct {
	From      string
	To        string
	AccountID *string
	UserID    *string
}

func NewQuoteService(rates RateProvider, spreadBPS int) *QuoteService {
	return &QuoteService{rates: rates, spreadBPS: spreadBPS}
}

// Quote resolves the caller, fetches the mid rate and prices both sides.
// It stops at the first failing step.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (domain.Quote, error) {
	account, err := ResolveIdentity(req.AccountID, req.UserID)
	if err != nil {
		return domain.Quote{}, err
	}

	rate, err := s.rates.Get(ctx, domain.NewPair(req.From, req.To))
	if err != nil {
		return domain.Quote{}, err
	}

	sell, buy := domain.ApplySpread(rate.Mid, s.spreadBPS)
	return domain.Quote{
		Sell:    sell,
		Buy:     buy,
		Date:    rate.AsOfString(),
		Account: account,
	}, nil
}
