package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"exchange-service/internal/application"
	"exchange-service/internal/domain"
	"exchange-service/internal/infrastructure/http/openapi"
	"exchange-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	detailMissingIdentity = "Missing id-account header"
	detailProviderPrefix  = "FX provider error: "
)

type Server struct {
	svc *application.QuoteService
	log *zap.Logger
}

var _ openapi.ServerInterface = (*Server)(nil)

func NewServer(svc *application.QuoteService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log}
}

func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, openapi.HealthStatus{Status: "ok"})
}

func (s *Server) GetExchange(w http.ResponseWriter, r *http.Request, from string, to string, params openapi.GetExchangeParams) {
	q, err := s.svc.Quote(r.Context(), application.QuoteRequest{
		From:      from,
		To:        to,
		AccountID: params.IdAccount,
		UserID:    params.UserId,
	})
	if err != nil {
		s.quoteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, openapi.ExchangeQuote{
		Sell:      q.Sell,
		Buy:       q.Buy,
		Date:      q.Date,
		IdAccount: q.Account,
	})
}

func (s *Server) quoteError(w http.ResponseWriter, r *http.Request, err error) {
	log := logx.FromContext(r.Context())

	var exhausted *domain.ExhaustedError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, detailMissingIdentity)
	case errors.As(err, &exhausted):
		log.Warn("quote.providers_exhausted", zap.Error(err))
		writeError(w, http.StatusBadGateway, detailProviderPrefix+exhausted.Error())
	default:
		log.Error("quote.failed", zap.Error(err))
		internalError(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, openapi.ErrorDetail{Detail: detail})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
