package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"stockquote-gateway/internal/application"
	"stockquote-gateway/internal/domain"
	"stockquote-gateway/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	stockPrefix     = "/stock/"
	timestampLayout = "2006-01-02T15:04:05.000000"
)

type Server struct {
	svc *application.QuoteService
	log *zap.Logger
}

func NewServer(svc *application.QuoteService, log *zap.Logger) *Server {
	if log == nil {
		log = logx.L()
	}
	return &Server{svc: svc, log: log}
}

type quoteResponse struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	PreviousClose float64 `json:"previousClose"`
	Volume        int64   `json:"volume"`
	Timestamp     string  `json:"timestamp"`
	MarketState   string  `json:"marketState"`
}

type errorRecord struct {
	Error   string `json:"error"`
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
}

// GetStockQuote serves GET /stock/{symbol}. The symbol is the raw remainder
// of the path; every failure is reported as 500 with an errorRecord.
func (s *Server) GetStockQuote(w http.ResponseWriter, r *http.Request) {
	symbol := domain.NormalizeSymbol(strings.TrimPrefix(r.URL.Path, stockPrefix))

	q, err := s.svc.GetQuote(r.Context(), symbol.String())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorRecord{
			Error:   err.Error(),
			Symbol:  symbol.String(),
			Message: "Failed to fetch data for " + symbol.String(),
		})
		return
	}
	writeJSON(w, http.StatusOK, toResponse(q))
}

func toResponse(q domain.Quote) quoteResponse {
	return quoteResponse{
		Symbol:        q.Symbol.String(),
		Price:         q.Price.InexactFloat64(),
		Change:        q.Change.InexactFloat64(),
		ChangePercent: q.ChangePercent.InexactFloat64(),
		Open:          q.Open.InexactFloat64(),
		High:          q.High.InexactFloat64(),
		Low:           q.Low.InexactFloat64(),
		PreviousClose: q.PreviousClose.InexactFloat64(),
		Volume:        q.Volume,
		Timestamp:     q.GeneratedAt.Format(timestampLayout),
		MarketState:   q.MarketState,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
