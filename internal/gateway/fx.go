package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// FX currency list sides.
const (
	SideBuy  = "Buy"
	SideSell = "Sell"
)

type currencyListResponse struct {
	Currencies []domain.CurrencyInfo `json:"currencies"`
}

// FXCurrencies fetches the FX currency list for one side of a deal.
func (c *Client) FXCurrencies(ctx context.Context, session *domain.Session, side string) ([]domain.CurrencyInfo, error) {
	if side != SideBuy && side != SideSell {
		return nil, fmt.Errorf("invalid FX currency list side %q", side)
	}
	var resp currencyListResponse
	op := "fx currency list " + side
	if err := c.do(ctx, op, http.MethodGet, "/FXCurrencyList/"+side, nil, session.Token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Currencies, nil
}

// QuoteRequest is the input for a spot FX deal quote.
type QuoteRequest struct {
	BuyCurrencyCode    string
	SellCurrencyCode   string
	Amount             decimal.Decimal
	AmountCurrencyCode string
}

type quoteRequestBody struct {
	BuyCurrencyCode         string  `json:"buyCurrencyCode"`
	SellCurrencyCode        string  `json:"sellCurrencyCode"`
	Amount                  float64 `json:"amount"`
	AmountCurrencyCode      string  `json:"amountCurrencyCode"`
	DealType                string  `json:"dealType"`
	WindowOpenDate          string  `json:"windowOpenDate"`
	FinalValueDate          string  `json:"finalValueDate"`
	IsForCurrencyCalculator bool    `json:"isForCurrencyCalculator"`
}

type quoteEnvelope struct {
	Problems json.RawMessage      `json:"problems"`
	Quote    *domain.PendingQuote `json:"quote"`
}

// RequestQuote obtains a priced, time-boxed quote for a spot FX conversion.
// A problems payload is returned as a *Rejection, not a transport error.
func (c *Client) RequestQuote(ctx context.Context, session *domain.Session, req QuoteRequest) (*domain.PendingQuote, error) {
	body := quoteRequestBody{
		BuyCurrencyCode:    req.BuyCurrencyCode,
		SellCurrencyCode:   req.SellCurrencyCode,
		Amount:             req.Amount.InexactFloat64(),
		AmountCurrencyCode: req.AmountCurrencyCode,
		DealType:           domain.DealTypeSpot,
	}

	const op = "request quote"
	var envelope quoteEnvelope
	if err := c.do(ctx, op, http.MethodPost, "/FXDealQuote", nil, session.Token, body, &envelope); err != nil {
		return nil, err
	}
	if rejected(envelope.Problems) {
		return nil, &Rejection{Op: op, Problems: envelope.Problems}
	}
	if envelope.Quote == nil || envelope.Quote.QuoteID == "" {
		return nil, &MalformedError{Op: op, Missing: "quote"}
	}
	return envelope.Quote, nil
}

type bookEnvelope struct {
	Problems      json.RawMessage     `json:"problems"`
	FXDepositData *domain.SettledDeal `json:"fxDepositData"`
}

// BookQuote performs the irreversible book-and-deposit call for a quote.
// It must be invoked at most once per quote and is never retried.
func (c *Client) BookQuote(ctx context.Context, session *domain.Session, quoteID string) (*domain.SettledDeal, error) {
	const op = "book deal"
	var envelope bookEnvelope
	path := "/FXDealQuote/" + quoteID + "/BookAndInstantDeposit"
	if err := c.do(ctx, op, http.MethodPatch, path, nil, session.Token, nil, &envelope); err != nil {
		return nil, err
	}
	if rejected(envelope.Problems) {
		return nil, &Rejection{Op: op, Problems: envelope.Problems}
	}
	if envelope.FXDepositData == nil {
		return nil, &MalformedError{Op: op, Missing: "fxDepositData"}
	}
	return envelope.FXDepositData, nil
}
