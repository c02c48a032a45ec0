package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/ayo6706/wallet-fx-cli/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFXSource struct {
	buy   []domain.CurrencyInfo
	sell  []domain.CurrencyInfo
	err   error
	calls int
}

func (f *fakeFXSource) FXCurrencies(ctx context.Context, session *domain.Session, side string) ([]domain.CurrencyInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if side == "Buy" {
		return f.buy, nil
	}
	return f.sell, nil
}

type fakeDealGateway struct {
	quote      *domain.PendingQuote
	quoteErr   error
	settled    *domain.SettledDeal
	bookErr    error
	quoteCalls int
	bookCalls  int
}

func (f *fakeDealGateway) RequestQuote(ctx context.Context, session *domain.Session, req gateway.QuoteRequest) (*domain.PendingQuote, error) {
	f.quoteCalls++
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return f.quote, nil
}

func (f *fakeDealGateway) BookQuote(ctx context.Context, session *domain.Session, quoteID string) (*domain.SettledDeal, error) {
	f.bookCalls++
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return f.settled, nil
}

func currencies(codes ...string) []domain.CurrencyInfo {
	out := make([]domain.CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, domain.CurrencyInfo{CurrencyCode: code, CurrencyName: code})
	}
	return out
}

func confirmWith(answer bool) Confirmer {
	return ConfirmerFunc(func(prompt string) (bool, error) { return answer, nil })
}

func testQuote() *domain.PendingQuote {
	return &domain.PendingQuote{
		QuoteID:          "Q-1",
		QuoteReference:   "FXQ-2024-001",
		Rate:             decimal.RequireFromString("1.0845"),
		BuyAmount:        decimal.RequireFromString("92.21"),
		BuyCurrencyCode:  "EUR",
		SellAmount:       decimal.RequireFromString("100"),
		SellCurrencyCode: "USD",
		DealType:         domain.DealTypeSpot,
		ExpirationTime:   time.Now().Add(time.Minute).Format(time.RFC3339),
	}
}

func newDealWorkflow(src *fakeFXSource, gw *fakeDealGateway, confirm Confirmer) *DealWorkflow {
	session := &domain.Session{Token: "tok", CustomerID: "cust-1"}
	gate := NewFXGate(src, session)
	return NewDealWorkflow(gate, gw, session, confirm, io.Discard, zap.NewNop())
}

func TestDealDeclinedConfirmationCancelsWithoutCommit(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR", "GBP"), sell: currencies("USD")}
	gw := &fakeDealGateway{quote: testQuote()}
	wf := newDealWorkflow(src, gw, confirmWith(false))

	outcome, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, StateCancelled, outcome.State)
	assert.Equal(t, "EUR", outcome.Quote.BuyCurrencyCode)
	assert.Equal(t, 1, gw.quoteCalls)
	assert.Equal(t, 0, gw.bookCalls)
}

func TestDealAmountCurrencyOutsidePairRejectedBeforeAnyCall(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{quote: testQuote()}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "GBP",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureInvalidSelection, wErr.Kind)
	assert.Contains(t, wErr.Error(), "EUR")
	assert.Contains(t, wErr.Error(), "USD")
	assert.Equal(t, 0, src.calls)
	assert.Equal(t, 0, gw.quoteCalls)
}

func TestDealInvalidAmountsRejectedBeforeAnyCall(t *testing.T) {
	for _, amount := range []string{"0", "-5", "abc", "1,000"} {
		t.Run(amount, func(t *testing.T) {
			src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
			gw := &fakeDealGateway{quote: testQuote()}
			wf := newDealWorkflow(src, gw, confirmWith(true))

			_, err := wf.Run(context.Background(), DealInput{
				BuyCurrency:    "EUR",
				SellCurrency:   "USD",
				Amount:         amount,
				AmountCurrency: "USD",
			})

			var wErr *Error
			require.ErrorAs(t, err, &wErr)
			assert.Equal(t, FailureInvalidSelection, wErr.Kind)
			assert.Equal(t, 0, src.calls)
			assert.Equal(t, 0, gw.quoteCalls)
		})
	}
}

func TestDealUnknownBuyCurrencyEnumeratesAllowedSet(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR", "GBP"), sell: currencies("USD")}
	gw := &fakeDealGateway{quote: testQuote()}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "JPY",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureInvalidSelection, wErr.Kind)
	assert.Contains(t, wErr.Error(), "EUR, GBP")
	assert.Equal(t, 0, gw.quoteCalls)
}

func TestDealReferenceDataUnavailable(t *testing.T) {
	src := &fakeFXSource{err: errors.New("connection refused")}
	gw := &fakeDealGateway{}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureReferenceData, wErr.Kind)
	assert.Equal(t, 0, gw.quoteCalls)
}

func TestDealQuoteProblemsSurfacedAsQuoteRejected(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{quoteErr: &gateway.Rejection{
		Op:       "request quote",
		Problems: json.RawMessage(`["rate unavailable for pair"]`),
	}}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureQuoteRejected, wErr.Kind)
	assert.Contains(t, wErr.Error(), "rate unavailable for pair")
	assert.Equal(t, 0, gw.bookCalls)
}

func TestDealAffirmedConfirmationCommitsExactlyOnce(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{
		quote:   testQuote(),
		settled: &domain.SettledDeal{FXDealID: "D-9", FXDealReference: "FXD-2024-009"},
	}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	outcome, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "eur",
		SellCurrency:   "usd",
		Amount:         "100",
		AmountCurrency: "usd",
	})

	require.NoError(t, err)
	assert.Equal(t, StateCommitted, outcome.State)
	assert.Equal(t, "D-9", outcome.Settled.FXDealID)
	assert.Equal(t, 1, gw.bookCalls)
}

func TestDealCommitRejectionReportedWithDetailAndNotRetried(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{
		quote: testQuote(),
		bookErr: &gateway.Rejection{
			Op:       "book deal",
			Problems: json.RawMessage(`["quote no longer bookable"]`),
		},
	}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureCommitRejected, wErr.Kind)
	assert.Contains(t, wErr.Error(), "quote no longer bookable")
	assert.Equal(t, 1, gw.bookCalls)
}

func TestDealExpiredQuotePreemptedBeforeCommit(t *testing.T) {
	quote := testQuote()
	quote.ExpirationTime = "2024-01-02T10:00:00Z"

	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{quote: quote}
	wf := newDealWorkflow(src, gw, confirmWith(true))
	wf.now = func() time.Time { return time.Date(2024, 1, 2, 10, 5, 0, 0, time.UTC) }

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureStaleQuote, wErr.Kind)
	assert.Equal(t, 0, gw.bookCalls)
}

func TestDealUnparseableExpirationDefersToServer(t *testing.T) {
	quote := testQuote()
	quote.ExpirationTime = "soon"

	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{quote: quote, settled: &domain.SettledDeal{FXDealID: "D-1"}}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	outcome, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, StateCommitted, outcome.State)
	assert.Equal(t, 1, gw.bookCalls)
}

func TestDealTransportFailureAtQuoteStep(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gw := &fakeDealGateway{quoteErr: &gateway.TransportError{Op: "request quote", StatusCode: 503}}
	wf := newDealWorkflow(src, gw, confirmWith(true))

	_, err := wf.Run(context.Background(), DealInput{
		BuyCurrency:    "EUR",
		SellCurrency:   "USD",
		Amount:         "100",
		AmountCurrency: "USD",
	})

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureTransport, wErr.Kind)
}
