package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
)

// FXCurrencySource supplies the server-published FX currency lists.
type FXCurrencySource interface {
	FXCurrencies(ctx context.Context, session *domain.Session, side string) ([]domain.CurrencyInfo, error)
}

// PaymentCurrencySource supplies the server-published payment currency list.
type PaymentCurrencySource interface {
	PaymentCurrencies(ctx context.Context, session *domain.Session) ([]domain.CurrencyInfo, error)
}

// FXSelection is the gate-approved pair of currencies for an FX deal.
type FXSelection struct {
	Buy  domain.CurrencyInfo
	Sell domain.CurrencyInfo
}

// FXGate validates proposed FX deal currencies against the live Buy and Sell
// lists. Lists are fetched once per gate instance and the snapshot is reused,
// so repeated validation against one gate is idempotent.
type FXGate struct {
	src     FXCurrencySource
	session *domain.Session

	fetched bool
	buy     []domain.CurrencyInfo
	sell    []domain.CurrencyInfo
}

func NewFXGate(src FXCurrencySource, session *domain.Session) *FXGate {
	return &FXGate{src: src, session: session}
}

// Lists returns the Buy and Sell currency lists, fetching them on first use.
func (g *FXGate) Lists(ctx context.Context) ([]domain.CurrencyInfo, []domain.CurrencyInfo, error) {
	if err := g.fetch(ctx); err != nil {
		return nil, nil, err
	}
	return g.buy, g.sell, nil
}

// Validate checks that buyCode and sellCode appear in the corresponding
// lists. Absence is a hard rejection naming the allowed set.
func (g *FXGate) Validate(ctx context.Context, buyCode, sellCode string) (*FXSelection, error) {
	if err := g.fetch(ctx); err != nil {
		return nil, err
	}

	buyCode = domain.NormalizeCurrencyCode(buyCode)
	sellCode = domain.NormalizeCurrencyCode(sellCode)

	buy, ok := domain.FindCurrency(g.buy, buyCode)
	if !ok {
		return nil, newError(FailureInvalidSelection, fmt.Sprintf(
			"%s is not available for buying. Choose from: %s",
			buyCode, strings.Join(domain.CurrencyCodes(g.buy), ", ")))
	}

	sell, ok := domain.FindCurrency(g.sell, sellCode)
	if !ok {
		return nil, newError(FailureInvalidSelection, fmt.Sprintf(
			"%s is not available for selling. Choose from: %s",
			sellCode, strings.Join(domain.CurrencyCodes(g.sell), ", ")))
	}

	return &FXSelection{Buy: buy, Sell: sell}, nil
}

func (g *FXGate) fetch(ctx context.Context) error {
	if g.fetched {
		return nil
	}
	buy, err := g.src.FXCurrencies(ctx, g.session, "Buy")
	if err != nil {
		return wrapError(FailureReferenceData, err)
	}
	sell, err := g.src.FXCurrencies(ctx, g.session, "Sell")
	if err != nil {
		return wrapError(FailureReferenceData, err)
	}
	g.buy, g.sell, g.fetched = buy, sell, true
	return nil
}

// PaymentGate validates a payment currency against the live payment currency
// list, with the same snapshot semantics as FXGate.
type PaymentGate struct {
	src     PaymentCurrencySource
	session *domain.Session

	fetched    bool
	currencies []domain.CurrencyInfo
}

func NewPaymentGate(src PaymentCurrencySource, session *domain.Session) *PaymentGate {
	return &PaymentGate{src: src, session: session}
}

// List returns the payment currency list, fetching it on first use.
func (g *PaymentGate) List(ctx context.Context) ([]domain.CurrencyInfo, error) {
	if err := g.fetch(ctx); err != nil {
		return nil, err
	}
	return g.currencies, nil
}

// Validate checks that code appears in the payment currency list.
func (g *PaymentGate) Validate(ctx context.Context, code string) (domain.CurrencyInfo, error) {
	if err := g.fetch(ctx); err != nil {
		return domain.CurrencyInfo{}, err
	}

	code = domain.NormalizeCurrencyCode(code)
	info, ok := domain.FindCurrency(g.currencies, code)
	if !ok {
		return domain.CurrencyInfo{}, newError(FailureInvalidSelection, fmt.Sprintf(
			"%s is not available for payments. Choose from: %s",
			code, strings.Join(domain.CurrencyCodes(g.currencies), ", ")))
	}
	return info, nil
}

func (g *PaymentGate) fetch(ctx context.Context) error {
	if g.fetched {
		return nil
	}
	currencies, err := g.src.PaymentCurrencies(ctx, g.session)
	if err != nil {
		return wrapError(FailureReferenceData, err)
	}
	g.currencies, g.fetched = currencies, true
	return nil
}
