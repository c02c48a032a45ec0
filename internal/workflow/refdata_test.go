package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
)

func TestFXGateFetchesListsOnce(t *testing.T) {
	src := &fakeFXSource{buy: currencies("EUR"), sell: currencies("USD")}
	gate := NewFXGate(src, &domain.Session{Token: "tok"})
	ctx := context.Background()

	first, err := gate.Validate(ctx, "eur", "usd")
	require.NoError(t, err)
	second, err := gate.Validate(ctx, "EUR", "USD")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// One fetch per side, reused across validations.
	assert.Equal(t, 2, src.calls)
}

func TestFXGateReturnsMatchedEntries(t *testing.T) {
	buy := []domain.CurrencyInfo{{CurrencyCode: "EUR", CurrencyName: "Euro", Symbol: "€"}}
	sell := []domain.CurrencyInfo{{CurrencyCode: "USD", CurrencyName: "US Dollar", Symbol: "$"}}
	gate := NewFXGate(&fakeFXSource{buy: buy, sell: sell}, &domain.Session{})

	selection, err := gate.Validate(context.Background(), "eur", "usd")
	require.NoError(t, err)
	assert.Equal(t, "Euro", selection.Buy.CurrencyName)
	assert.Equal(t, "US Dollar", selection.Sell.CurrencyName)
}

func TestFXGateUnknownSellCurrency(t *testing.T) {
	gate := NewFXGate(&fakeFXSource{buy: currencies("EUR"), sell: currencies("USD", "GBP")}, &domain.Session{})

	_, err := gate.Validate(context.Background(), "EUR", "CHF")

	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureInvalidSelection, wErr.Kind)
	assert.Contains(t, wErr.Error(), "USD, GBP")
}

func TestPaymentGateValidatesAgainstList(t *testing.T) {
	src := &fakePaymentSource{currencies: currencies("USD", "EUR")}
	gate := NewPaymentGate(src, &domain.Session{})
	ctx := context.Background()

	info, err := gate.Validate(ctx, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", info.CurrencyCode)

	_, err = gate.Validate(ctx, "JPY")
	var wErr *Error
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, FailureInvalidSelection, wErr.Kind)

	assert.Equal(t, 1, src.calls)
}
