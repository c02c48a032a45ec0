package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrencyCode(t *testing.T) {
	assert.Equal(t, "EUR", NormalizeCurrencyCode(" eur "))
	assert.Equal(t, "USD", NormalizeCurrencyCode("UsD"))
	assert.Equal(t, "", NormalizeCurrencyCode("  "))
}

func TestFindCurrency(t *testing.T) {
	list := []CurrencyInfo{
		{CurrencyCode: "EUR", CurrencyName: "Euro"},
		{CurrencyCode: "USD", CurrencyName: "US Dollar"},
	}

	info, ok := FindCurrency(list, "usd")
	assert.True(t, ok)
	assert.Equal(t, "US Dollar", info.CurrencyName)

	_, ok = FindCurrency(list, "JPY")
	assert.False(t, ok)
}

func TestCurrencyCodesPreservesOrder(t *testing.T) {
	list := []CurrencyInfo{{CurrencyCode: "GBP"}, {CurrencyCode: "EUR"}}
	assert.Equal(t, []string{"GBP", "EUR"}, CurrencyCodes(list))
}
