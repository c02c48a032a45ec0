package domain

import "strings"

// CurrencyInfo is one entry of a server-published currency list. The snapshot
// is fetched fresh per workflow run and discarded afterwards.
type CurrencyInfo struct {
	CurrencyCode        string `json:"currencyCode"`
	CurrencyName        string `json:"currencyName"`
	Symbol              string `json:"symbol"`
	CurrencyAmountScale int    `json:"currencyAmountScale"`
	CurrencyRateScale   int    `json:"currencyRateScale"`
	PaymentCutoffTime   string `json:"paymentCutoffTime"`
	SettlementDaysToAdd int    `json:"settlementDaysToAdd"`
}

// NormalizeCurrencyCode upper-cases and trims a user-supplied currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CurrencyCodes extracts the codes from a currency list, in list order.
func CurrencyCodes(currencies []CurrencyInfo) []string {
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, c.CurrencyCode)
	}
	return codes
}

// FindCurrency returns the list entry matching code, comparing normalized codes.
func FindCurrency(currencies []CurrencyInfo, code string) (CurrencyInfo, bool) {
	code = NormalizeCurrencyCode(code)
	for _, c := range currencies {
		if NormalizeCurrencyCode(c.CurrencyCode) == code {
			return c, true
		}
	}
	return CurrencyInfo{}, false
}
