package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBalances() []domain.Balance {
	return []domain.Balance{
		{CurrencyCode: "USD", AccountID: "A-1", AccountNumber: "001", BalanceAvailable: decimal.NewFromInt(100)},
		{CurrencyCode: "EUR", AccountID: "A-2", AccountNumber: "002", BalanceAvailable: decimal.NewFromInt(50)},
	}
}

func TestSelectAccount(t *testing.T) {
	p := NewPrompter(strings.NewReader("2\n"), &bytes.Buffer{})

	selected, err := p.SelectAccount(testBalances())
	require.NoError(t, err)
	assert.Equal(t, "A-2", selected.AccountID)
}

func TestSelectAccountInvalid(t *testing.T) {
	for _, input := range []string{"0\n", "3\n", "x\n", "\n"} {
		p := NewPrompter(strings.NewReader(input), &bytes.Buffer{})
		_, err := p.SelectAccount(testBalances())
		assert.Error(t, err, "input %q", input)
	}
}

func TestSelectDateRangePresets(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	p := NewPrompter(strings.NewReader("2\n"), &bytes.Buffer{})
	start, end, err := p.SelectDateRange(now)
	require.NoError(t, err)
	assert.Equal(t, now, end)
	assert.Equal(t, now.AddDate(0, 0, -30), start)
}

func TestSelectDateRangeCustom(t *testing.T) {
	p := NewPrompter(strings.NewReader("4\n2024-01-01\n2024-02-01\n"), &bytes.Buffer{})
	start, end, err := p.SelectDateRange(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-02-01", end.Format("2006-01-02"))
}

func TestSelectDateRangeCustomStartAfterEnd(t *testing.T) {
	p := NewPrompter(strings.NewReader("4\n2024-03-01\n2024-02-01\n"), &bytes.Buffer{})
	_, _, err := p.SelectDateRange(time.Now())
	assert.Error(t, err)
}

func TestSelectDateRangeInvalidOption(t *testing.T) {
	p := NewPrompter(strings.NewReader("9\n"), &bytes.Buffer{})
	_, _, err := p.SelectDateRange(time.Now())
	assert.Error(t, err)
}
