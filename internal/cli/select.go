package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
)

// SelectAccount lists the customer's accounts and prompts for a 1-based pick.
func (p *Prompter) SelectAccount(balances []domain.Balance) (domain.Balance, error) {
	fmt.Fprintln(p.out, "\nAvailable Accounts:")
	for i, b := range balances {
		fmt.Fprintf(p.out, "  %d. %-8s (Account: %s) - Balance: %s\n",
			i+1, b.CurrencyCode, b.AccountNumber, b.BalanceAvailable.StringFixed(2))
	}

	fmt.Fprintln(p.out, "\n=== SELECT ACCOUNT ===")
	raw, err := p.ReadLine(fmt.Sprintf("Enter account number (1-%d): ", len(balances)))
	if err != nil {
		return domain.Balance{}, err
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 1 || index > len(balances) {
		return domain.Balance{}, fmt.Errorf("invalid account selection %q", raw)
	}

	selected := balances[index-1]
	fmt.Fprintf(p.out, "Selected: %s (Account ID: %s)\n", selected.CurrencyCode, selected.AccountID)
	return selected, nil
}

// SelectDateRange prompts for one of the preset ranges or a custom range.
func (p *Prompter) SelectDateRange(now time.Time) (time.Time, time.Time, error) {
	fmt.Fprintln(p.out, "\n=== SELECT DATE RANGE ===")
	fmt.Fprintln(p.out, "Options:")
	fmt.Fprintln(p.out, "  1. Last 7 days")
	fmt.Fprintln(p.out, "  2. Last 30 days")
	fmt.Fprintln(p.out, "  3. Last 90 days")
	fmt.Fprintln(p.out, "  4. Custom date range")

	option, err := p.ReadLine("Select option (1-4): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	switch option {
	case "1":
		return now.AddDate(0, 0, -7), now, nil
	case "2":
		return now.AddDate(0, 0, -30), now, nil
	case "3":
		return now.AddDate(0, 0, -90), now, nil
	case "4":
		return p.customDateRange()
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid option %q", option)
	}
}

func (p *Prompter) customDateRange() (time.Time, time.Time, error) {
	startStr, err := p.ReadLine("  Start Date (yyyy-MM-dd): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endStr, err := p.ReadLine("  End Date (yyyy-MM-dd): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date format %q, use yyyy-MM-dd", startStr)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date format %q, use yyyy-MM-dd", endStr)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date cannot be after end date")
	}
	return start, end, nil
}
