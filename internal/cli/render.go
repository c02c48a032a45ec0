package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// PrintUserSettings renders the post-login profile summary.
func PrintUserSettings(w io.Writer, session *domain.Session) {
	s := session.Settings
	fmt.Fprintln(w, "\nLogin successful!")
	fmt.Fprintf(w, "  User:          %s\n", s.UserName)
	fmt.Fprintf(w, "  Name:          %s %s\n", s.FirstName, s.LastName)
	fmt.Fprintf(w, "  Organization:  %s\n", s.OrganizationName)
	fmt.Fprintf(w, "  Customer ID:   %s\n", s.OrganizationID)
	fmt.Fprintf(w, "  Email:         %s\n", s.EmailAddress)
	fmt.Fprintf(w, "  Branch:        %s\n", s.BranchName)
	fmt.Fprintf(w, "  Base Currency: %s\n", s.BaseCurrencyCode)
	fmt.Fprintf(w, "  Token Expires: %d min\n", session.ExpiresInMinutes)
}

// PrintCurrencyTable renders a currency list in the fixed-width layout used
// by all three currency reports.
func PrintCurrencyTable(w io.Writer, currencies []domain.CurrencyInfo) {
	if len(currencies) == 0 {
		fmt.Fprintln(w, "  No currencies available.")
		return
	}

	fmt.Fprintf(w, "  %-8s%-8s%-20s%6s%12s%10s%10s\n", "Code", "Symbol", "Name", "Scale", "Rate Scale", "Cutoff", "Settle +")
	fmt.Fprintf(w, "  %s\n", dashes(74))
	for _, c := range currencies {
		fmt.Fprintf(w, "  %-8s%-8s%-20s%6d%12d%10s%10d\n",
			c.CurrencyCode, c.Symbol, c.CurrencyName,
			c.CurrencyAmountScale, c.CurrencyRateScale,
			c.PaymentCutoffTime, c.SettlementDaysToAdd)
	}
	fmt.Fprintf(w, "  Total: %d currency(ies)\n", len(currencies))
}

// PrintBalances renders the balances report.
func PrintBalances(w io.Writer, balances []domain.Balance) {
	fmt.Fprintln(w, "\n--- Current Wallet Balances ---")
	fmt.Fprintf(w, "%-12s%14s%14s%14s\n", "Currency", "Available", "Reserved", "Total")
	fmt.Fprintln(w, dashes(54))
	for _, b := range balances {
		fmt.Fprintf(w, "%-12s%14s%14s%14s\n",
			b.CurrencyCode,
			b.BalanceAvailable.StringFixed(2),
			b.ActiveHoldsTotal.StringFixed(2),
			b.Balance.StringFixed(2))
	}
}

// PrintStatement renders the statement header, entries, and totals.
func PrintStatement(w io.Writer, statement *domain.Statement, start, end time.Time) {
	fmt.Fprintln(w, "\n"+dashes(60))
	fmt.Fprintln(w, "              ACCOUNT STATEMENT")
	fmt.Fprintln(w, dashes(60))

	info := statement.AccountInfo
	currency := info.AccountCurrencyCode
	fmt.Fprintln(w, "\nAccount Details:")
	fmt.Fprintf(w, "  Account ID:        %s\n", info.AccountID)
	fmt.Fprintf(w, "  Account Number:    %s\n", info.AccountNumber)
	fmt.Fprintf(w, "  Account Name:      %s\n", info.AccountName)
	fmt.Fprintf(w, "  Currency:          %s\n", currency)
	fmt.Fprintf(w, "\n  Beginning Balance: %s %s\n", info.BeginningBalance.StringFixed(2), currency)
	fmt.Fprintf(w, "  Ending Balance:    %s %s\n", info.EndingBalance.StringFixed(2), currency)

	if len(statement.Entries) == 0 {
		fmt.Fprintln(w, "\n  No transactions found for this period.")
		return
	}

	fmt.Fprintf(w, "\nStatement Entries (%s - %s):\n", start.Format("02 Jan 2006"), end.Format("02 Jan 2006"))
	fmt.Fprintf(w, "  Total Entries: %d\n\n", len(statement.Entries))

	fmt.Fprintf(w, "%-18s%-16s%-30s%12s%12s%12s\n", "Date", "Type", "Description", "Debit", "Credit", "Balance")
	fmt.Fprintln(w, dashes(100))

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, entry := range statement.Entries {
		debit := entry.DebitAmount.Decimal
		credit := entry.CreditAmount.Decimal
		totalDebit = totalDebit.Add(debit)
		totalCredit = totalCredit.Add(credit)

		debitStr := ""
		if debit.Sign() > 0 {
			debitStr = debit.StringFixed(2)
		}
		creditStr := ""
		if credit.Sign() > 0 {
			creditStr = credit.StringFixed(2)
		}

		fmt.Fprintf(w, "%-18s%-16s%-30s%12s%12s%12s\n",
			entryDate(entry.TransactionTime), entry.TransactionType, entry.Description,
			debitStr, creditStr, entry.RunningBalance.StringFixed(2))
	}

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  Total Debits:  %s %s\n", totalDebit.StringFixed(2), currency)
	fmt.Fprintf(w, "  Total Credits: %s %s\n", totalCredit.StringFixed(2), currency)
	fmt.Fprintf(w, "  Net Change:    %s %s\n", totalCredit.Sub(totalDebit).StringFixed(2), currency)
}

var entryTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func entryDate(raw string) string {
	for _, format := range entryTimeFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return "N/A"
}

func dashes(n int) string {
	return strings.Repeat("-", n)
}
