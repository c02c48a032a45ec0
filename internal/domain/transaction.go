package domain

import "github.com/shopspring/decimal"

// FX deals are always spot. Forward-dated deals are not supported.
const DealTypeSpot = "SPOT"

// PendingQuote is a priced, time-limited offer to exchange two currencies.
// It is consumed at most once by a book call, or discarded.
type PendingQuote struct {
	QuoteID          string          `json:"quoteId"`
	QuoteReference   string          `json:"quoteReference"`
	Symbol           string          `json:"symbol"`
	Rate             decimal.Decimal `json:"rate"`
	BuyAmount        decimal.Decimal `json:"buyAmount"`
	BuyCurrencyCode  string          `json:"buyCurrencyCode"`
	SellAmount       decimal.Decimal `json:"sellAmount"`
	SellCurrencyCode string          `json:"sellCurrencyCode"`
	DealType         string          `json:"dealType"`
	DealDate         string          `json:"dealDate"`
	ValueDate        string          `json:"valueDate"`
	ExpirationTime   string          `json:"expirationTime"`
}

// PendingPayment is a created-but-unconfirmed instant payment. Timestamp is
// the server-issued confirmation token and must be passed back unmodified.
type PendingPayment struct {
	PaymentID        string `json:"paymentId"`
	PaymentReference string `json:"paymentReference"`
	Timestamp        string `json:"timestamp"`
}

// SettledDeal is the irreversible result of booking an FX quote.
type SettledDeal struct {
	FXDealID         string `json:"fxDealId"`
	FXDealReference  string `json:"fxDealReference"`
	DepositID        string `json:"depositId"`
	DepositReference string `json:"depositReference"`
}

// SettledPayment is the irreversible result of posting an instant payment.
type SettledPayment struct {
	PaymentID        string
	PaymentReference string
}

// Balance is a single account balance line.
type Balance struct {
	CurrencyCode     string          `json:"currencyCode"`
	AccountID        string          `json:"accountId"`
	AccountNumber    string          `json:"accountNumber"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceAvailable decimal.Decimal `json:"balanceAvailable"`
	ActiveHoldsTotal decimal.Decimal `json:"activeHoldsTotal"`
}

// AccountInfo is the statement header for one account.
type AccountInfo struct {
	AccountID            string          `json:"accountId"`
	AccountNumber        string          `json:"accountNumber"`
	AccountName          string          `json:"accountName"`
	AccountCurrencyCode  string          `json:"accountCurrencyCode"`
	AccountCurrencyScale int             `json:"accountCurrencyScale"`
	BeginningBalance     decimal.Decimal `json:"beginningBalance"`
	EndingBalance        decimal.Decimal `json:"endingBalance"`
}

// StatementEntry is one statement line. Debit and credit may be null in the
// gateway payload, hence NullDecimal.
type StatementEntry struct {
	TransactionTime string              `json:"transactionTime"`
	TransactionType string              `json:"transactionType"`
	Description     string              `json:"description"`
	DebitAmount     decimal.NullDecimal `json:"debitAmount"`
	CreditAmount    decimal.NullDecimal `json:"creditAmount"`
	RunningBalance  decimal.Decimal     `json:"runningBalance"`
}

// Statement is a full account statement response.
type Statement struct {
	AccountInfo AccountInfo      `json:"accountInfo"`
	Entries     []StatementEntry `json:"entries"`
}
