package workflow

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/ayo6706/wallet-fx-cli/internal/gateway"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DealGateway is the slice of the gateway the FX deal workflow needs beyond
// reference data: the quote call and the single irreversible book call.
type DealGateway interface {
	RequestQuote(ctx context.Context, session *domain.Session, req gateway.QuoteRequest) (*domain.PendingQuote, error)
	BookQuote(ctx context.Context, session *domain.Session, quoteID string) (*domain.SettledDeal, error)
}

// DealInput is the raw user input for an FX conversion.
type DealInput struct {
	BuyCurrency    string `validate:"required"`
	SellCurrency   string `validate:"required"`
	Amount         string `validate:"required"`
	AmountCurrency string `validate:"required"`
}

// DealOutcome is the terminal result of one FX deal workflow run.
type DealOutcome struct {
	State   State
	Quote   *domain.PendingQuote
	Settled *domain.SettledDeal
}

// DealWorkflow drives the two-phase FX conversion: validate against
// reference data, obtain a quote, present it for explicit confirmation, and
// book it at most once.
type DealWorkflow struct {
	gate     *FXGate
	gw       DealGateway
	session  *domain.Session
	confirm  Confirmer
	out      io.Writer
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewDealWorkflow(gate *FXGate, gw DealGateway, session *domain.Session, confirm Confirmer, out io.Writer, logger *zap.Logger) *DealWorkflow {
	return &DealWorkflow{
		gate:     gate,
		gw:       gw,
		session:  session,
		confirm:  confirm,
		out:      out,
		log:      logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Run executes one FX deal workflow instance. A declined confirmation ends
// in StateCancelled with a nil error; every failure ends in StateFailed with
// a *Error carrying the failure kind.
func (w *DealWorkflow) Run(ctx context.Context, input DealInput) (*DealOutcome, error) {
	r := newRun(w.log, "fx_deal")

	// Local validation happens before any network call.
	if err := w.validate.Struct(input); err != nil {
		return nil, r.fail(newError(FailureInvalidSelection, "buy currency, sell currency, amount, and amount currency are all required"))
	}
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, r.fail(wrapError(FailureInvalidSelection, err))
	}

	buyCode := domain.NormalizeCurrencyCode(input.BuyCurrency)
	sellCode := domain.NormalizeCurrencyCode(input.SellCurrency)
	amountCode := domain.NormalizeCurrencyCode(input.AmountCurrency)
	if amountCode != buyCode && amountCode != sellCode {
		return nil, r.fail(newError(FailureInvalidSelection, fmt.Sprintf(
			"amount currency must be either %s or %s", buyCode, sellCode)))
	}

	sel, err := w.gate.Validate(ctx, buyCode, sellCode)
	if err != nil {
		return nil, r.fail(asWorkflowError(err))
	}
	r.log.Info("reference data validated",
		zap.String("buy", sel.Buy.CurrencyCode),
		zap.String("sell", sel.Sell.CurrencyCode),
	)
	if err := r.to(StateValidated); err != nil {
		return nil, err
	}

	quote, err := w.gw.RequestQuote(ctx, w.session, gateway.QuoteRequest{
		BuyCurrencyCode:    buyCode,
		SellCurrencyCode:   sellCode,
		Amount:             amount,
		AmountCurrencyCode: amountCode,
	})
	if err != nil {
		return nil, r.fail(classifyGateway(err, FailureQuoteRejected))
	}
	if err := r.to(StatePending); err != nil {
		return nil, err
	}
	w.printQuote(quote)

	ok, err := w.confirm.Confirm("\nBook this deal? (y/N): ")
	if err != nil {
		return nil, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		if err := r.to(StateCancelled); err != nil {
			return nil, err
		}
		fmt.Fprintln(w.out, "Deal cancelled.")
		return &DealOutcome{State: StateCancelled, Quote: quote}, nil
	}

	// Stale quotes are pre-empted locally rather than booked and bounced.
	if expired(quote.ExpirationTime, w.now()) {
		return nil, r.fail(newError(FailureStaleQuote, fmt.Sprintf(
			"quote %s expired at %s; request a new quote", quote.QuoteReference, quote.ExpirationTime)))
	}

	if err := r.to(StateConfirmed); err != nil {
		return nil, err
	}
	settled, err := w.gw.BookQuote(ctx, w.session, quote.QuoteID)
	if err != nil {
		return nil, r.fail(classifyGateway(err, FailureCommitRejected))
	}
	if err := r.to(StateCommitted); err != nil {
		return nil, err
	}

	w.printSettled(settled)
	return &DealOutcome{State: StateCommitted, Quote: quote, Settled: settled}, nil
}

func (w *DealWorkflow) printQuote(q *domain.PendingQuote) {
	fmt.Fprintln(w.out, "\n--- FX QUOTE ---")
	fmt.Fprintf(w.out, "  Quote Ref:    %s\n", q.QuoteReference)
	fmt.Fprintf(w.out, "  Symbol:       %s\n", q.Symbol)
	fmt.Fprintf(w.out, "  Rate:         %s\n", q.Rate)
	fmt.Fprintf(w.out, "  Buy:          %s %s\n", q.BuyAmount, q.BuyCurrencyCode)
	fmt.Fprintf(w.out, "  Sell:         %s %s\n", q.SellAmount, q.SellCurrencyCode)
	fmt.Fprintf(w.out, "  Deal Type:    %s\n", q.DealType)
	fmt.Fprintf(w.out, "  Deal Date:    %s\n", q.DealDate)
	fmt.Fprintf(w.out, "  Value Date:   %s\n", q.ValueDate)
	fmt.Fprintf(w.out, "  Expires:      %s\n", q.ExpirationTime)
}

func (w *DealWorkflow) printSettled(d *domain.SettledDeal) {
	fmt.Fprintln(w.out, "\nDeal booked successfully!")
	fmt.Fprintf(w.out, "  Deal ID:           %s\n", d.FXDealID)
	fmt.Fprintf(w.out, "  Deal Reference:    %s\n", d.FXDealReference)
	fmt.Fprintf(w.out, "  Deposit ID:        %s\n", d.DepositID)
	fmt.Fprintf(w.out, "  Deposit Reference: %s\n", d.DepositReference)
}

var expirationFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// expired reports whether an expiration timestamp is in the past. Unparseable
// timestamps defer the decision to the server-side check at booking time.
func expired(expiration string, now time.Time) bool {
	if expiration == "" {
		return false
	}
	for _, format := range expirationFormats {
		if t, err := time.Parse(format, expiration); err == nil {
			return now.After(t)
		}
	}
	return false
}

// asWorkflowError coerces gate errors, which are built inside this package,
// back to their concrete type.
func asWorkflowError(err error) *Error {
	if wErr, ok := err.(*Error); ok {
		return wErr
	}
	return wrapError(FailureTransport, err)
}
