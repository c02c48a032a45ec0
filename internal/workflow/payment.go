package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/ayo6706/wallet-fx-cli/internal/gateway"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PaymentGateway is the slice of the gateway the payment workflow needs
// beyond reference data: the create call and the single irreversible post.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, session *domain.Session, req gateway.PaymentRequest) (*domain.PendingPayment, error)
	PostPayment(ctx context.Context, session *domain.Session, paymentID, timestamp string) error
}

// PaymentInput is the raw user input for an instant payment. Currency may be
// empty, in which case the configured default applies.
type PaymentInput struct {
	FromCustomer string `validate:"required"`
	ToCustomer   string
	Amount       string `validate:"required"`
	Currency     string
}

// PaymentOutcome is the terminal result of one payment workflow run.
type PaymentOutcome struct {
	State   State
	Pending *domain.PendingPayment
	Settled *domain.SettledPayment
}

// PaymentWorkflow drives the two-phase instant payment: validate the
// receiver, amount, and currency, create a pending payment, present it for
// explicit confirmation, and post it at most once using the server-issued
// timestamp token.
type PaymentWorkflow struct {
	gate            *PaymentGate
	gw              PaymentGateway
	session         *domain.Session
	confirm         Confirmer
	out             io.Writer
	log             *zap.Logger
	validate        *validator.Validate
	defaultCurrency string
	now             func() time.Time
}

func NewPaymentWorkflow(gate *PaymentGate, gw PaymentGateway, session *domain.Session, confirm Confirmer, out io.Writer, logger *zap.Logger, defaultCurrency string) *PaymentWorkflow {
	return &PaymentWorkflow{
		gate:            gate,
		gw:              gw,
		session:         session,
		confirm:         confirm,
		out:             out,
		log:             logger,
		validate:        validator.New(),
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// Run executes one instant payment workflow instance.
func (w *PaymentWorkflow) Run(ctx context.Context, input PaymentInput) (*PaymentOutcome, error) {
	r := newRun(w.log, "instant_payment")

	// Local validation happens before any network call.
	if err := w.validate.Struct(input); err != nil {
		return nil, r.fail(newError(FailureInvalidSelection, "sender and amount are required"))
	}
	receiver := strings.TrimSpace(input.ToCustomer)
	if receiver == "" {
		return nil, r.fail(newError(FailureInvalidSelection, "receiver PayID is required"))
	}
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, r.fail(wrapError(FailureInvalidSelection, err))
	}
	currency := domain.NormalizeCurrencyCode(input.Currency)
	if currency == "" {
		currency = w.defaultCurrency
	}

	info, err := w.gate.Validate(ctx, currency)
	if err != nil {
		return nil, r.fail(asWorkflowError(err))
	}
	r.log.Info("reference data validated", zap.String("currency", info.CurrencyCode))
	if err := r.to(StateValidated); err != nil {
		return nil, err
	}

	pending, err := w.gw.CreatePayment(ctx, w.session, gateway.PaymentRequest{
		FromCustomer: input.FromCustomer,
		ToCustomer:   receiver,
		Amount:       amount,
		CurrencyCode: currency,
		ValueDate:    w.now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		return nil, r.fail(classifyPaymentCreate(err))
	}
	// The payment cannot be posted without both identifiers; guessing is not
	// an option at a money-moving boundary.
	if pending.PaymentID == "" || pending.Timestamp == "" {
		return nil, r.fail(newError(FailureMalformedPayment, "create response is missing paymentId or timestamp"))
	}
	if err := r.to(StatePending); err != nil {
		return nil, err
	}
	w.printPending(pending, receiver, amount.StringFixed(2), currency)

	ok, err := w.confirm.Confirm("\nPost this payment? (y/N): ")
	if err != nil {
		return nil, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		if err := r.to(StateCancelled); err != nil {
			return nil, err
		}
		fmt.Fprintln(w.out, "Payment cancelled.")
		return &PaymentOutcome{State: StateCancelled, Pending: pending}, nil
	}

	if err := r.to(StateConfirmed); err != nil {
		return nil, err
	}
	if err := w.gw.PostPayment(ctx, w.session, pending.PaymentID, pending.Timestamp); err != nil {
		return nil, r.fail(classifyGateway(err, FailureCommitRejected))
	}
	if err := r.to(StateCommitted); err != nil {
		return nil, err
	}

	settled := &domain.SettledPayment{
		PaymentID:        pending.PaymentID,
		PaymentReference: pending.PaymentReference,
	}
	fmt.Fprintf(w.out, "\nPayment of %s %s to %s completed successfully.\n", amount.StringFixed(2), currency, receiver)
	fmt.Fprintf(w.out, "  Reference: %s\n", settled.PaymentReference)
	return &PaymentOutcome{State: StateCommitted, Pending: pending, Settled: settled}, nil
}

func (w *PaymentWorkflow) printPending(p *domain.PendingPayment, receiver, amount, currency string) {
	fmt.Fprintln(w.out, "\n--- PENDING PAYMENT ---")
	fmt.Fprintf(w.out, "  To:          %s\n", receiver)
	fmt.Fprintf(w.out, "  Amount:      %s %s\n", amount, currency)
	fmt.Fprintf(w.out, "  Payment ID:  %s\n", p.PaymentID)
	fmt.Fprintf(w.out, "  Reference:   %s\n", p.PaymentReference)
}

// classifyPaymentCreate maps create-payment failures: a problems payload is a
// domain rejection, a missing payment object is a malformed response, and
// everything else is transport.
func classifyPaymentCreate(err error) *Error {
	var mal *gateway.MalformedError
	if errors.As(err, &mal) {
		return &Error{Kind: FailureMalformedPayment, cause: err}
	}
	return classifyGateway(err, FailurePaymentRejected)
}
