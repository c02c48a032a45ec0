package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentCurrencies fetches the list of currencies valid for instant payments.
func (c *Client) PaymentCurrencies(ctx context.Context, session *domain.Session) ([]domain.CurrencyInfo, error) {
	var resp currencyListResponse
	if err := c.do(ctx, "payment currency list", http.MethodGet, "/PaymentCurrencyList", nil, session.Token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Currencies, nil
}

// PaymentRequest is the input for creating an instant payment.
type PaymentRequest struct {
	FromCustomer string
	ToCustomer   string
	Amount       decimal.Decimal
	CurrencyCode string
	ValueDate    string
}

type paymentRequestBody struct {
	FromCustomer      string  `json:"fromCustomer"`
	ToCustomer        string  `json:"toCustomer"`
	PaymentTypeID     int     `json:"paymentTypeId"`
	Amount            float64 `json:"amount"`
	CurrencyCode      string  `json:"currencyCode"`
	ValueDate         string  `json:"valueDate"`
	ReasonForPayment  string  `json:"reasonForPayment"`
	ExternalReference string  `json:"externalReference"`
	Memo              string  `json:"memo"`
}

type paymentEnvelope struct {
	Problems json.RawMessage        `json:"problems"`
	Payment  *domain.PendingPayment `json:"payment"`
}

// CreatePayment creates a pending instant payment. The returned record's
// Timestamp is the one-time confirmation token for the post call.
func (c *Client) CreatePayment(ctx context.Context, session *domain.Session, req PaymentRequest) (*domain.PendingPayment, error) {
	body := paymentRequestBody{
		FromCustomer:     req.FromCustomer,
		ToCustomer:       req.ToCustomer,
		PaymentTypeID:    1,
		Amount:           req.Amount.InexactFloat64(),
		CurrencyCode:     req.CurrencyCode,
		ValueDate:        req.ValueDate,
		ReasonForPayment: "Instant Payment",
	}

	const op = "create payment"
	var envelope paymentEnvelope
	if err := c.do(ctx, op, http.MethodPost, "/InstantPayment", nil, session.Token, body, &envelope); err != nil {
		return nil, err
	}
	if rejected(envelope.Problems) {
		return nil, &Rejection{Op: op, Problems: envelope.Problems}
	}
	if envelope.Payment == nil {
		return nil, &MalformedError{Op: op, Missing: "payment"}
	}
	return envelope.Payment, nil
}

type postPaymentBody struct {
	InstantPaymentID string `json:"instantPaymentId"`
	Timestamp        string `json:"timestamp"`
}

type postPaymentEnvelope struct {
	Problems json.RawMessage `json:"problems"`
}

// PostPayment performs the irreversible confirmation of a created payment.
// The timestamp must be the server-issued token, passed back unmodified.
func (c *Client) PostPayment(ctx context.Context, session *domain.Session, paymentID, timestamp string) error {
	body := postPaymentBody{InstantPaymentID: paymentID, Timestamp: timestamp}

	const op = "post payment"
	var envelope postPaymentEnvelope
	if err := c.do(ctx, op, http.MethodPatch, "/InstantPayment/Post", nil, session.Token, body, &envelope); err != nil {
		return err
	}
	if rejected(envelope.Problems) {
		return &Rejection{Op: op, Problems: envelope.Problems}
	}
	return nil
}
