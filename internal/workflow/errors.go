package workflow

import (
	"errors"

	"github.com/ayo6706/wallet-fx-cli/internal/gateway"
)

// FailureKind classifies terminal workflow failures. Transport failures carry
// no guarantee about server-side effect; domain rejections do.
type FailureKind string

const (
	FailureTransport          FailureKind = "TRANSPORT_ERROR"
	FailureAuthentication     FailureKind = "AUTHENTICATION_FAILED"
	FailureInvalidSelection   FailureKind = "INVALID_SELECTION"
	FailureReferenceData      FailureKind = "REFERENCE_DATA_UNAVAILABLE"
	FailureQuoteRejected      FailureKind = "QUOTE_REJECTED"
	FailurePaymentRejected    FailureKind = "PAYMENT_REJECTED"
	FailureMalformedPayment   FailureKind = "MALFORMED_PENDING_PAYMENT"
	FailureStaleQuote         FailureKind = "STALE_QUOTE"
	FailureCommitRejected     FailureKind = "COMMIT_REJECTED"
)

var kindLabels = map[FailureKind]string{
	FailureTransport:        "gateway call failed",
	FailureAuthentication:   "authentication failed",
	FailureInvalidSelection: "invalid selection",
	FailureReferenceData:    "reference data unavailable",
	FailureQuoteRejected:    "quote rejected",
	FailurePaymentRejected:  "payment rejected",
	FailureMalformedPayment: "malformed pending payment",
	FailureStaleQuote:       "quote expired",
	FailureCommitRejected:   "commit rejected",
}

// Error is a terminal workflow failure. Detail preserves gateway problem
// payloads verbatim.
type Error struct {
	Kind   FailureKind
	Detail string
	cause  error
}

func (e *Error) Error() string {
	label := kindLabels[e.Kind]
	switch {
	case e.Detail != "":
		return label + ": " + e.Detail
	case e.cause != nil:
		return label + ": " + e.cause.Error()
	default:
		return label
	}
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind FailureKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func wrapError(kind FailureKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// KindOf extracts the failure kind from an error chain. Errors that did not
// originate in a workflow step are treated as transport failures.
func KindOf(err error) (FailureKind, bool) {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Kind, true
	}
	return "", false
}

// classifyGateway maps a gateway error to a workflow failure. A problems
// rejection takes the step-specific kind with the raw problems preserved;
// anything else is a transport failure.
func classifyGateway(err error, rejectedKind FailureKind) *Error {
	var rej *gateway.Rejection
	if errors.As(err, &rej) {
		return &Error{Kind: rejectedKind, Detail: string(rej.Problems), cause: err}
	}
	return wrapError(FailureTransport, err)
}
