package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
)

// ErrNoBalances means the balances call succeeded but returned no accounts.
var ErrNoBalances = errors.New("no balances found")

type balancesResponse struct {
	Balances []domain.Balance `json:"balances"`
}

// Balances fetches all account balances for the session's customer.
func (c *Client) Balances(ctx context.Context, session *domain.Session) ([]domain.Balance, error) {
	var resp balancesResponse
	path := "/CustomerAccountBalance/" + session.CustomerID
	if err := c.do(ctx, "account balances", http.MethodGet, path, nil, session.Token, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Balances) == 0 {
		return nil, ErrNoBalances
	}
	return resp.Balances, nil
}

// Statement fetches the statement for one account over a date range.
func (c *Client) Statement(ctx context.Context, session *domain.Session, accountID string, start, end time.Time) (*domain.Statement, error) {
	query := url.Values{}
	query.Set("accountId", accountID)
	query.Set("strStartDate", start.Format("2006-01-02"))
	query.Set("strEndDate", end.Format("2006-01-02"))

	var statement domain.Statement
	if err := c.do(ctx, "account statement", http.MethodGet, "/CustomerAccountStatement", query, session.Token, nil, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}
