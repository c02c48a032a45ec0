package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ayo6706/wallet-fx-cli/internal/config"
	"go.uber.org/zap"
)

// Client performs authenticated JSON calls against the wallet gateway.
// Every call uses the configured timeout and a bearer credential header.
type Client struct {
	baseURL  string
	callerID string
	http     *http.Client
	log      *zap.Logger
}

// NewClient builds a gateway client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		callerID: cfg.CallerID,
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
		log:      logger,
	}
}

// TransportError reports a failed HTTP exchange: connection errors, timeouts,
// and non-2xx statuses. It carries no guarantee about server-side effect.
type TransportError struct {
	Op         string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: gateway returned status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Rejection reports a domain-level rejection delivered via the problems key
// of an otherwise successful envelope. Problems is the raw JSON, surfaced
// verbatim to the user.
type Rejection struct {
	Op       string
	Problems json.RawMessage
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("%s: gateway reported problems: %s", e.Op, string(e.Problems))
}

// MalformedError reports a 2xx envelope missing its expected domain key.
type MalformedError struct {
	Op      string
	Missing string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: gateway response missing %s", e.Op, e.Missing)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug("gateway call",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Body: snippet(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// rejected reports whether a problems value is present and non-null.
func rejected(problems json.RawMessage) bool {
	trimmed := bytes.TrimSpace(problems)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func snippet(body []byte) string {
	const limit = 512
	s := string(bytes.TrimSpace(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
