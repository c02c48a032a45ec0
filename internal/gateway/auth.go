package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"go.uber.org/zap"
)

// ErrNoAccessToken means the gateway answered the authenticate call without
// issuing a token. The workflow never starts in that case.
var ErrNoAccessToken = errors.New("authentication failed: no access token received")

// Credentials are the login inputs read from configuration.
type Credentials struct {
	Username string
	Password string
}

type authRequest struct {
	LoginID                             string `json:"loginId"`
	Password                            string `json:"password"`
	CallerID                            string `json:"callerId"`
	IncludeUserSettingsInResponse       bool   `json:"includeUserSettingsInResponse"`
	IncludeAccessRightsWithUserSettings bool   `json:"includeAccessRightsWithUserSettings"`
}

type authResponse struct {
	Tokens struct {
		AccessToken                 string `json:"accessToken"`
		AccessTokenExpiresInMinutes int    `json:"accessTokenExpiresInMinutes"`
	} `json:"tokens"`
	UserSettings domain.UserSettings `json:"userSettings"`
}

// Authenticate exchanges credentials for a Session. The session token is an
// opaque bearer capability; expiry is handled server-side.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (*domain.Session, error) {
	body := authRequest{
		LoginID:                       creds.Username,
		Password:                      creds.Password,
		CallerID:                      c.callerID,
		IncludeUserSettingsInResponse: true,
	}

	var resp authResponse
	if err := c.do(ctx, "authenticate", http.MethodPost, "/authenticate", nil, "", body, &resp); err != nil {
		return nil, err
	}
	if resp.Tokens.AccessToken == "" {
		return nil, ErrNoAccessToken
	}

	c.log.Info("login successful",
		zap.String("user", resp.UserSettings.UserName),
		zap.String("customer_id", resp.UserSettings.OrganizationID),
	)

	return &domain.Session{
		Token:            resp.Tokens.AccessToken,
		CustomerID:       resp.UserSettings.OrganizationID,
		ExpiresInMinutes: resp.Tokens.AccessTokenExpiresInMinutes,
		Settings:         resp.UserSettings,
	}, nil
}
