package libkitsu

import (
	"context"
	"net/http"
	"time"
)

// AuthData is the access/refresh token pair and its expiration,
// as reported by the token endpoint.
type AuthData struct {
	// AccessToken is the token attached to authorized requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is used to renew the AccessToken after it
	// has expired.
	RefreshToken string `json:"refresh_token"`

	// CreatedAt is the Unix timestamp at which the AccessToken
	// was issued.
	CreatedAt int64 `json:"created_at"`

	// ExpiresIn is the time in seconds before the AccessToken
	// expires.
	ExpiresIn int64 `json:"expires_in"`

	// Scope is the scope of the access. May be empty.
	Scope string `json:"scope"`

	// TokenType is the type of the AccessToken (usually "Bearer").
	TokenType string `json:"token_type"`
}

// Expiry is the moment the access token stops being valid,
// issue time plus reported lifetime.
func (a AuthData) Expiry() time.Time {
	return time.Unix(a.CreatedAt, 0).Add(time.Duration(a.ExpiresIn) * time.Second)
}

// Authenticate performs the password-grant token exchange and stores
// the resulting token pair, both on the client and in the auth-state
// store keyed by username.
//
// The client id/secret pair is added to the request body when both
// are set on the Options.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	c.logger.Log("authenticating user %q", username)
	reqBody := c.withClientCredentials(map[string]string{
		"grant_type": "password",
		"username":   username,
		"password":   password,
	})

	var authData AuthData
	if err := c.post(ctx, "token", reqBody, nil, &authData); err != nil {
		return AuthError{err}
	}

	c.auth = authData
	c.username = username
	if err := c.store.setAuthData(username, authData); err != nil {
		return AuthError{err}
	}
	return nil
}

// RefreshToken exchanges the stored refresh token for a new token
// pair, authorized with the current access token.
//
// Refresh is not automatic: callers watch TokenExpired themselves
// and invoke this when needed.
func (c *Client) RefreshToken(ctx context.Context) error {
	if !c.Authenticated() {
		return AuthError{Error("no refresh token available, authenticate first")}
	}
	c.logger.Log("refreshing access token for user %q", c.username)

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.auth.AccessToken)
	reqBody := c.withClientCredentials(map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": c.auth.RefreshToken,
	})

	var authData AuthData
	if err := c.post(ctx, "token", reqBody, headers, &authData); err != nil {
		return AuthError{err}
	}

	c.auth = authData
	if c.username != "" {
		if err := c.store.setAuthData(c.username, authData); err != nil {
			return AuthError{err}
		}
	}
	return nil
}

// AuthorizeCachedUser tries to load a persisted token pair for the
// given username from the auth-state store. When found, the client
// is authenticated with it.
//
// The persisted tokens may well be expired; check TokenExpired and
// refresh when necessary.
func (c *Client) AuthorizeCachedUser(username string) (bool, error) {
	c.logger.Log("authenticating via cached user %q", username)
	authData, found, err := c.store.getAuthData(username)
	if err != nil {
		return false, AuthError{err}
	}
	if !found {
		return false, nil
	}
	c.auth = authData
	c.username = username
	return true, nil
}

// Logout forgets the current token pair. With deleteCache it also
// removes the persisted auth state of the user.
//
// Returns an error if there is no authenticated user to be logged out.
func (c *Client) Logout(deleteCache bool) error {
	if !c.Authenticated() {
		return Error("no authenticated user to logout")
	}
	username := c.username
	c.auth = AuthData{}
	c.username = ""
	c.logger.Log("user %q logged out", username)

	if deleteCache && username != "" {
		if err := c.store.deleteAuthData(username); err != nil {
			return AuthError{err}
		}
	}
	return nil
}

// Authenticated returns true if there is an available access token.
func (c *Client) Authenticated() bool {
	return c.auth.AccessToken != ""
}

// TokenExpiry is the expiry of the current access token, the zero
// time when not authenticated.
func (c *Client) TokenExpiry() time.Time {
	if !c.Authenticated() {
		return time.Time{}
	}
	return c.auth.Expiry()
}

// TokenExpired reports whether the current access token is past its
// expiry. False when not authenticated.
func (c *Client) TokenExpired() bool {
	return c.Authenticated() && time.Now().After(c.auth.Expiry())
}

func (c *Client) withClientCredentials(reqBody map[string]string) map[string]string {
	if c.options.ClientID != "" && c.options.ClientSecret != "" {
		reqBody["client_id"] = c.options.ClientID
		reqBody["client_secret"] = c.options.ClientSecret
	}
	return reqBody
}
