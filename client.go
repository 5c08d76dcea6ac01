package libkitsu

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/luevano/libkitsu/logger"
)

const (
	// mediaTypeJSONAPI is the content negotiation type of the
	// resource endpoints.
	mediaTypeJSONAPI = "application/vnd.api+json"

	// mediaTypeJSON is the content negotiation type of the OAuth
	// endpoints.
	mediaTypeJSON = "application/json"
)

// Client is the Kitsu API client.
//
// It owns one authenticated conversation with the service: the token
// pair obtained with Authenticate is attached to NSFW-gated requests
// and renewed (manually) with RefreshToken.
//
// The token fields are not protected against concurrent
// Authenticate/RefreshToken calls; callers serialize their own
// auth-refresh logic.
type Client struct {
	// current authentication state
	auth     AuthData
	username string

	options   Options
	userAgent string
	logger    *logger.Logger
	store     store
}

// NewClient constructs a new Kitsu client.
func NewClient(options Options) (*Client, error) {
	if options.HTTPClient == nil {
		return nil, Error("nil HTTPClient passed to NewClient")
	}
	if err := options.Info.Validate(); err != nil {
		return nil, err
	}
	if options.APIURL == "" {
		options.APIURL = APIURL
	}
	if options.OAuthURL == "" {
		options.OAuthURL = OAuthURL
	}

	s := store{openStore: options.TokenStore}

	l := options.Logger
	if l == nil {
		l = logger.NewLogger()
	}

	return &Client{
		options:   options,
		userAgent: options.Info.UserAgent(),
		logger:    l,
		store:     s,
	}, nil
}

func (c *Client) String() string {
	return c.options.Info.Name
}

// Logger returns the set logger.
//
// Always returns a non-nil logger.
func (c *Client) Logger() *logger.Logger {
	return c.logger
}

// SetLogger sets logger to use for this client.
//
// Setting a nil logger will create a new one.
func (c *Client) SetLogger(_logger *logger.Logger) {
	if _logger != nil {
		// c.logger is guaranteed to be non-nil
		*c.logger = *_logger
	} else {
		c.logger = logger.NewLogger()
	}
}

// Close releases the connections held by the underlying HTTP
// transport and the auth-state store. Meant to be deferred right
// after constructing the client so it runs on every exit path.
func (c *Client) Close() error {
	c.options.HTTPClient.CloseIdleConnections()
	return c.store.Close()
}

// get issues a GET request against a resource endpoint and returns
// the parsed JSON:API document.
//
// The bearer token is attached only when authorize is set and a
// token is available; the request is anonymous otherwise.
func (c *Client) get(ctx context.Context, path string, params url.Values, authorize bool) (map[string]any, error) {
	u, err := url.Parse(c.options.APIURL)
	if err != nil {
		return nil, err
	}
	u = u.JoinPath(path)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", mediaTypeJSONAPI)
	req.Header.Set("Content-Type", mediaTypeJSONAPI)
	req.Header.Set("User-Agent", c.userAgent)
	if authorize && c.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.auth.AccessToken)
	}

	c.logger.Log("GET %s", u.String())
	resp, err := c.options.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		var document map[string]any
		if err := json.Unmarshal(body, &document); err != nil {
			return nil, err
		}
		return document, nil
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, BadRequestError{Detail: resourceErrorDetail(body)}
	case http.StatusUnauthorized:
		return nil, UnauthorizedError{Detail: oauthErrorDescription(body)}
	case http.StatusForbidden:
		return nil, ForbiddenError{Detail: oauthErrorDescription(body)}
	case http.StatusNotFound:
		return nil, NotFoundError{Detail: resourceErrorDetail(body)}
	default:
		return nil, HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

// post issues a POST request against an OAuth endpoint and decodes
// the response into res. Only used for the token exchange.
func (c *Client) post(ctx context.Context, path string, reqBody map[string]string, headers http.Header, res any) error {
	marshalled, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	u, err := url.Parse(c.options.OAuthURL)
	if err != nil {
		return err
	}
	u = u.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(marshalled))
	if err != nil {
		return err
	}
	if headers != nil {
		req.Header = headers
	}
	req.Header.Set("Accept", mediaTypeJSON)
	req.Header.Set("Content-Type", mediaTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Log("POST %s", u.String())
	resp, err := c.options.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return json.Unmarshal(body, res)
	case http.StatusBadRequest:
		return BadRequestError{Detail: oauthErrorDescription(body)}
	case http.StatusNotFound:
		return NotFoundError{Detail: oauthErrorDescription(body)}
	default:
		return HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

// resourceErrorDetail extracts errors[0].detail from a JSON:API
// error envelope, falling back to the raw body.
func resourceErrorDetail(body []byte) string {
	var envelope struct {
		Errors []struct {
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return string(body)
	}
	return envelope.Errors[0].Detail
}

// oauthErrorDescription extracts error_description from an OAuth
// error payload, falling back to the raw body.
func oauthErrorDescription(body []byte) string {
	var envelope struct {
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Description == "" {
		return string(body)
	}
	return envelope.Description
}
