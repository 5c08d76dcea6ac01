package libkitsu

import (
	"net/http"

	"github.com/luevano/libkitsu/logger"
	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
)

// Options is options for the Kitsu client.
type Options struct {
	// HTTPClient is the http client used for all API requests.
	HTTPClient *http.Client

	// Info identifies the application; used to build the User-Agent.
	Info ClientInfo

	// ClientID of the registered Kitsu application.
	//
	// May be empty. Added to every token exchange request
	// body only when ClientSecret is also set.
	ClientID string

	// ClientSecret of the registered Kitsu application.
	//
	// May be empty, see ClientID.
	ClientSecret string

	// APIURL is the versioned REST resource base.
	APIURL string

	// OAuthURL is the OAuth token endpoint base.
	OAuthURL string

	// TokenStore returns a gokv.Store implementation for use as
	// the auth-state storage.
	TokenStore func(bucketName string) (gokv.Store, error)

	// Logger used for request/auth progress.
	Logger *logger.Logger
}

// DefaultOptions constructs default Options.
//
// The default TokenStore is in-memory, so tokens only live as long
// as the process; provide a persistent gokv.Store implementation to
// keep them across runs.
func DefaultOptions() Options {
	tokenStore := syncmap.NewStore(syncmap.DefaultOptions)
	return Options{
		HTTPClient: &http.Client{},
		Info:       defaultClientInfo(),
		APIURL:     APIURL,
		OAuthURL:   OAuthURL,
		TokenStore: func(bucketName string) (gokv.Store, error) {
			return tokenStore, nil
		},
		Logger: logger.NewLogger(),
	}
}
