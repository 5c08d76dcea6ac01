// Package libkitsu is a client library for the Kitsu API (https://kitsu.io).
//
// It handles the OAuth password-grant authentication flow and projects the
// JSON:API responses into the read-only models of the resource package.
package libkitsu

import (
	"fmt"

	"golang.org/x/mod/semver"
)

const (
	// APIURL is the versioned REST resource base.
	APIURL = "https://kitsu.io/api/edge"

	// OAuthURL is the OAuth token endpoint base.
	OAuthURL = "https://kitsu.io/api/oauth"
)

// ClientInfo identifies the consuming application to the Kitsu API.
//
// It is used to build the User-Agent header sent with every request.
type ClientInfo struct {
	// Name is the non-empty name of the application.
	Name string

	// Version is a semantic version of the application.
	//
	// "v" prefix is not permitted.
	// E.g. "0.1.0" is valid, but "v0.1.0" is not.
	Version string

	// Website of the application. May be empty.
	Website string
}

// Validate checks that Name is non-empty and Version is a valid semver.
func (i ClientInfo) Validate() error {
	if i.Name == "" {
		return Error("ClientInfo.Name must be non-empty")
	}
	// the Go semver package requires the "v" prefix,
	// even though the semver spec itself forbids it
	if !semver.IsValid("v" + i.Version) {
		return Error("invalid semver: " + i.Version)
	}
	return nil
}

// UserAgent builds the identifying user-agent string.
func (i ClientInfo) UserAgent() string {
	if i.Website == "" {
		return fmt.Sprintf("%s/%s", i.Name, i.Version)
	}
	return fmt.Sprintf("%s/%s (%s)", i.Name, i.Version, i.Website)
}

func defaultClientInfo() ClientInfo {
	return ClientInfo{
		Name:    "libkitsu",
		Version: "0.1.0",
		Website: "https://github.com/luevano/libkitsu",
	}
}
