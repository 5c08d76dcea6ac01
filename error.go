package libkitsu

import "fmt"

// Error is a general error for libkitsu operations.
type Error string

func (e Error) Error() string {
	return "kitsu: " + string(e)
}

// AuthError wraps a failed token exchange.
type AuthError struct {
	Err error
}

func (e AuthError) Error() string {
	return "kitsu auth: " + e.Err.Error()
}

func (e AuthError) Unwrap() error {
	return e.Err
}

// BadRequestError is the 400 response of the API,
// carrying the server-supplied message.
type BadRequestError struct {
	Detail string
}

func (e BadRequestError) Error() string {
	return "kitsu: bad request: " + e.Detail
}

// UnauthorizedError is the 401 response of the API.
type UnauthorizedError struct {
	Detail string
}

func (e UnauthorizedError) Error() string {
	return "kitsu: unauthorized: " + e.Detail
}

// ForbiddenError is the 403 response of the API.
type ForbiddenError struct {
	Detail string
}

func (e ForbiddenError) Error() string {
	return "kitsu: forbidden: " + e.Detail
}

// NotFoundError is the 404 response of the API.
type NotFoundError struct {
	Detail string
}

func (e NotFoundError) Error() string {
	return "kitsu: not found: " + e.Detail
}

// HTTPError is any unmapped non-2xx response,
// carrying the raw status code and body.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("kitsu: unexpected status %d: %s", e.StatusCode, e.Body)
}
