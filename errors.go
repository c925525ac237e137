// @license
// Copyright (C) 2024  librus-go contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package librus

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication is returned by Login when the service rejects the
	// credentials or the session check fails.
	ErrAuthentication = errors.New("authentication failed: invalid credentials or server error")

	// ErrMissingEnvVar is returned by FromEnvWithContext when a required
	// environment variable is not set; the wrap names the variable.
	ErrMissingEnvVar = errors.New("required environment variable is not set")

	// ErrMissingCredential is returned before any network call when a
	// username or password was not supplied; the wrap names the credential.
	ErrMissingCredential = errors.New("missing required credential")

	// ErrHTTPClient is returned when the underlying HTTP client could not be
	// constructed.
	ErrHTTPClient = errors.New("could not build HTTP client")

	// ErrBaseURL is returned when a configured base URL cannot be parsed.
	ErrBaseURL = errors.New("invalid base URL")
)

// APIError is returned for non-2xx responses. It carries the HTTP status
// code and the response body verbatim for diagnostics.
type APIError struct {
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %v): %v", e.StatusCode, e.Body)
}

// ParseError is returned when a response body fails to decode as JSON. It
// carries the original body alongside the decode failure to aid debugging
// malformed or unexpected payloads.
type ParseError struct {
	Err  error
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
