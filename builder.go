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
	"context"
	"time"
)

// ClientBuilder configures and creates a Client. The zero value is usable;
// Username and Password are required, everything else has production
// defaults.
type ClientBuilder struct {
	username     string
	password     string
	userAgent    string
	synergiaBase string
	messagesBase string
	authBase     string
	timeout      time.Duration
}

// NewBuilder creates a builder with no credentials set.
func NewBuilder() *ClientBuilder {
	return &ClientBuilder{}
}

// Username sets the Librus username.
func (b *ClientBuilder) Username(username string) *ClientBuilder {
	b.username = username

	return b
}

// Password sets the Librus password.
func (b *ClientBuilder) Password(password string) *ClientBuilder {
	b.password = password

	return b
}

// UserAgent fixes the User-Agent header for all requests instead of the
// random per-login one.
func (b *ClientBuilder) UserAgent(ua string) *ClientBuilder {
	b.userAgent = ua

	return b
}

// HTTPTimeout overrides the default HTTP timeout.
func (b *ClientBuilder) HTTPTimeout(d time.Duration) *ClientBuilder {
	b.timeout = d

	return b
}

// SynergiaBaseURL overrides the Synergia gateway API base URL.
func (b *ClientBuilder) SynergiaBaseURL(u string) *ClientBuilder {
	b.synergiaBase = u

	return b
}

// MessagesBaseURL overrides the messages API base URL.
func (b *ClientBuilder) MessagesBaseURL(u string) *ClientBuilder {
	b.messagesBase = u

	return b
}

// AuthBaseURL overrides the SSO/OAuth base URL.
func (b *ClientBuilder) AuthBaseURL(u string) *ClientBuilder {
	b.authBase = u

	return b
}

// Build creates the Client. An unset username or password is reported as
// ErrMissingCredential before any network call.
func (b *ClientBuilder) Build(ctx context.Context) (*Client, error) {
	return newClient(ctx, b.username, b.password, b)
}
