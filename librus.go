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

// Package librus is a typed client for the Librus Synergia school
// information service. It exposes the authenticated Synergia API (grades,
// attendances, homeworks, notices, users) and the separate messages API
// (inbox, outbox, attachments) as structured data types.
//
// A Client is created with explicit credentials, from the LIBRUS_USERNAME
// and LIBRUS_PASSWORD environment variables, or through a ClientBuilder;
// all three paths converge on the same constructor and validate credentials
// before any network call. Login then performs the multi-step cookie
// handshake against the Librus SSO endpoints.
package librus

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/corpix/uarand"
)

const (
	// SynergiaAPIBase is the production Synergia gateway API.
	SynergiaAPIBase = "https://synergia.librus.pl/gateway/api/2.0/"
	// MessagesAPIBase is the production messages API.
	MessagesAPIBase = "https://wiadomosci.librus.pl/api/"
	// AuthAPIBase is the production SSO/OAuth host.
	AuthAPIBase = "https://api.librus.pl/"

	// EnvUsername and EnvPassword supply default credentials for
	// FromEnvWithContext.
	EnvUsername = "LIBRUS_USERNAME"
	EnvPassword = "LIBRUS_PASSWORD"

	// Timeout is the default HTTP timeout; the site can get really slow
	// sometimes.
	Timeout = 60 * time.Second

	// ChromeUA is a user agent string mimicking Chrome on Android, used as
	// fallback when no random user agent is available.
	ChromeUA = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Mobile Safari/537.36"

	authClientID = "46"
)

// Client is a Librus Synergia API client. The session credential lives in
// the HTTP cookie jar and is read-only during requests, so methods of one
// Client may run concurrently.
//
//nolint:containedctx
type Client struct {
	httpClient *http.Client
	ctx        context.Context
	username   string
	password   string
	userAgent  string
	fixedUA    bool

	synergiaBase string
	messagesBase string
	authBase     string

	// guards the one-time messages API warm-up
	messagesMu    sync.Mutex
	messagesReady bool
}

// NewClientWithContext creates a new *Client with explicit credentials,
// initializing the HTTP cookie jar needed for the SSO session. Empty
// credentials are rejected before any network call. The client is not yet
// authenticated; call Login next.
func NewClientWithContext(ctx context.Context, username, password string) (*Client, error) {
	return newClient(ctx, username, password, nil)
}

// FromEnvWithContext creates a new *Client reading credentials from the
// LIBRUS_USERNAME and LIBRUS_PASSWORD environment variables. A missing
// variable is reported as ErrMissingEnvVar before any network call.
func FromEnvWithContext(ctx context.Context) (*Client, error) {
	username, ok := os.LookupEnv(EnvUsername)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingEnvVar, EnvUsername)
	}

	password, ok := os.LookupEnv(EnvPassword)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingEnvVar, EnvPassword)
	}

	return newClient(ctx, username, password, nil)
}

// newClient is the single internal constructor all construction paths
// converge on.
func newClient(ctx context.Context, username, password string, b *ClientBuilder) (*Client, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: %v", ErrMissingCredential, "username")
	}

	if password == "" {
		return nil, fmt.Errorf("%w: %v", ErrMissingCredential, "password")
	}

	// Cookie Jar needed for SSO and session cookie checks
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPClient, err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
			Jar:     jar,
		},
		ctx:          ctx,
		username:     username,
		password:     password,
		synergiaBase: SynergiaAPIBase,
		messagesBase: MessagesAPIBase,
		authBase:     AuthAPIBase,
	}

	if b != nil {
		if b.timeout > 0 {
			c.httpClient.Timeout = b.timeout
		}

		if b.userAgent != "" {
			c.userAgent = b.userAgent
			c.fixedUA = true
		}

		if b.synergiaBase != "" {
			c.synergiaBase = b.synergiaBase
		}

		if b.messagesBase != "" {
			c.messagesBase = b.messagesBase
		}

		if b.authBase != "" {
			c.authBase = b.authBase
		}
	}

	return c, nil
}

// Login performs the SSO cookie handshake: an authorization probe, the
// credential form POST, the grant request and a final session check. A
// failed session check is reported as ErrAuthentication, distinct from
// network-level request failures. A random User-Agent is chosen per login
// unless one was fixed through the builder.
func (c *Client) Login() error {
	if !c.fixedUA {
		// generate random User-Agent per session
		c.userAgent = uarand.GetRandom()
		if c.userAgent == "" {
			c.userAgent = ChromeUA
		}
	}

	// authorization probe, sets initial SSO cookies
	if err := c.drainGet(joinEndpoint(c.authBase, "OAuth/Authorization?client_id="+authClientID+"&response_type=code&scope=mydata")); err != nil {
		return err
	}

	// credential form POST
	form := url.Values{
		"action": {"login"},
		"login":  {c.username},
		"pass":   {c.password},
	}

	if err := c.postForm(joinEndpoint(c.authBase, "OAuth/Authorization?client_id="+authClientID), form); err != nil {
		return err
	}

	// grant request completes the SSO redirect chain
	if err := c.drainGet(joinEndpoint(c.authBase, "OAuth/Authorization/Grant?client_id="+authClientID)); err != nil {
		return err
	}

	// session check: token info must answer with HTTP 200
	status, err := c.statusGet(joinEndpoint(c.synergiaBase, "Auth/TokenInfo/"))
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("%w", ErrAuthentication)
	}

	return nil
}

// messagesInitURL derives the messages warm-up URL from the Synergia base
// URL host. The warm-up endpoint lives on the Synergia host root, outside
// the gateway path.
func (c *Client) messagesInitURL() (string, error) {
	u, err := url.Parse(c.synergiaBase)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBaseURL, err)
	}

	return u.Scheme + "://" + u.Host + "/wiadomosci3", nil
}

// ensureMessagesInitialized performs the one-time messages API warm-up
// request. Concurrent first calls are serialized so exactly one warm-up
// request is issued per client.
func (c *Client) ensureMessagesInitialized() error {
	c.messagesMu.Lock()
	defer c.messagesMu.Unlock()

	if c.messagesReady {
		return nil
	}

	initURL, err := c.messagesInitURL()
	if err != nil {
		return err
	}

	if err := c.drainGet(initURL); err != nil {
		return err
	}

	c.messagesReady = true

	return nil
}

// Username returns the username this client was constructed with.
func (c *Client) Username() string {
	return c.username
}

// CloseConnections closes all idle connections on the underlying transport.
func (c *Client) CloseConnections() {
	c.httpClient.CloseIdleConnections()
}

// joinEndpoint appends an endpoint path to a base URL, tolerating a missing
// trailing slash on the base.
func joinEndpoint(base, endpoint string) string {
	if strings.HasSuffix(base, "/") {
		return base + endpoint
	}

	return base + "/" + endpoint
}
