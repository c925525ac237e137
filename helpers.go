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
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// setCommonHeaders sets the per-session User-Agent and no-cache headers on a
// request.
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
}

// do performs a request, mapping client errors to a context error when the
// context has been cancelled.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		select {
		case <-c.ctx.Done():
			return nil, c.ctx.Err()
		default:
			return nil, err
		}
	}

	return resp, nil
}

// drainGet performs a GET request for its session side effects only,
// discarding the body. HTTP 200 and 302 are both acceptable since SSO steps
// answer with redirects.
func (c *Client) drainGet(u string) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	c.setCommonHeaders(req)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// drain rest of the body
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusFound {
		return &APIError{StatusCode: resp.StatusCode, Body: ""}
	}

	return nil
}

// postForm performs a form POST for its session side effects, discarding the
// body.
func (c *Client) postForm(u string, data url.Values) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, u, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setCommonHeaders(req)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// drain rest of the body
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	// regular SSO response has HTTP 200 or HTTP 302 status
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusFound {
		return &APIError{StatusCode: resp.StatusCode, Body: ""}
	}

	return nil
}

// statusGet performs a GET request and returns only the response status
// code, discarding the body.
func (c *Client) statusGet(u string) (int, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	c.setCommonHeaders(req)

	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// drain rest of the body
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	return resp.StatusCode, nil
}

// getBody performs a GET request and returns the raw response body. Non-2xx
// responses produce an *APIError carrying status code and body verbatim.
func (c *Client) getBody(u string, wantJSON bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	if wantJSON {
		req.Header.Set("Content-Type", "application/json")
	}

	c.setCommonHeaders(req)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// getAPI fetches an endpoint of the Synergia gateway API and returns the raw
// body.
func (c *Client) getAPI(endpoint string) ([]byte, error) {
	return c.getBody(joinEndpoint(c.synergiaBase, endpoint), true)
}

// getMessagesAPI fetches an endpoint of the messages API and returns the raw
// body, performing the one-time warm-up first.
func (c *Client) getMessagesAPI(endpoint string) ([]byte, error) {
	if err := c.ensureMessagesInitialized(); err != nil {
		return nil, err
	}

	return c.getBody(joinEndpoint(c.messagesBase, endpoint), false)
}

// decodeBody decodes a JSON response body into v. Failures produce a
// *ParseError preserving the original body for diagnostics.
func decodeBody(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Err: err, Body: string(body)}
	}

	return nil
}

// apiGet fetches a Synergia endpoint and decodes it into T.
func apiGet[T any](c *Client, endpoint string) (*T, error) {
	body, err := c.getAPI(endpoint)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := decodeBody(body, out); err != nil {
		return nil, err
	}

	return out, nil
}

// messagesGet fetches a messages API endpoint and decodes its data envelope
// into T.
func messagesGet[T any](c *Client, endpoint string) (T, error) {
	var env struct {
		Data T `json:"data"`
	}

	body, err := c.getMessagesAPI(endpoint)
	if err != nil {
		return env.Data, err
	}

	if err := decodeBody(body, &env); err != nil {
		return env.Data, err
	}

	return env.Data, nil
}
