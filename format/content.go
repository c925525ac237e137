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

package format

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrMessageContent = errors.New("could not decode message content")

// DecodeMessageContent decodes a base64-encoded message body to cleartext.
// Message bodies on the wire are always base64; malformed input or invalid
// UTF-8 is reported as ErrMessageContent.
func DecodeMessageContent(content string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMessageContent, err)
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrMessageContent)
	}

	return string(b), nil
}
