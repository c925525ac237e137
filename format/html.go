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

// Package format holds pure, stateless conversions for service payloads:
// HTML notice bodies to plain text and base64 message bodies to cleartext.
package format

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NoticeText converts an HTML-formatted school notice body to plain text.
// Tags are stripped, entities are decoded and non-breaking spaces become
// regular ones; character content keeps its original order. Malformed
// markup is handled best-effort, the parser never fails on it.
func NoticeText(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// unreachable with a string reader, but keep the passthrough anyway
		return strings.TrimSpace(content)
	}

	text := doc.Text()

	// entity decoding already happened in the parser; NBSP remains
	text = strings.ReplaceAll(text, " ", " ")

	return strings.TrimSpace(text)
}
