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

// Package types holds plain data records mirroring the JSON shapes returned
// by the Librus Synergia API and the Librus messages API. Instances are
// constructed solely by decoding server responses and carry no behavior
// beyond tolerant deserialization of inconsistently typed fields.
package types

// Resource is a reference to another API resource, carrying its identifier
// and the URL it can be fetched from. No local referential integrity is
// enforced; identifiers are forwarded as the service returned them.
type Resource struct {
	ID  FlexID `json:"Id"`
	URL string `json:"Url"`
}

// ResourceLink is a bare URL entry in the Resources map attached to most
// Synergia responses.
type ResourceLink struct {
	URL string `json:"Url"`
}

// Resources maps related resource names (e.g. "Grades\\Categories") to their
// API URLs. Keys vary per endpoint and schema version, so the map form keeps
// decoding tolerant.
type Resources map[string]ResourceLink
