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

package types

import (
	"encoding/json"
	"strconv"
)

// FlexID is an identifier that the remote service encodes inconsistently,
// sometimes as a JSON number and sometimes as a numeric string, depending on
// the endpoint and schema version. Both encodings decode into the same
// normalized string form without data loss. FlexID always re-encodes as a
// JSON string.
type FlexID string

// UnmarshalJSON accepts a JSON string, number or null. Numbers are kept in
// their original textual form, so no precision is lost on large identifiers.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*f = FlexID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*f = FlexID(n.String())

	return nil
}

// MarshalJSON always encodes the identifier as a JSON string.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String returns the normalized identifier value.
func (f FlexID) String() string {
	return string(f)
}

// Int64 converts the identifier to int64, returning an error for identifiers
// which are empty or not numeric.
func (f FlexID) Int64() (int64, error) {
	return strconv.ParseInt(string(f), 10, 64)
}
