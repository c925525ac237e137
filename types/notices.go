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

// SchoolNotice is a school announcement. Content frequently carries HTML
// markup; see the format package for a plain-text conversion. The service
// has shipped notice identifiers both as numbers and as strings, hence
// FlexID.
type SchoolNotice struct {
	ID           FlexID   `json:"Id"`
	StartDate    string   `json:"StartDate"`
	EndDate      string   `json:"EndDate"`
	Subject      string   `json:"Subject"`
	Content      string   `json:"Content"`
	AddedBy      Resource `json:"AddedBy"`
	CreationDate string   `json:"CreationDate"`
	WasRead      bool     `json:"WasRead"`
}

// SchoolNoticesResponse is the Synergia response listing all school notices.
type SchoolNoticesResponse struct {
	SchoolNotices []SchoolNotice `json:"SchoolNotices"`
	Resources     Resources      `json:"Resources,omitempty"`
	URL           string         `json:"Url"`
}
