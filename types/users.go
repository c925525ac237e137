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

// User is a person known to the school system: a student, a teacher or a
// parent. AccountID is a string on the wire.
type User struct {
	ID                  int64      `json:"Id"`
	AccountID           string     `json:"AccountId"`
	FirstName           string     `json:"FirstName"`
	LastName            string     `json:"LastName"`
	Class               *UserClass `json:"Class,omitempty"`
	Unit                *Resource  `json:"Unit,omitempty"`
	ClassRegisterNumber *int64     `json:"ClassRegisterNumber,omitempty"`
	IsEmployee          bool       `json:"IsEmployee"`
	GroupID             int64      `json:"GroupId"`
}

// UserClass is a reference to the class a student belongs to.
type UserClass struct {
	ID   int64  `json:"Id"`
	URL  string `json:"Url"`
	UUID string `json:"UUID"`
}

// UserResponse is the Synergia response for a single user. User is nil when
// the user does not exist.
type UserResponse struct {
	User      *User     `json:"User,omitempty"`
	Resources Resources `json:"Resources"`
	URL       string    `json:"Url"`
}
