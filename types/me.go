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

// Account holds the authenticated account details.
type Account struct {
	ID                 int64    `json:"Id"`
	UserID             int64    `json:"UserId"`
	FirstName          string   `json:"FirstName"`
	LastName           string   `json:"LastName"`
	Email              string   `json:"Email"`
	GroupID            int64    `json:"GroupId"`
	IsActive           bool     `json:"IsActive"`
	Login              string   `json:"Login"`
	IsPremium          bool     `json:"IsPremium"`
	IsPremiumDemo      bool     `json:"IsPremiumDemo"`
	ExpiredPremiumDate *int64   `json:"ExpiredPremiumDate,omitempty"`
	PremiumAddons      []string `json:"PremiumAddons"`
}

// Profile is the basic user profile attached to the current session.
type Profile struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
}

// Me combines account, profile and class information of the authenticated
// user.
type Me struct {
	Account Account  `json:"Account"`
	Refresh int64    `json:"Refresh"`
	User    Profile  `json:"User"`
	Class   Resource `json:"Class"`
}

// MeResponse is the Synergia response with the current user information.
type MeResponse struct {
	Me        Me        `json:"Me"`
	Resources Resources `json:"Resources"`
	URL       string    `json:"Url"`
}
