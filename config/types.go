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

package config

// Auth struct holds a single Librus Synergia account.
type Auth struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Messages struct holds inbox/outbox paging defaults.
type Messages struct {
	Page  int `toml:"page"`
	Limit int `toml:"limit"`
}

// Output struct holds attachment download configuration.
type Output struct {
	Directory string `toml:"directory"`
}

// TomlConfig struct holds all other configuration structures. AuthEnabled is
// set during loading when a complete credential pair is present.
type TomlConfig struct {
	Auth        Auth     `toml:"auth"`
	Messages    Messages `toml:"messages"`
	Output      Output   `toml:"output"`
	AuthEnabled bool     `toml:"auth_enabled"`
}
