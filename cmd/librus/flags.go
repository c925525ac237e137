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

package main

import (
	"github.com/pborman/getopt/v2"
)

const (
	DefaultConfFile = ".librus.toml" // default configuration filename
	DefaultAction   = "grades"      // default CLI action
)

var (
	debug, colorLogs, showVersion *bool
	confFile, action, messageID   *string
	outputDir                     *string
	page, limit                   *int
)

// init initializes flags configuration.
func init() {
	debug = getopt.BoolLong("verbose", 'v', "enable verbose/debug log level")
	colorLogs = getopt.BoolLong("colorlogs", 'l', "enable colored console logging")
	showVersion = getopt.BoolLong("version", 'V', "show version and exit")
	confFile = getopt.StringLong("conffile", 'f', DefaultConfFile, "configuration file (in TOML)")
	action = getopt.StringLong("action", 'a', DefaultAction,
		"action to run: grades, attendances, homeworks, notices, inbox, outbox, unread, attachments")
	messageID = getopt.StringLong("message", 'm', "", "message ID (for the attachments action)")
	outputDir = getopt.StringLong("output", 'o', "", "attachment output directory")
	page = getopt.IntLong("page", 'p', 0, "message page, 1-indexed")
	limit = getopt.IntLong("limit", 'n', 0, "message page size")
}

// parseFlags parses input arguments and flags.
func parseFlags() {
	getopt.Parse()
}
