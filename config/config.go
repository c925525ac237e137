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

// Package config loads and sanity-checks the CLI configuration file.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/librus-community/librus-go/logger"
)

const (
	// DefaultPage and DefaultLimit apply when the messages block is absent.
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxLimit caps the messages page size.
	MaxLimit = 100

	// DefaultOutputDir is where attachments land when no directory is
	// configured.
	DefaultOutputDir = "attachments"
)

// LoadConfig attempts to load and decode a configuration file in TOML
// format, doing a minimal sanity checking and optionally returning an error.
func LoadConfig(file string) (TomlConfig, error) {
	var config TomlConfig
	if _, err := toml.DecodeFile(file, &config); err != nil {
		return config, err
	}

	checkAuthConf(&config)
	checkMessagesConf(&config)
	checkOutputConf(&config)

	return config, nil
}

// checkAuthConf does a minimal sanity check on the auth configuration block,
// ensuring that when a username is present, a password is present as well
// and neither contains whitespace. Credentials may legitimately be absent
// from the file, in which case the environment supplies them and AuthEnabled
// stays false.
func checkAuthConf(config *TomlConfig) {
	if config.Auth.Username == "" && config.Auth.Password == "" {
		return
	}

	if config.Auth.Username == "" || config.Auth.Password == "" {
		logger.Fatal().Msg("Configuration error: auth block needs both username and password")
	}

	if !isValidUsername(config.Auth.Username) {
		logger.Fatal().Msgf("Configuration error: username %q is not valid", config.Auth.Username)
	}

	config.AuthEnabled = true
}

// checkMessagesConf fills in paging defaults and caps the page size.
func checkMessagesConf(config *TomlConfig) {
	if config.Messages.Page < 1 {
		config.Messages.Page = DefaultPage
	}

	if config.Messages.Limit < 1 {
		config.Messages.Limit = DefaultLimit
	}

	if config.Messages.Limit > MaxLimit {
		logger.Info().Msgf("Messages limit %v is above %v, capping", config.Messages.Limit, MaxLimit)
		config.Messages.Limit = MaxLimit
	}
}

// checkOutputConf fills in the attachment directory default.
func checkOutputConf(config *TomlConfig) {
	if config.Output.Directory == "" {
		config.Output.Directory = DefaultOutputDir
	}
}
