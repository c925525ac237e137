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
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/hako/durafmt"
	librus "github.com/librus-community/librus-go"
	"github.com/librus-community/librus-go/config"
	"github.com/librus-community/librus-go/logger"
	"github.com/librus-community/librus-go/version"
)

const loginAttempts = 3 // login retries before giving up

// main is the entry point of the CLI.
//
// It parses flags, sets the global log level, optionally enables slow colored
// console logging, sets up a context with signal integration, loads the TOML
// config if present, builds and logs in a Synergia client and dispatches the
// requested action.
func main() {
	parseFlags()

	initLog()

	if *showVersion {
		fmt.Printf("librus %v, built with %v\n", version.Main(), runtime.Version())
		fmt.Println(version.ReadVersion("github.com/PuerkitoBio/goquery"))
		fmt.Println(version.ReadVersion("github.com/rs/zerolog"))
		fmt.Println(version.ReadVersion("github.com/json-iterator/go"))

		return
	}

	// context with signal integration
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// load TOML config; a missing file is fine, credentials then come from
	// the environment
	cfg, err := config.LoadConfig(*confFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatal().Msgf("Error loading configuration: %v", err)
		}

		logger.Debug().Msgf("No configuration file at %v, using environment credentials", *confFile)
	}

	client, err := newClientFromConfig(ctx, cfg)
	if err != nil {
		logger.Fatal().Msgf("Error creating Synergia client: %v", err)
	}
	defer client.CloseConnections()

	start := time.Now()

	// transient login failures get a few attempts; the library itself never
	// retries
	err = retry.Do(
		client.Login,
		retry.Attempts(loginAttempts),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Msgf("Login attempt %v failed: %v", n+1, err)
		}),
	)
	if err != nil {
		logger.Fatal().Msgf("Error logging in as %v: %v", client.Username(), err)
	}

	logger.Info().Msgf("Logged in as %v", client.Username())

	if err := dispatch(client, cfg); err != nil {
		logger.Fatal().Msgf("Error running action %v: %v", *action, err)
	}

	logger.Info().Msgf("Completed in %v", durafmt.Parse(time.Since(start)).LimitFirstN(2))
}

// newClientFromConfig builds a Synergia client from the configuration file
// credentials when present, falling back to the LIBRUS_USERNAME and
// LIBRUS_PASSWORD environment variables.
func newClientFromConfig(ctx context.Context, cfg config.TomlConfig) (*librus.Client, error) {
	if cfg.AuthEnabled {
		return librus.NewBuilder().
			Username(cfg.Auth.Username).
			Password(cfg.Auth.Password).
			Build(ctx)
	}

	return librus.FromEnvWithContext(ctx)
}

// dispatch runs the action selected with the -a flag. Paging flags override
// the configuration file defaults.
func dispatch(client *librus.Client, cfg config.TomlConfig) error {
	pg := cfg.Messages.Page
	if *page > 0 {
		pg = *page
	}

	if pg < 1 {
		pg = config.DefaultPage
	}

	lim := cfg.Messages.Limit
	if *limit > 0 && *limit <= config.MaxLimit {
		lim = *limit
	}

	if lim < 1 {
		lim = config.DefaultLimit
	}

	dir := cfg.Output.Directory
	if *outputDir != "" {
		dir = *outputDir
	}

	if dir == "" {
		dir = config.DefaultOutputDir
	}

	switch *action {
	case "grades":
		return runGrades(client)
	case "attendances":
		return runAttendances(client)
	case "homeworks":
		return runHomeworks(client)
	case "notices":
		return runNotices(client)
	case "inbox":
		return runInbox(client, pg, lim)
	case "outbox":
		return runOutbox(client, pg, lim)
	case "unread":
		return runUnread(client)
	case "attachments":
		return runAttachments(client, *messageID, dir)
	default:
		return fmt.Errorf("unknown action %q", *action)
	}
}
