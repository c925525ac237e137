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

// Package logger provides the process-wide zerolog logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the global structured logger. Callers may replace it, for
// instance to enable colored console output or to capture output in tests.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Output duplicates the global logger with a different destination writer.
func Output(w io.Writer) zerolog.Logger {
	return Logger.Output(w)
}

// Debug starts a debug-level log event.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level log event.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level log event.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level log event.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a fatal-level log event; sending it exits the process.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Print logs without a level, mimicking the standard library logger.
func Print(v ...any) {
	Logger.Print(v...)
}

// Printf logs a formatted message without a level.
func Printf(format string, v ...any) {
	Logger.Printf(format, v...)
}
