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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/renameio/v2/maybe"
	librus "github.com/librus-community/librus-go"
	"github.com/librus-community/librus-go/format"
	"github.com/librus-community/librus-go/logger"
	"github.com/librus-community/librus-go/types"
)

var ErrMissingMessageID = errors.New("attachments action needs a message ID (-m)")

// gradeLine formats a single grade as one output line.
func gradeLine(g types.Grade) string {
	sb := &strings.Builder{}

	sb.WriteString(g.Date)
	sb.WriteString("  subject ")
	sb.WriteString(g.Subject.ID.String())
	sb.WriteString("  semester ")
	fmt.Fprintf(sb, "%v", g.Semester)
	sb.WriteString("  grade ")
	sb.WriteString(g.Grade)

	return sb.String()
}

// noticeBlock formats a school notice with its body converted to plain
// text.
func noticeBlock(n types.SchoolNotice) string {
	sb := &strings.Builder{}

	sb.WriteString(n.CreationDate)
	sb.WriteString("  ")
	sb.WriteString(n.Subject)
	sb.WriteString("\n")
	sb.WriteString(format.NoticeText(n.Content))

	return sb.String()
}

// inboxLine formats a received message summary as one output line.
func inboxLine(m types.InboxMessage) string {
	sb := &strings.Builder{}

	sb.WriteString(m.SendDate)
	sb.WriteString("  ")
	sb.WriteString(m.SenderName)
	sb.WriteString(": ")
	sb.WriteString(m.Topic)

	if m.IsAnyFileAttached {
		sb.WriteString(" (attachments)")
	}

	return sb.String()
}

// outboxLine formats a sent message summary as one output line.
func outboxLine(m types.OutboxMessage) string {
	sb := &strings.Builder{}

	sb.WriteString(m.SendDate)
	sb.WriteString("  to ")
	sb.WriteString(m.ReceiverName)
	sb.WriteString(": ")
	sb.WriteString(m.Topic)

	return sb.String()
}

// runGrades prints all grades.
func runGrades(client *librus.Client) error {
	resp, err := client.Grades()
	if err != nil {
		return err
	}

	for _, g := range resp.Grades {
		fmt.Println(gradeLine(g))
	}

	logger.Debug().Msgf("Fetched %v grades", len(resp.Grades))

	return nil
}

// runAttendances prints all attendance records.
func runAttendances(client *librus.Client) error {
	resp, err := client.Attendances()
	if err != nil {
		return err
	}

	for _, a := range resp.Attendances {
		fmt.Printf("%v  lesson %v  type %v\n", a.Date, a.LessonNo, a.Type.ID)
	}

	return nil
}

// runHomeworks prints all homework assignments.
func runHomeworks(client *librus.Client) error {
	resp, err := client.Homeworks()
	if err != nil {
		return err
	}

	for _, h := range resp.Homeworks {
		fmt.Printf("%v  %v\n", h.Date, h.Content)
	}

	return nil
}

// runNotices prints school notices with HTML bodies converted to plain
// text.
func runNotices(client *librus.Client) error {
	resp, err := client.SchoolNotices()
	if err != nil {
		return err
	}

	for _, n := range resp.SchoolNotices {
		fmt.Println(noticeBlock(n))
		fmt.Println()
	}

	return nil
}

// runInbox prints a page of received messages.
func runInbox(client *librus.Client, page, limit int) error {
	msgs, err := client.InboxMessages(page, limit)
	if err != nil {
		return err
	}

	for _, m := range msgs {
		fmt.Println(inboxLine(m))
	}

	return nil
}

// runOutbox prints a page of sent messages.
func runOutbox(client *librus.Client, page, limit int) error {
	msgs, err := client.OutboxMessages(page, limit)
	if err != nil {
		return err
	}

	for _, m := range msgs {
		fmt.Println(outboxLine(m))
	}

	return nil
}

// runUnread prints unread counts for the main folders.
func runUnread(client *librus.Client) error {
	counts, err := client.UnreadCounts()
	if err != nil {
		return err
	}

	fmt.Printf("inbox: %v, alerts: %v, notes: %v\n", counts.Inbox, counts.Alerts, counts.Notes)

	return nil
}

// runAttachments downloads all attachments of a message into the output
// directory. Files are written atomically so an interrupted download never
// leaves a truncated file behind.
func runAttachments(client *librus.Client, messageID, dir string) error {
	if messageID == "" {
		return ErrMissingMessageID
	}

	detail, err := client.Message(messageID)
	if err != nil {
		return err
	}

	if content, err := format.DecodeMessageContent(detail.Message); err == nil {
		fmt.Printf("%v: %v\n\n%v\n", detail.SenderName, detail.Topic, content)
	}

	if len(detail.Attachments) == 0 {
		logger.Info().Msgf("Message %v has no attachments", messageID)

		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	for _, a := range detail.Attachments {
		data, err := client.Attachment(a.ID, detail.MessageID)
		if err != nil {
			return err
		}

		dest := filepath.Join(dir, filepath.Base(a.Name))
		if err := maybe.WriteFile(dest, data, 0o640); err != nil {
			return err
		}

		logger.Info().Msgf("Saved %v (%v)", dest, humanize.Bytes(uint64(len(data))))
	}

	return nil
}
