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

package librus

import (
	"fmt"

	"github.com/librus-community/librus-go/types"
)

// UnreadCounts fetches unread item counts for all message folders.
func (c *Client) UnreadCounts() (*types.UnreadCounts, error) {
	counts, err := messagesGet[types.UnreadCounts](c, "inbox/unreadMessagesCount")
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

// InboxMessages fetches a page of received message summaries. Page numbers
// are 1-indexed; page and limit are passed straight to the service as query
// parameters and no pagination state is kept client-side.
func (c *Client) InboxMessages(page, limit int) ([]types.InboxMessage, error) {
	return messagesGet[[]types.InboxMessage](c, fmt.Sprintf("inbox/messages?page=%v&limit=%v", page, limit))
}

// OutboxMessages fetches a page of sent message summaries. Page numbers are
// 1-indexed.
func (c *Client) OutboxMessages(page, limit int) ([]types.OutboxMessage, error) {
	return messagesGet[[]types.OutboxMessage](c, fmt.Sprintf("outbox/messages?page=%v&limit=%v", page, limit))
}

// Message fetches full message details by ID, including the base64-encoded
// body and the attachment list. See format.DecodeMessageContent for the
// body.
func (c *Client) Message(messageID string) (*types.MessageDetail, error) {
	detail, err := messagesGet[types.MessageDetail](c, "inbox/messages/"+messageID)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

// Attachment downloads the raw bytes of a message attachment.
func (c *Client) Attachment(attachmentID, messageID string) ([]byte, error) {
	if err := c.ensureMessagesInitialized(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("attachments/%v/messages/%v", attachmentID, messageID)

	return c.getBody(joinEndpoint(c.messagesBase, endpoint), false)
}
