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

// UnreadCounts holds unread item counts across all message folders.
type UnreadCounts struct {
	Inbox                 int64 `json:"inbox"`
	Notes                 int64 `json:"notes"`
	Alerts                int64 `json:"alerts"`
	Substitutions         int64 `json:"substitutions"`
	Absences              int64 `json:"absences"`
	Justifications        int64 `json:"justifications"`
	Trash                 int64 `json:"trash"`
	ArchiveInbox          int64 `json:"archiveInbox"`
	ArchiveNotes          int64 `json:"archiveNotes"`
	ArchiveAlerts         int64 `json:"archiveAlerts"`
	ArchiveSubstitutions  int64 `json:"archiveSubstitutions"`
	ArchiveAbsences       int64 `json:"archiveAbsences"`
	ArchiveJustifications int64 `json:"archiveJustifications"`
	ArchiveTrash          int64 `json:"archiveTrash"`
}

// InboxMessage is a received message summary. Content is base64-encoded on
// the wire; see format.DecodeMessageContent.
type InboxMessage struct {
	MessageID         string   `json:"messageId"`
	SenderFirstName   string   `json:"senderFirstName"`
	SenderLastName    string   `json:"senderLastName"`
	SenderName        string   `json:"senderName"`
	Topic             string   `json:"topic"`
	Content           string   `json:"content"`
	SendDate          string   `json:"sendDate"`
	ReadDate          string   `json:"readDate,omitempty"`
	IsAnyFileAttached bool     `json:"isAnyFileAttached"`
	Tags              []string `json:"tags"`
	Category          string   `json:"category,omitempty"`
}

// OutboxMessage is a sent message summary. Content is base64-encoded on the
// wire.
type OutboxMessage struct {
	MessageID         string   `json:"messageId"`
	ReceiverFirstName string   `json:"receiverFirstName"`
	ReceiverLastName  string   `json:"receiverLastName"`
	ReceiverName      string   `json:"receiverName"`
	Topic             string   `json:"topic"`
	Content           string   `json:"content"`
	SendDate          string   `json:"sendDate"`
	IsAnyFileAttached bool     `json:"isAnyFileAttached"`
	Tags              []string `json:"tags"`
	Category          string   `json:"category,omitempty"`
}

// Attachment is a file attached to a message.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size *int64 `json:"size,omitempty"`
}

// MessageDetail is a full message including the base64-encoded body and
// attachments.
type MessageDetail struct {
	MessageID       string       `json:"messageId"`
	SenderID        string       `json:"senderId,omitempty"`
	SenderFirstName string       `json:"senderFirstName"`
	SenderLastName  string       `json:"senderLastName"`
	SenderName      string       `json:"senderName"`
	SenderGroup     string       `json:"senderGroup,omitempty"`
	Topic           string       `json:"topic"`
	Message         string       `json:"Message"`
	SendDate        string       `json:"sendDate"`
	ReadDate        string       `json:"readDate,omitempty"`
	Attachments     []Attachment `json:"attachments"`
	ReceiversCount  *int64       `json:"receiversCount,omitempty"`
	NoReply         *int64       `json:"noReply,omitempty"`
	Archive         *int64       `json:"archive,omitempty"`
}
