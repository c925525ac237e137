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
	"bytes"
	"encoding/base64"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
)

// newMessagesServer returns a mux with the warm-up endpoint registered plus a
// client pointed at it, along with a counter of warm-up requests.
func newMessagesServer(t *testing.T) (*http.ServeMux, *Client, *atomic.Int64) {
	t.Helper()

	var warmups atomic.Int64

	mux, client := newSynergiaServer(t)
	mux.HandleFunc("/wiadomosci3", func(w http.ResponseWriter, _ *http.Request) {
		warmups.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	return mux, client, &warmups
}

func TestInboxMessages(t *testing.T) {
	t.Parallel()

	mux, client, warmups := newMessagesServer(t)
	mux.HandleFunc("/api/inbox/messages", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "1" || q.Get("limit") != "10" {
			t.Errorf("query = %v, want page=1 limit=10", q)
		}

		w.Write([]byte(`{"data": [
			{"messageId": "101", "senderName": "Anna Nowak", "topic": "Wycieczka",
				"sendDate": "2024-03-01 10:00:00", "isAnyFileAttached": true},
			{"messageId": "102", "senderName": "Jan Kowalski", "topic": "Zebranie",
				"sendDate": "2024-03-02 11:30:00"}
		]}`))
	})

	msgs, err := client.InboxMessages(1, 10)
	if err != nil {
		t.Fatalf("InboxMessages: %v", err)
	}

	if len(msgs) != 2 || len(msgs) > 10 {
		t.Fatalf("got %v messages, want 2", len(msgs))
	}

	for _, m := range msgs {
		if m.MessageID == "" || m.SenderName == "" {
			t.Errorf("incomplete summary: %+v", m)
		}
	}

	if !msgs[0].IsAnyFileAttached || msgs[1].IsAnyFileAttached {
		t.Error("attachment flags decoded wrong")
	}

	if warmups.Load() != 1 {
		t.Errorf("warm-up requests = %v, want 1", warmups.Load())
	}
}

func TestOutboxMessages(t *testing.T) {
	t.Parallel()

	mux, client, _ := newMessagesServer(t)
	mux.HandleFunc("/api/outbox/messages", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": [
			{"messageId": "201", "receiverName": "Anna Nowak", "topic": "Re: Wycieczka",
				"sendDate": "2024-03-03 08:15:00"}
		]}`))
	})

	msgs, err := client.OutboxMessages(2, 5)
	if err != nil {
		t.Fatalf("OutboxMessages: %v", err)
	}

	if len(msgs) != 1 || msgs[0].ReceiverName != "Anna Nowak" {
		t.Errorf("unexpected outbox decode: %+v", msgs)
	}
}

func TestUnreadCounts(t *testing.T) {
	t.Parallel()

	mux, client, _ := newMessagesServer(t)
	mux.HandleFunc("/api/inbox/unreadMessagesCount", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": {"inbox": 3, "alerts": 1, "notes": 0, "archiveInbox": 12}}`))
	})

	counts, err := client.UnreadCounts()
	if err != nil {
		t.Fatalf("UnreadCounts: %v", err)
	}

	if counts.Inbox != 3 || counts.Alerts != 1 || counts.ArchiveInbox != 12 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestMessageDetailBody(t *testing.T) {
	t.Parallel()

	body := base64.StdEncoding.EncodeToString([]byte("Spotkanie odwołane"))

	mux, client, _ := newMessagesServer(t)
	mux.HandleFunc("/api/inbox/messages/101", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": {"messageId": "101", "senderName": "Anna Nowak",
			"topic": "Odwołanie", "Message": "` + body + `",
			"attachments": [{"id": "55", "name": "plan.pdf"}]}}`))
	})

	detail, err := client.Message("101")
	if err != nil {
		t.Fatalf("Message: %v", err)
	}

	if detail.Message != body || len(detail.Attachments) != 1 {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestAttachment(t *testing.T) {
	t.Parallel()

	payload := []byte("%PDF-1.4 fake attachment bytes")

	mux, client, _ := newMessagesServer(t)
	mux.HandleFunc("/api/attachments/55/messages/101", func(w http.ResponseWriter, _ *http.Request) {
		w.Write(payload)
	})

	got, err := client.Attachment("55", "101")
	if err != nil {
		t.Fatalf("Attachment: %v", err)
	}

	if !bytes.Equal(got, payload) {
		t.Errorf("Attachment = %q, want %q", got, payload)
	}
}

func TestWarmupHappensOnce(t *testing.T) {
	t.Parallel()

	mux, client, warmups := newMessagesServer(t)
	mux.HandleFunc("/api/inbox/unreadMessagesCount", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": {"inbox": 0}}`))
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := client.UnreadCounts(); err != nil {
				t.Errorf("UnreadCounts: %v", err)
			}
		}()
	}

	wg.Wait()

	if warmups.Load() != 1 {
		t.Errorf("warm-up requests = %v, want exactly 1", warmups.Load())
	}
}
