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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newSynergiaServer returns a test server and a client whose Synergia base
// URL points at it. Handlers are registered on mux by the caller.
func newSynergiaServer(t *testing.T) (*http.ServeMux, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return mux, newTestClient(t, srv)
}

func TestGrades(t *testing.T) {
	t.Parallel()

	mux, client := newSynergiaServer(t)
	mux.HandleFunc("/Grades", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}

		w.Write([]byte(`{
			"Grades": [
				{"Id": 1, "Grade": "4", "Date": "2024-02-10", "Semester": 1,
					"Subject": {"Id": 30, "Url": "u"}},
				{"Id": 2, "Grade": "5-", "Date": "2024-02-12", "Semester": 1,
					"Subject": {"Id": 31, "Url": "u"}}
			],
			"Url": "https://example.com/Grades"
		}`))
	})

	resp, err := client.Grades()
	if err != nil {
		t.Fatalf("Grades: %v", err)
	}

	if len(resp.Grades) != 2 {
		t.Fatalf("got %v grades, want 2", len(resp.Grades))
	}

	if resp.Grades[1].Grade != "5-" || resp.Grades[1].Subject.ID != "31" {
		t.Errorf("unexpected grade: %+v", resp.Grades[1])
	}
}

func TestSchoolNoticesStringIDs(t *testing.T) {
	t.Parallel()

	mux, client := newSynergiaServer(t)
	mux.HandleFunc("/SchoolNotices", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"SchoolNotices": [
				{"Id": "abc123", "Subject": "Dzień otwarty",
					"Content": "<p>Zapraszamy&nbsp;wszystkich</p>",
					"AddedBy": {"Id": "99", "Url": "u"},
					"CreationDate": "2024-03-01 09:00:00"}
			],
			"Url": "https://example.com/SchoolNotices"
		}`))
	})

	resp, err := client.SchoolNotices()
	if err != nil {
		t.Fatalf("SchoolNotices: %v", err)
	}

	if len(resp.SchoolNotices) != 1 {
		t.Fatalf("got %v notices, want 1", len(resp.SchoolNotices))
	}

	n := resp.SchoolNotices[0]
	if n.ID != "abc123" || n.AddedBy.ID != "99" {
		t.Errorf("unexpected notice IDs: %+v", n)
	}
}

func TestAPIErrorPreservesStatusAndBody(t *testing.T) {
	t.Parallel()

	const errBody = `{"Status":"Error","Code":"TokenIsExpired"}`

	mux, client := newSynergiaServer(t)
	mux.HandleFunc("/Me", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(errBody))
	})

	_, err := client.Me()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Me error = %v, want *APIError", err)
	}

	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %v, want %v", apiErr.StatusCode, http.StatusUnauthorized)
	}

	if apiErr.Body != errBody {
		t.Errorf("Body = %q, want %q", apiErr.Body, errBody)
	}
}

func TestParseErrorPreservesBody(t *testing.T) {
	t.Parallel()

	const garbage = `<html>maintenance</html>`

	mux, client := newSynergiaServer(t)
	mux.HandleFunc("/Grades", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(garbage))
	})

	_, err := client.Grades()

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Grades error = %v, want *ParseError", err)
	}

	if parseErr.Body != garbage {
		t.Errorf("Body = %q, want %q", parseErr.Body, garbage)
	}

	if parseErr.Unwrap() == nil {
		t.Error("ParseError should wrap the decoder error")
	}
}

func TestUserNotFound(t *testing.T) {
	t.Parallel()

	mux, client := newSynergiaServer(t)
	mux.HandleFunc("/Users/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Resources": {}, "Url": "https://example.com/Users/12"}`))
	})

	resp, err := client.User(12)
	if err != nil {
		t.Fatalf("User: %v", err)
	}

	if resp.User != nil {
		t.Errorf("User = %+v, want nil", resp.User)
	}
}
