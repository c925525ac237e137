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

import (
	"encoding/json"
	"testing"
)

func TestGradesResponseDecode(t *testing.T) {
	t.Parallel()

	payload := `{
		"Grades": [{
			"Id": 1,
			"Lesson": {"Id": 2, "Url": "https://example.com/Lessons/2"},
			"Subject": {"Id": 3, "Url": "https://example.com/Subjects/3"},
			"Student": {"Id": 4, "Url": "https://example.com/Users/4"},
			"Category": {"Id": 5, "Url": "https://example.com/Grades/Categories/5"},
			"AddedBy": {"Id": 6, "Url": "https://example.com/Users/6"},
			"Grade": "5+",
			"Date": "2024-03-01",
			"AddDate": "2024-03-01 14:05:12",
			"Semester": 2,
			"IsConstituent": true,
			"IsSemester": false,
			"IsSemesterProposition": false,
			"IsFinal": false,
			"IsFinalProposition": false
		}],
		"Resources": {"Grades/Categories": {"Url": "https://example.com/Grades/Categories"}},
		"Url": "https://example.com/Grades"
	}`

	var resp GradesResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(resp.Grades) != 1 {
		t.Fatalf("got %v grades, want 1", len(resp.Grades))
	}

	g := resp.Grades[0]
	if g.Grade != "5+" || g.Semester != 2 || !g.IsConstituent {
		t.Errorf("unexpected grade decode: %+v", g)
	}

	// optional fields absent on the wire stay nil
	if g.Improvement != nil || g.Resit != nil || g.Comments != nil {
		t.Errorf("optional fields should be nil: %+v", g)
	}

	if resp.Resources["Grades/Categories"].URL == "" {
		t.Error("resources map not decoded")
	}
}

func TestAttendanceDecodeBothIDEncodings(t *testing.T) {
	t.Parallel()

	asNumber := `{"Id": 77, "Date": "2024-03-01", "LessonNo": 4,
		"Lesson": {"Id": 1, "Url": "u"}, "Student": {"Id": 2, "Url": "u"},
		"Type": {"Id": 3, "Url": "u"}, "AddedBy": {"Id": 4, "Url": "u"},
		"AddDate": "2024-03-01 08:00:00", "Semester": 1}`
	asString := `{"Id": "77", "Date": "2024-03-01", "LessonNo": 4,
		"Lesson": {"Id": 1, "Url": "u"}, "Student": {"Id": 2, "Url": "u"},
		"Type": {"Id": 3, "Url": "u"}, "AddedBy": {"Id": 4, "Url": "u"},
		"AddDate": "2024-03-01 08:00:00", "Semester": 1}`

	var a, b Attendance
	if err := json.Unmarshal([]byte(asNumber), &a); err != nil {
		t.Fatalf("Unmarshal number ID: %v", err)
	}

	if err := json.Unmarshal([]byte(asString), &b); err != nil {
		t.Fatalf("Unmarshal string ID: %v", err)
	}

	if a.ID != b.ID {
		t.Errorf("attendance IDs differ across encodings: %q vs %q", a.ID, b.ID)
	}

	if a.Trip != nil {
		t.Error("absent Trip should stay nil")
	}
}

func TestUserDecodeOptionalFields(t *testing.T) {
	t.Parallel()

	payload := `{"Id": 10, "AccountId": "10u", "FirstName": "Jan", "LastName": "Kowalski"}`

	var u User
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if u.Class != nil || u.Unit != nil || u.ClassRegisterNumber != nil {
		t.Errorf("optional fields should be nil: %+v", u)
	}
}

func TestMessageDetailDecode(t *testing.T) {
	t.Parallel()

	payload := `{
		"messageId": "101",
		"senderName": "Anna Nowak",
		"topic": "Wycieczka",
		"Message": "V3ljaWVjemth",
		"sendDate": "2024-03-01 10:00:00",
		"attachments": [{"id": "55", "name": "plan.pdf", "size": 2048}]
	}`

	var d MessageDetail
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if d.MessageID != "101" || d.Message != "V3ljaWVjemth" {
		t.Errorf("unexpected detail decode: %+v", d)
	}

	if len(d.Attachments) != 1 {
		t.Fatalf("got %v attachments, want 1", len(d.Attachments))
	}

	a := d.Attachments[0]
	if a.ID != "55" || a.Name != "plan.pdf" || a.Size == nil || *a.Size != 2048 {
		t.Errorf("unexpected attachment decode: %+v", a)
	}
}
