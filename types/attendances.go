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

// Attendance is a single attendance record for a lesson. The service has
// shipped the record identifier both as a number and as a string across
// schema versions, hence FlexID.
type Attendance struct {
	ID             FlexID    `json:"Id"`
	Lesson         Resource  `json:"Lesson"`
	Student        Resource  `json:"Student"`
	Date           string    `json:"Date"`
	AddDate        string    `json:"AddDate"`
	LessonNo       int64     `json:"LessonNo"`
	Semester       int64     `json:"Semester"`
	Type           Resource  `json:"Type"`
	AddedBy        Resource  `json:"AddedBy"`
	Trip           *Resource `json:"Trip,omitempty"`
}

// AttendanceType describes a kind of attendance (present, absent, late and
// so on).
type AttendanceType struct {
	ID             int64     `json:"Id"`
	Name           string    `json:"Name"`
	Short          string    `json:"Short"`
	Standard       bool      `json:"Standard"`
	ColorRGB       string    `json:"ColorRGB,omitempty"`
	IsPresenceKind bool      `json:"IsPresenceKind"`
	Order          int64     `json:"Order"`
	Identifier     string    `json:"Identifier"`
	StandardType   *Resource `json:"StandardType,omitempty"`
	Color          *Resource `json:"Color,omitempty"`
}

// AttendancesResponse is the Synergia response listing all attendance
// records.
type AttendancesResponse struct {
	Attendances []Attendance `json:"Attendances"`
	Resources   Resources    `json:"Resources"`
	URL         string       `json:"Url"`
}

// AttendanceTypesResponse is the Synergia response listing all attendance
// types.
type AttendanceTypesResponse struct {
	Types     []AttendanceType `json:"Types"`
	Resources Resources        `json:"Resources"`
	URL       string           `json:"Url"`
}
