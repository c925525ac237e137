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

// Grade is a single grade a student received.
type Grade struct {
	ID                    int64       `json:"Id"`
	Lesson                Resource    `json:"Lesson"`
	Subject               Resource    `json:"Subject"`
	Student               Resource    `json:"Student"`
	Category              Resource    `json:"Category"`
	AddedBy               Resource    `json:"AddedBy"`
	Grade                 string      `json:"Grade"`
	Date                  string      `json:"Date"`
	AddDate               string      `json:"AddDate"`
	Semester              int64       `json:"Semester"`
	IsConstituent         bool        `json:"IsConstituent"`
	IsSemester            bool        `json:"IsSemester"`
	IsSemesterProposition bool        `json:"IsSemesterProposition"`
	IsFinal               bool        `json:"IsFinal"`
	IsFinalProposition    bool        `json:"IsFinalProposition"`
	Comments              []Resource  `json:"Comments,omitempty"`
	Improvement           *Resource   `json:"Improvement,omitempty"`
	Resit                 *Resource   `json:"Resit,omitempty"`
}

// GradeCategory describes the type of assessment a grade belongs to
// (test, quiz, homework and so on).
type GradeCategory struct {
	ID                  int64     `json:"Id"`
	Color               Resource  `json:"Color"`
	Name                string    `json:"Name"`
	AdultsExtramural    bool      `json:"AdultsExtramural"`
	AdultsDaily         bool      `json:"AdultsDaily"`
	Standard            bool      `json:"Standard"`
	IsReadOnly          string    `json:"IsReadOnly"`
	CountToTheAverage   bool      `json:"CountToTheAverage"`
	BlockAnyGrades      bool      `json:"BlockAnyGrades"`
	ObligationToPerform bool      `json:"ObligationToPerform"`
}

// GradeComment is a free-form remark a teacher attached to a grade.
type GradeComment struct {
	ID      int64    `json:"Id"`
	AddedBy Resource `json:"AddedBy"`
	Grade   Resource `json:"Grade"`
	Text    string   `json:"Text"`
}

// GradesResponse is the Synergia response listing all grades.
type GradesResponse struct {
	Grades    []Grade   `json:"Grades"`
	Resources Resources `json:"Resources"`
	URL       string    `json:"Url"`
}

// GradeCategoryResponse is the Synergia response for a single grade category.
type GradeCategoryResponse struct {
	Category  GradeCategory `json:"Category"`
	Resources Resources     `json:"Resources"`
}

// GradeCommentResponse is the Synergia response for a single grade comment.
// Comment is nil when the comment does not exist.
type GradeCommentResponse struct {
	Comment   *GradeComment `json:"Comment,omitempty"`
	Resources Resources     `json:"Resources"`
	URL       string        `json:"Url"`
}
