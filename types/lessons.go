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

// Lesson links a teacher, a subject and a class.
type Lesson struct {
	ID      int64    `json:"Id"`
	Teacher Resource `json:"Teacher"`
	Subject Resource `json:"Subject"`
	Class   Resource `json:"Class"`
}

// Subject is an academic subject.
type Subject struct {
	ID                int64  `json:"Id"`
	Name              string `json:"Name"`
	Number            int64  `json:"No"`
	Short             string `json:"Short"`
	IsExtraCurricular *bool  `json:"IsExtraCurricular,omitempty"`
	IsBlockLesson     *bool  `json:"IsBlockLesson,omitempty"`
}

// LessonResponse is the Synergia response for a single lesson.
type LessonResponse struct {
	Lesson    Lesson    `json:"Lesson"`
	Resources Resources `json:"Resources"`
	URL       string    `json:"Url"`
}

// SubjectResponse is the Synergia response for a single subject. Subject is
// nil when the subject does not exist.
type SubjectResponse struct {
	Subject   *Subject  `json:"Subject,omitempty"`
	Resources Resources `json:"Resources"`
	URL       string    `json:"Url"`
}
