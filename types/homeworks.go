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

// Homework is a homework assignment. LessonNo is a string on the wire even
// though it is numeric.
type Homework struct {
	ID        int64      `json:"Id"`
	Content   string     `json:"Content"`
	Date      string     `json:"Date"`
	Category  Resource   `json:"Category"`
	LessonNo  string     `json:"LessonNo,omitempty"`
	TimeFrom  string     `json:"TimeFrom"`
	TimeTo    string     `json:"TimeTo"`
	CreatedBy Resource   `json:"CreatedBy"`
	Class     *Resource  `json:"Class,omitempty"`
	Subject   *Resource  `json:"Subject,omitempty"`
	AddDate   string     `json:"AddDate"`
	Classroom *Classroom `json:"Classroom,omitempty"`
}

// Classroom describes the room a homework assignment was given in.
type Classroom struct {
	ID     int64  `json:"Id"`
	Symbol string `json:"Symbol"`
	Name   string `json:"Name"`
	Size   int64  `json:"Size"`
}

// HomeworksResponse is the Synergia response listing all homework
// assignments.
type HomeworksResponse struct {
	Homeworks []Homework `json:"HomeWorks"`
	Resources Resources  `json:"Resources"`
	URL       string     `json:"Url"`
}
