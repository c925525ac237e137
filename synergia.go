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

// Me fetches account, profile and class information of the authenticated
// user.
func (c *Client) Me() (*types.MeResponse, error) {
	return apiGet[types.MeResponse](c, "Me")
}

// Grades fetches all grades across all subjects.
func (c *Client) Grades() (*types.GradesResponse, error) {
	return apiGet[types.GradesResponse](c, "Grades")
}

// GradeCategory fetches a grade category (test, quiz, homework and so on)
// by ID.
func (c *Client) GradeCategory(id int64) (*types.GradeCategoryResponse, error) {
	return apiGet[types.GradeCategoryResponse](c, fmt.Sprintf("Grades/Categories/%v", id))
}

// GradeComment fetches a grade comment by ID.
func (c *Client) GradeComment(id int64) (*types.GradeCommentResponse, error) {
	return apiGet[types.GradeCommentResponse](c, fmt.Sprintf("Grades/Comments/%v", id))
}

// Lesson fetches a lesson by ID. Lessons link a teacher, a subject and a
// class.
func (c *Client) Lesson(id int64) (*types.LessonResponse, error) {
	return apiGet[types.LessonResponse](c, fmt.Sprintf("Lessons/%v", id))
}

// Subject fetches a subject by ID.
func (c *Client) Subject(id int64) (*types.SubjectResponse, error) {
	return apiGet[types.SubjectResponse](c, fmt.Sprintf("Subjects/%v", id))
}

// Attendances fetches attendance records for all lessons.
func (c *Client) Attendances() (*types.AttendancesResponse, error) {
	return apiGet[types.AttendancesResponse](c, "Attendances/")
}

// AttendanceTypes fetches all attendance types (present, absent, late and
// so on).
func (c *Client) AttendanceTypes() (*types.AttendanceTypesResponse, error) {
	return apiGet[types.AttendanceTypesResponse](c, "Attendances/Types/")
}

// Homeworks fetches all homework assignments.
func (c *Client) Homeworks() (*types.HomeworksResponse, error) {
	return apiGet[types.HomeworksResponse](c, "HomeWorks/")
}

// SchoolNotices fetches all school notices (announcements). Notice bodies
// often carry HTML markup; see format.NoticeText.
func (c *Client) SchoolNotices() (*types.SchoolNoticesResponse, error) {
	return apiGet[types.SchoolNoticesResponse](c, "SchoolNotices")
}

// User fetches a user (teacher, student or parent) by ID.
func (c *Client) User(id int64) (*types.UserResponse, error) {
	return apiGet[types.UserResponse](c, fmt.Sprintf("Users/%v", id))
}

// Users fetches details of the currently authenticated user.
func (c *Client) Users() (*types.UserResponse, error) {
	return apiGet[types.UserResponse](c, "Users")
}
