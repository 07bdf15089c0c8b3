package repositories

import (
	"context"
	"errors"

	"github.com/drosales/campusq/internal/app/models"
)

// ErrNoRecord is returned by single-record lookups when nothing matches.
// It is a normal outcome, distinct from a store failure; adapters map
// their driver's no-rows condition to it.
var ErrNoRecord = errors.New("no matching record")

// Store is the read-only access contract the query catalog is programmed
// against. Implementations exist for PostgreSQL and MongoDB and must be
// interchangeable: same matching semantics, same ordering (store insertion
// order unless a method says otherwise), same error mapping.
//
// Name matches (StudentsByName, InstructorByName, SectionsByBuilding,
// dept matching) are whole-string case-insensitive: anchored at both ends,
// never a substring match. Search* methods are the one exception and match
// substrings case-insensitively.
type Store interface {
	// CourseByID resolves a course by its exact id.
	CourseByID(ctx context.Context, courseID string) (*models.Course, error)
	// CourseByIDOrTitle resolves a course by exact id or by anchored
	// case-insensitive title, whichever matches first.
	CourseByIDOrTitle(ctx context.Context, key string) (*models.Course, error)
	// Courses lists courses in insertion order with skip/limit paging.
	Courses(ctx context.Context, skip, limit int) ([]models.Course, error)
	// CountCourses returns the total number of courses.
	CountCourses(ctx context.Context) (int64, error)
	// SearchCourses matches term as a case-insensitive substring of the
	// given field. Allowed fields: course_id, title, dept_name.
	SearchCourses(ctx context.Context, field, term string, skip, limit int) ([]models.Course, error)
	// PrereqsOf lists prerequisite edges of a course, capped at limit.
	PrereqsOf(ctx context.Context, courseID string, limit int) ([]models.Prereq, error)

	// StudentByID resolves a student by exact id.
	StudentByID(ctx context.Context, studentID string) (*models.Student, error)
	// StudentsByName lists all students whose name matches, capped at limit.
	StudentsByName(ctx context.Context, name string, limit int) ([]models.Student, error)
	// StudentsByDeptMinCredits lists students of a department with total
	// credits strictly greater than minCredits.
	StudentsByDeptMinCredits(ctx context.Context, deptName string, minCredits, limit int) ([]models.Student, error)

	// InstructorByID resolves an instructor by exact id.
	InstructorByID(ctx context.Context, instructorID string) (*models.Instructor, error)
	// InstructorByName resolves an instructor by name, first match wins.
	InstructorByName(ctx context.Context, name string) (*models.Instructor, error)
	// Instructors lists instructors in insertion order with skip/limit paging.
	Instructors(ctx context.Context, skip, limit int) ([]models.Instructor, error)
	// CountInstructors returns the total number of instructors.
	CountInstructors(ctx context.Context) (int64, error)
	// SearchInstructors matches term as a case-insensitive substring of the
	// given field. Allowed fields: id, name, dept_name.
	SearchInstructors(ctx context.Context, field, term string, skip, limit int) ([]models.Instructor, error)
	// SalaryStatsByDept groups instructors by department and computes
	// mean/min/max salary and headcount, ordered by mean salary descending.
	SalaryStatsByDept(ctx context.Context) ([]models.DeptSalaryStats, error)

	// SectionsBySecID lists every section carrying the section id,
	// across courses and semesters.
	SectionsBySecID(ctx context.Context, secID string, limit int) ([]models.Section, error)
	// SectionByKey resolves a section by its full composite key.
	SectionByKey(ctx context.Context, courseID, secID, semester string, year int) (*models.Section, error)
	// SectionsByBuilding lists sections held in the named building.
	SectionsByBuilding(ctx context.Context, building string, limit int) ([]models.Section, error)
	// TimeSlotsByID lists the meeting windows of a time-slot id.
	TimeSlotsByID(ctx context.Context, timeSlotID string, limit int) ([]models.TimeSlot, error)

	// TakesByStudent lists a student's enrollment records.
	TakesByStudent(ctx context.Context, studentID string, limit int) ([]models.Takes, error)
	// TakesByCourseGradePrefix lists enrollments in a course whose grade
	// starts with gradePrefix, compared case-insensitively.
	TakesByCourseGradePrefix(ctx context.Context, courseID, gradePrefix string, limit int) ([]models.Takes, error)
	// TeachesByInstructor lists an instructor's section assignments.
	TeachesByInstructor(ctx context.Context, instructorID string, limit int) ([]models.Teaches, error)
	// AdvisorOfStudent resolves a student's advisor edge, first match wins.
	AdvisorOfStudent(ctx context.Context, studentID string) (*models.Advisor, error)
	// AdviseesOf lists advisor edges pointing at an instructor.
	AdviseesOf(ctx context.Context, instructorID string, limit int) ([]models.Advisor, error)
}

// CourseSearchFields and InstructorSearchFields whitelist the fields the
// Search* methods accept. Adapters translate these names to their native
// column or document keys.
var (
	CourseSearchFields     = map[string]bool{"course_id": true, "title": true, "dept_name": true}
	InstructorSearchFields = map[string]bool{"id": true, "name": true, "dept_name": true}
)
