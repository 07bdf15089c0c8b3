package services

import (
	"context"
	"strings"
	"sync"

	"github.com/drosales/campusq/internal/app/models"
	"github.com/drosales/campusq/internal/app/repositories"
)

// fakeStore is an in-memory Store with the adapter matching semantics:
// anchored case-insensitive name matches, case-insensitive grade prefix,
// insertion order preserved. It counts calls so tests can assert that
// validation failures never touch the store.
type fakeStore struct {
	mu    sync.Mutex
	calls int

	courses     []models.Course
	prereqs     []models.Prereq
	students    []models.Student
	instructors []models.Instructor
	sections    []models.Section
	takes       []models.Takes
	teaches     []models.Teaches
	advisors    []models.Advisor
	timeSlots   []models.TimeSlot
	salaryStats []models.DeptSalaryStats

	// err, when set, is returned by every method
	err error
}

func (f *fakeStore) touch() error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.err
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func capped[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func (f *fakeStore) CourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.courses {
		if f.courses[i].CourseID == courseID {
			c := f.courses[i]
			return &c, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) CourseByIDOrTitle(ctx context.Context, key string) (*models.Course, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.courses {
		if f.courses[i].CourseID == key || strings.EqualFold(f.courses[i].Title, key) {
			c := f.courses[i]
			return &c, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) Courses(ctx context.Context, skip, limit int) ([]models.Course, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	if skip >= len(f.courses) {
		return nil, nil
	}
	return capped(f.courses[skip:], limit), nil
}

func (f *fakeStore) CountCourses(ctx context.Context) (int64, error) {
	if err := f.touch(); err != nil {
		return 0, err
	}
	return int64(len(f.courses)), nil
}

func (f *fakeStore) SearchCourses(ctx context.Context, field, term string, skip, limit int) ([]models.Course, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Course
	for _, c := range f.courses {
		var value string
		switch field {
		case "course_id":
			value = c.CourseID
		case "title":
			value = c.Title
		case "dept_name":
			value = c.DeptName
		}
		if strings.Contains(strings.ToLower(value), strings.ToLower(term)) {
			out = append(out, c)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	return capped(out[skip:], limit), nil
}

func (f *fakeStore) PrereqsOf(ctx context.Context, courseID string, limit int) ([]models.Prereq, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Prereq
	for _, p := range f.prereqs {
		if p.CourseID == courseID {
			out = append(out, p)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) StudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.students {
		if f.students[i].ID == studentID {
			st := f.students[i]
			return &st, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) StudentsByName(ctx context.Context, name string, limit int) ([]models.Student, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Student
	for _, st := range f.students {
		if strings.EqualFold(st.Name, name) {
			out = append(out, st)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) StudentsByDeptMinCredits(ctx context.Context, deptName string, minCredits, limit int) ([]models.Student, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Student
	for _, st := range f.students {
		if strings.EqualFold(st.DeptName, deptName) && st.TotalCredits > minCredits {
			out = append(out, st)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) InstructorByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.instructors {
		if f.instructors[i].ID == instructorID {
			in := f.instructors[i]
			return &in, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) InstructorByName(ctx context.Context, name string) (*models.Instructor, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.instructors {
		if strings.EqualFold(f.instructors[i].Name, name) {
			in := f.instructors[i]
			return &in, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) Instructors(ctx context.Context, skip, limit int) ([]models.Instructor, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	if skip >= len(f.instructors) {
		return nil, nil
	}
	return capped(f.instructors[skip:], limit), nil
}

func (f *fakeStore) CountInstructors(ctx context.Context) (int64, error) {
	if err := f.touch(); err != nil {
		return 0, err
	}
	return int64(len(f.instructors)), nil
}

func (f *fakeStore) SearchInstructors(ctx context.Context, field, term string, skip, limit int) ([]models.Instructor, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Instructor
	for _, in := range f.instructors {
		var value string
		switch field {
		case "id":
			value = in.ID
		case "name":
			value = in.Name
		case "dept_name":
			value = in.DeptName
		}
		if strings.Contains(strings.ToLower(value), strings.ToLower(term)) {
			out = append(out, in)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	return capped(out[skip:], limit), nil
}

func (f *fakeStore) SalaryStatsByDept(ctx context.Context) ([]models.DeptSalaryStats, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	return f.salaryStats, nil
}

func (f *fakeStore) SectionsBySecID(ctx context.Context, secID string, limit int) ([]models.Section, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Section
	for _, sec := range f.sections {
		if sec.SecID == secID {
			out = append(out, sec)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) SectionByKey(ctx context.Context, courseID, secID, semester string, year int) (*models.Section, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.sections {
		sec := f.sections[i]
		if sec.CourseID == courseID && sec.SecID == secID && sec.Semester == semester && sec.Year == year {
			return &sec, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) SectionsByBuilding(ctx context.Context, building string, limit int) ([]models.Section, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Section
	for _, sec := range f.sections {
		if strings.EqualFold(sec.Building, building) {
			out = append(out, sec)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) TimeSlotsByID(ctx context.Context, timeSlotID string, limit int) ([]models.TimeSlot, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.TimeSlot
	for _, ts := range f.timeSlots {
		if ts.TimeSlotID == timeSlotID {
			out = append(out, ts)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) TakesByStudent(ctx context.Context, studentID string, limit int) ([]models.Takes, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Takes
	for _, t := range f.takes {
		if t.StudentID == studentID {
			out = append(out, t)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) TakesByCourseGradePrefix(ctx context.Context, courseID, gradePrefix string, limit int) ([]models.Takes, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Takes
	for _, t := range f.takes {
		if t.CourseID != courseID || t.Grade == nil {
			continue
		}
		if strings.HasPrefix(strings.ToLower(*t.Grade), strings.ToLower(gradePrefix)) {
			out = append(out, t)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) TeachesByInstructor(ctx context.Context, instructorID string, limit int) ([]models.Teaches, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Teaches
	for _, t := range f.teaches {
		if t.InstructorID == instructorID {
			out = append(out, t)
		}
	}
	return capped(out, limit), nil
}

func (f *fakeStore) AdvisorOfStudent(ctx context.Context, studentID string) (*models.Advisor, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	for i := range f.advisors {
		if f.advisors[i].StudentID == studentID {
			a := f.advisors[i]
			return &a, nil
		}
	}
	return nil, repositories.ErrNoRecord
}

func (f *fakeStore) AdviseesOf(ctx context.Context, instructorID string, limit int) ([]models.Advisor, error) {
	if err := f.touch(); err != nil {
		return nil, err
	}
	var out []models.Advisor
	for _, a := range f.advisors {
		if a.InstructorID == instructorID {
			out = append(out, a)
		}
	}
	return capped(out, limit), nil
}

var _ repositories.Store = (*fakeStore)(nil)

func strPtr(s string) *string { return &s }
