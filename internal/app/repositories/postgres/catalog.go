package postgres

import (
	"context"
	"fmt"

	"github.com/drosales/campusq/internal/app/models"
)

// Search fields arrive pre-validated against the repository whitelists,
// so interpolating the column name here is safe. Values still go through
// placeholders.
var searchColumns = map[string]string{
	"course_id": "course_id",
	"title":     "title",
	"dept_name": "dept_name",
	"id":        "id",
	"name":      "name",
}

// Courses lists courses with skip/limit paging.
func (s *Store) Courses(ctx context.Context, skip, limit int) ([]models.Course, error) {
	query := `
		SELECT course_id, title, dept_name, credits
		FROM course
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, wrap("list courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// CountCourses returns the total number of courses.
func (s *Store) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM course`).Scan(&count); err != nil {
		return 0, wrap("count courses", err)
	}
	return count, nil
}

// SearchCourses matches term as a case-insensitive substring of field.
func (s *Store) SearchCourses(ctx context.Context, field, term string, skip, limit int) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT course_id, title, dept_name, credits
		FROM course
		WHERE %s ILIKE '%%' || $1 || '%%'
		OFFSET $2 LIMIT $3
	`, searchColumns[field])

	rows, err := s.db.Query(ctx, query, term, skip, limit)
	if err != nil {
		return nil, wrap("search courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Instructors lists instructors with skip/limit paging.
func (s *Store) Instructors(ctx context.Context, skip, limit int) ([]models.Instructor, error) {
	query := `
		SELECT id, name, dept_name, salary
		FROM instructor
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, wrap("list instructors", err)
	}
	defer rows.Close()

	return scanInstructors(rows)
}

// CountInstructors returns the total number of instructors.
func (s *Store) CountInstructors(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM instructor`).Scan(&count); err != nil {
		return 0, wrap("count instructors", err)
	}
	return count, nil
}

// SearchInstructors matches term as a case-insensitive substring of field.
func (s *Store) SearchInstructors(ctx context.Context, field, term string, skip, limit int) ([]models.Instructor, error) {
	query := fmt.Sprintf(`
		SELECT id, name, dept_name, salary
		FROM instructor
		WHERE %s ILIKE '%%' || $1 || '%%'
		OFFSET $2 LIMIT $3
	`, searchColumns[field])

	rows, err := s.db.Query(ctx, query, term, skip, limit)
	if err != nil {
		return nil, wrap("search instructors", err)
	}
	defer rows.Close()

	return scanInstructors(rows)
}
