package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drosales/campusq/internal/app/models"
	"github.com/drosales/campusq/internal/app/repositories"
	"github.com/drosales/campusq/internal/pkg/apperrors"
	"github.com/drosales/campusq/internal/pkg/dberrors"
)

// Store implements the repository contract over a PostgreSQL pool.
// Name matching uses LOWER(x) = LOWER($n), anchored by construction.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new PostgreSQL-backed store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// wrap classifies a driver error as a store failure. The read path issues
// only fixed statements, so anything beyond no-rows means the backing
// store is unreachable or broken.
func wrap(op string, err error) error {
	return apperrors.NewStoreUnavailableError(
		"La base de datos no está disponible",
		fmt.Errorf("%s: %w", op, err),
	)
}

// CourseByID resolves a course by its exact id.
func (s *Store) CourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	query := `
		SELECT course_id, title, dept_name, credits
		FROM course
		WHERE course_id = $1
	`

	var course models.Course
	err := s.db.QueryRow(ctx, query, courseID).Scan(
		&course.CourseID,
		&course.Title,
		&course.DeptName,
		&course.Credits,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("course by id", err)
	}

	return &course, nil
}

// CourseByIDOrTitle resolves a course by exact id or anchored
// case-insensitive title.
func (s *Store) CourseByIDOrTitle(ctx context.Context, key string) (*models.Course, error) {
	query := `
		SELECT course_id, title, dept_name, credits
		FROM course
		WHERE course_id = $1 OR LOWER(title) = LOWER($1)
		LIMIT 1
	`

	var course models.Course
	err := s.db.QueryRow(ctx, query, key).Scan(
		&course.CourseID,
		&course.Title,
		&course.DeptName,
		&course.Credits,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("course by id or title", err)
	}

	return &course, nil
}

// PrereqsOf lists prerequisite edges of a course.
func (s *Store) PrereqsOf(ctx context.Context, courseID string, limit int) ([]models.Prereq, error) {
	query := `
		SELECT course_id, prereq_id
		FROM prereq
		WHERE course_id = $1
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, courseID, limit)
	if err != nil {
		return nil, wrap("prereqs of course", err)
	}
	defer rows.Close()

	var prereqs []models.Prereq
	for rows.Next() {
		var p models.Prereq
		if err := rows.Scan(&p.CourseID, &p.PrereqID); err != nil {
			return nil, wrap("prereqs of course", err)
		}
		prereqs = append(prereqs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("prereqs of course", err)
	}

	return prereqs, nil
}

// StudentByID resolves a student by exact id.
func (s *Store) StudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `
		SELECT id, name, dept_name, tot_cred
		FROM student
		WHERE id = $1
	`

	var student models.Student
	err := s.db.QueryRow(ctx, query, studentID).Scan(
		&student.ID,
		&student.Name,
		&student.DeptName,
		&student.TotalCredits,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("student by id", err)
	}

	return &student, nil
}

// StudentsByName lists students whose name equals name, ignoring case.
func (s *Store) StudentsByName(ctx context.Context, name string, limit int) ([]models.Student, error) {
	query := `
		SELECT id, name, dept_name, tot_cred
		FROM student
		WHERE LOWER(name) = LOWER($1)
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, name, limit)
	if err != nil {
		return nil, wrap("students by name", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// StudentsByDeptMinCredits lists students of a department holding strictly
// more than minCredits total credits.
func (s *Store) StudentsByDeptMinCredits(ctx context.Context, deptName string, minCredits, limit int) ([]models.Student, error) {
	query := `
		SELECT id, name, dept_name, tot_cred
		FROM student
		WHERE LOWER(dept_name) = LOWER($1) AND tot_cred > $2
		LIMIT $3
	`

	rows, err := s.db.Query(ctx, query, deptName, minCredits, limit)
	if err != nil {
		return nil, wrap("students by dept and credits", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// InstructorByID resolves an instructor by exact id.
func (s *Store) InstructorByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	query := `
		SELECT id, name, dept_name, salary
		FROM instructor
		WHERE id = $1
	`

	var instructor models.Instructor
	err := s.db.QueryRow(ctx, query, instructorID).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.DeptName,
		&instructor.Salary,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("instructor by id", err)
	}

	return &instructor, nil
}

// InstructorByName resolves an instructor by anchored case-insensitive
// name, first match wins.
func (s *Store) InstructorByName(ctx context.Context, name string) (*models.Instructor, error) {
	query := `
		SELECT id, name, dept_name, salary
		FROM instructor
		WHERE LOWER(name) = LOWER($1)
		LIMIT 1
	`

	var instructor models.Instructor
	err := s.db.QueryRow(ctx, query, name).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.DeptName,
		&instructor.Salary,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("instructor by name", err)
	}

	return &instructor, nil
}

// SalaryStatsByDept computes per-department salary aggregates, ordered by
// mean salary descending.
func (s *Store) SalaryStatsByDept(ctx context.Context) ([]models.DeptSalaryStats, error) {
	query := `
		SELECT dept_name, AVG(salary), MIN(salary), MAX(salary), COUNT(*)
		FROM instructor
		GROUP BY dept_name
		ORDER BY AVG(salary) DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrap("salary stats by dept", err)
	}
	defer rows.Close()

	var stats []models.DeptSalaryStats
	for rows.Next() {
		var st models.DeptSalaryStats
		var count int64
		if err := rows.Scan(&st.DeptName, &st.AvgSalary, &st.MinSalary, &st.MaxSalary, &count); err != nil {
			return nil, wrap("salary stats by dept", err)
		}
		st.Count = int(count)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("salary stats by dept", err)
	}

	return stats, nil
}

// SectionsBySecID lists every section with the given section id.
func (s *Store) SectionsBySecID(ctx context.Context, secID string, limit int) ([]models.Section, error) {
	query := sectionSelect + `
		WHERE sec_id = $1
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, secID, limit)
	if err != nil {
		return nil, wrap("sections by sec id", err)
	}
	defer rows.Close()

	return scanSections(rows)
}

// SectionByKey resolves a section by its full composite key.
func (s *Store) SectionByKey(ctx context.Context, courseID, secID, semester string, year int) (*models.Section, error) {
	query := sectionSelect + `
		WHERE course_id = $1 AND sec_id = $2 AND semester = $3 AND year = $4
	`

	var section models.Section
	err := s.db.QueryRow(ctx, query, courseID, secID, semester, year).Scan(
		&section.CourseID,
		&section.SecID,
		&section.Semester,
		&section.Year,
		&section.Building,
		&section.RoomNumber,
		&section.TimeSlotID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("section by key", err)
	}

	return &section, nil
}

// SectionsByBuilding lists sections held in the named building.
func (s *Store) SectionsByBuilding(ctx context.Context, building string, limit int) ([]models.Section, error) {
	query := sectionSelect + `
		WHERE LOWER(building) = LOWER($1)
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, building, limit)
	if err != nil {
		return nil, wrap("sections by building", err)
	}
	defer rows.Close()

	return scanSections(rows)
}

// TimeSlotsByID lists the meeting windows of a time-slot id.
func (s *Store) TimeSlotsByID(ctx context.Context, timeSlotID string, limit int) ([]models.TimeSlot, error) {
	query := `
		SELECT time_slot_id, day, start_hr, start_min, end_hr, end_min
		FROM time_slot
		WHERE time_slot_id = $1
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, timeSlotID, limit)
	if err != nil {
		return nil, wrap("time slots by id", err)
	}
	defer rows.Close()

	var slots []models.TimeSlot
	for rows.Next() {
		var ts models.TimeSlot
		if err := rows.Scan(&ts.TimeSlotID, &ts.Day, &ts.StartHour, &ts.StartMin, &ts.EndHour, &ts.EndMin); err != nil {
			return nil, wrap("time slots by id", err)
		}
		slots = append(slots, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("time slots by id", err)
	}

	return slots, nil
}

// TakesByStudent lists a student's enrollment records.
func (s *Store) TakesByStudent(ctx context.Context, studentID string, limit int) ([]models.Takes, error) {
	query := `
		SELECT id, course_id, sec_id, semester, year, grade
		FROM takes
		WHERE id = $1
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, studentID, limit)
	if err != nil {
		return nil, wrap("takes by student", err)
	}
	defer rows.Close()

	return scanTakes(rows)
}

// TakesByCourseGradePrefix lists enrollments in a course whose grade
// starts with gradePrefix, compared case-insensitively.
func (s *Store) TakesByCourseGradePrefix(ctx context.Context, courseID, gradePrefix string, limit int) ([]models.Takes, error) {
	query := `
		SELECT id, course_id, sec_id, semester, year, grade
		FROM takes
		WHERE course_id = $1 AND grade ILIKE $2 || '%'
		LIMIT $3
	`

	rows, err := s.db.Query(ctx, query, courseID, gradePrefix, limit)
	if err != nil {
		return nil, wrap("takes by grade prefix", err)
	}
	defer rows.Close()

	return scanTakes(rows)
}

// TeachesByInstructor lists an instructor's section assignments.
func (s *Store) TeachesByInstructor(ctx context.Context, instructorID string, limit int) ([]models.Teaches, error) {
	query := `
		SELECT id, course_id, sec_id, semester, year
		FROM teaches
		WHERE id = $1
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, instructorID, limit)
	if err != nil {
		return nil, wrap("teaches by instructor", err)
	}
	defer rows.Close()

	var teaches []models.Teaches
	for rows.Next() {
		var t models.Teaches
		if err := rows.Scan(&t.InstructorID, &t.CourseID, &t.SecID, &t.Semester, &t.Year); err != nil {
			return nil, wrap("teaches by instructor", err)
		}
		teaches = append(teaches, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("teaches by instructor", err)
	}

	return teaches, nil
}

// AdvisorOfStudent resolves a student's advisor edge, first match wins.
func (s *Store) AdvisorOfStudent(ctx context.Context, studentID string) (*models.Advisor, error) {
	query := `
		SELECT s_id, i_id
		FROM advisor
		WHERE s_id = $1
		LIMIT 1
	`

	var advisor models.Advisor
	err := s.db.QueryRow(ctx, query, studentID).Scan(&advisor.StudentID, &advisor.InstructorID)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, repositories.ErrNoRecord
		}
		return nil, wrap("advisor of student", err)
	}

	return &advisor, nil
}

// AdviseesOf lists advisor edges pointing at an instructor.
func (s *Store) AdviseesOf(ctx context.Context, instructorID string, limit int) ([]models.Advisor, error) {
	query := `
		SELECT s_id, i_id
		FROM advisor
		WHERE i_id = $1
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, instructorID, limit)
	if err != nil {
		return nil, wrap("advisees of instructor", err)
	}
	defer rows.Close()

	var advisors []models.Advisor
	for rows.Next() {
		var a models.Advisor
		if err := rows.Scan(&a.StudentID, &a.InstructorID); err != nil {
			return nil, wrap("advisees of instructor", err)
		}
		advisors = append(advisors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("advisees of instructor", err)
	}

	return advisors, nil
}
