package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/drosales/campusq/internal/app/models"
)

const sectionSelect = `
		SELECT course_id, sec_id, semester, year, building, room_number, time_slot_id
		FROM section`

func scanStudents(rows pgx.Rows) ([]models.Student, error) {
	var students []models.Student
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.DeptName, &st.TotalCredits); err != nil {
			return nil, wrap("scan student", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("scan student", err)
	}
	return students, nil
}

func scanSections(rows pgx.Rows) ([]models.Section, error) {
	var sections []models.Section
	for rows.Next() {
		var sec models.Section
		if err := rows.Scan(
			&sec.CourseID,
			&sec.SecID,
			&sec.Semester,
			&sec.Year,
			&sec.Building,
			&sec.RoomNumber,
			&sec.TimeSlotID,
		); err != nil {
			return nil, wrap("scan section", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("scan section", err)
	}
	return sections, nil
}

func scanTakes(rows pgx.Rows) ([]models.Takes, error) {
	var takes []models.Takes
	for rows.Next() {
		var t models.Takes
		if err := rows.Scan(&t.StudentID, &t.CourseID, &t.SecID, &t.Semester, &t.Year, &t.Grade); err != nil {
			return nil, wrap("scan takes", err)
		}
		takes = append(takes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("scan takes", err)
	}
	return takes, nil
}

func scanCourses(rows pgx.Rows) ([]models.Course, error) {
	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.CourseID, &c.Title, &c.DeptName, &c.Credits); err != nil {
			return nil, wrap("scan course", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("scan course", err)
	}
	return courses, nil
}

func scanInstructors(rows pgx.Rows) ([]models.Instructor, error) {
	var instructors []models.Instructor
	for rows.Next() {
		var in models.Instructor
		if err := rows.Scan(&in.ID, &in.Name, &in.DeptName, &in.Salary); err != nil {
			return nil, wrap("scan instructor", err)
		}
		instructors = append(instructors, in)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("scan instructor", err)
	}
	return instructors, nil
}
