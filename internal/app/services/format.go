package services

import (
	"strconv"

	"github.com/drosales/campusq/internal/app/models/dto"
	"github.com/drosales/campusq/internal/pkg/helpers"
)

// The tabular formatter. Each function maps one structured result to the
// flat {columns, rows} shape: every cell stringified, salaries rendered
// as currency, informational messages collapsed to a single-row table.

// PrerequisitesTable renders the prerequisites result as a table.
func PrerequisitesTable(r *dto.PrerequisitesResult) dto.TableResponse {
	if r.Message != "" {
		return dto.NewMessageTable(r.Message)
	}

	rows := make([][]string, 0, len(r.Prerequisites))
	for _, c := range r.Prerequisites {
		rows = append(rows, []string{c.CourseID, c.Title, c.DeptName, strconv.Itoa(c.Credits)})
	}
	return dto.TableResponse{
		Columns: []string{"ID Prerrequisito", "Título", "Departamento", "Créditos"},
		Rows:    rows,
	}
}

// TranscriptTable renders the transcript result as a table.
func TranscriptTable(r *dto.TranscriptResult) dto.TableResponse {
	if r.Message != "" {
		return dto.NewMessageTable(r.Message)
	}

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{
			e.CourseID, e.Title, strconv.Itoa(e.Credits), e.Semester, strconv.Itoa(e.Year), e.Grade,
		})
	}
	return dto.TableResponse{
		Columns: []string{"ID Curso", "Título", "Créditos", "Semestre", "Año", "Calificación"},
		Rows:    rows,
	}
}

// SectionDetailsTable renders the section-details result as a table.
func SectionDetailsTable(r *dto.SectionDetailsResult) dto.TableResponse {
	rows := make([][]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		rows = append(rows, []string{
			s.CourseID, s.Title, s.SecID, s.Semester, strconv.Itoa(s.Year),
			s.Building, s.RoomNumber, s.Schedule,
		})
	}
	return dto.TableResponse{
		Columns: []string{"ID Curso", "Título", "Sección", "Semestre", "Año", "Edificio", "Sala", "Horario"},
		Rows:    rows,
	}
}

// BuildingSectionsTable renders the sections-by-building result as a table.
func BuildingSectionsTable(r *dto.BuildingSectionsResult) dto.TableResponse {
	rows := make([][]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		rows = append(rows, []string{
			s.CourseID, s.Title, s.SecID, s.Semester, strconv.Itoa(s.Year), s.RoomNumber, s.TimeSlotID,
		})
	}
	return dto.TableResponse{
		Columns: []string{"ID Curso", "Título", "Sección", "Semestre", "Año", "Sala", "Horario ID"},
		Rows:    rows,
	}
}

// AdvisorTable renders the student-and-advisor result as a table.
func AdvisorTable(r *dto.AdvisorResult) dto.TableResponse {
	rows := make([][]string, 0, len(r.Students))
	for _, s := range r.Students {
		rows = append(rows, []string{
			s.StudentID, s.StudentName, s.StudentDept, strconv.Itoa(s.TotalCredits),
			s.AdvisorName, s.AdvisorDept,
		})
	}
	return dto.TableResponse{
		Columns: []string{"ID Estudiante", "Nombre Estudiante", "Depto. Estudiante", "Créditos", "Nombre Asesor", "Depto. Asesor"},
		Rows:    rows,
	}
}

// TopGradesTable renders the grade-A result as a table.
func TopGradesTable(r *dto.TopGradesResult) dto.TableResponse {
	if r.Message != "" {
		return dto.NewMessageTable(r.Message)
	}

	rows := make([][]string, 0, len(r.Students))
	for _, s := range r.Students {
		rows = append(rows, []string{
			s.StudentID, s.Name, s.DeptName, s.Grade, s.Semester, strconv.Itoa(s.Year),
		})
	}
	return dto.TableResponse{
		Columns: []string{"ID Estudiante", "Nombre", "Departamento", "Calificación", "Semestre", "Año"},
		Rows:    rows,
	}
}

// AdviseesTable renders the students-by-advisor result as a table.
func AdviseesTable(r *dto.AdviseesResult) dto.TableResponse {
	if r.Message != "" {
		return dto.NewMessageTable(r.Message)
	}

	rows := make([][]string, 0, len(r.Advisees))
	for _, s := range r.Advisees {
		rows = append(rows, []string{s.ID, s.Name, s.DeptName, strconv.Itoa(s.TotalCredits)})
	}
	return dto.TableResponse{
		Columns: []string{"ID Estudiante", "Nombre", "Departamento", "Créditos"},
		Rows:    rows,
	}
}

// TaughtCoursesTable renders the courses-by-instructor result as a table.
func TaughtCoursesTable(r *dto.TaughtCoursesResult) dto.TableResponse {
	if r.Message != "" {
		return dto.NewMessageTable(r.Message)
	}

	rows := make([][]string, 0, len(r.Courses))
	for _, c := range r.Courses {
		rows = append(rows, []string{
			c.CourseID, c.Title, c.SecID, c.Semester, strconv.Itoa(c.Year), c.Classroom, c.Schedule,
		})
	}
	return dto.TableResponse{
		Columns: []string{"ID Curso", "Título", "Sección", "Semestre", "Año", "Aula", "Horario"},
		Rows:    rows,
	}
}

// SalaryReportTable renders the salary report as a table with salaries
// formatted as currency.
func SalaryReportTable(r *dto.SalaryReport) dto.TableResponse {
	rows := make([][]string, 0, len(r.Departments))
	for _, d := range r.Departments {
		rows = append(rows, []string{
			d.DeptName,
			helpers.FormatCurrency(d.AvgSalary),
			strconv.Itoa(d.Instructors),
			helpers.FormatCurrency(d.MinSalary),
			helpers.FormatCurrency(d.MaxSalary),
		})
	}
	return dto.TableResponse{
		Columns: []string{"Departamento", "Salario Promedio", "Total Profesores", "Salario Mínimo", "Salario Máximo"},
		Rows:    rows,
	}
}

// CreditsTable renders the credit-threshold result as a table.
func CreditsTable(r *dto.CreditsResult) dto.TableResponse {
	rows := make([][]string, 0, len(r.Students))
	for _, s := range r.Students {
		rows = append(rows, []string{s.ID, s.Name, s.DeptName, strconv.Itoa(s.TotalCredits)})
	}
	return dto.TableResponse{
		Columns: []string{"ID Estudiante", "Nombre", "Departamento", "Créditos"},
		Rows:    rows,
	}
}
