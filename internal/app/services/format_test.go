package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drosales/campusq/internal/app/models/dto"
)

func TestPrerequisitesTable(t *testing.T) {
	t.Run("tabulates prerequisites", func(t *testing.T) {
		table := PrerequisitesTable(&dto.PrerequisitesResult{
			Course: dto.CourseSummary{CourseID: "CS-347"},
			Prerequisites: []dto.CourseSummary{
				{CourseID: "CS-101", Title: "Intro. to Computer Science", DeptName: "Comp. Sci.", Credits: 4},
			},
		})

		assert.Equal(t, []string{"ID Prerrequisito", "Título", "Departamento", "Créditos"}, table.Columns)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, []string{"CS-101", "Intro. to Computer Science", "Comp. Sci.", "4"}, table.Rows[0])
	})

	t.Run("message collapses to a single row", func(t *testing.T) {
		table := PrerequisitesTable(&dto.PrerequisitesResult{Message: "Este curso no tiene prerrequisitos"})

		assert.Equal(t, []string{"Mensaje"}, table.Columns)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, []string{"Este curso no tiene prerrequisitos"}, table.Rows[0])
	})
}

func TestTranscriptTable(t *testing.T) {
	table := TranscriptTable(&dto.TranscriptResult{
		Student: dto.StudentSummary{ID: "00128"},
		Entries: []dto.TranscriptEntry{
			{CourseID: "CS-101", Title: "Intro. to Computer Science", Credits: 4, Semester: "Fall", Year: 2017, Grade: "A"},
		},
	})

	assert.Equal(t, []string{"ID Curso", "Título", "Créditos", "Semestre", "Año", "Calificación"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"CS-101", "Intro. to Computer Science", "4", "Fall", "2017", "A"}, table.Rows[0])
}

func TestSectionTables(t *testing.T) {
	details := SectionDetailsTable(&dto.SectionDetailsResult{
		Sections: []dto.SectionDetail{
			{CourseID: "CS-101", Title: "Intro. to Computer Science", SecID: "1", Semester: "Fall", Year: 2017, Building: "Packard", RoomNumber: "101", Schedule: "W 10:00-12:30"},
		},
	})
	assert.Equal(t, []string{"ID Curso", "Título", "Sección", "Semestre", "Año", "Edificio", "Sala", "Horario"}, details.Columns)
	require.Len(t, details.Rows, 1)
	assert.Equal(t, "2017", details.Rows[0][4])

	building := BuildingSectionsTable(&dto.BuildingSectionsResult{
		Building: "Packard",
		Sections: []dto.BuildingSection{
			{CourseID: "CS-101", Title: "Intro. to Computer Science", SecID: "1", Semester: "Fall", Year: 2017, RoomNumber: "101", TimeSlotID: "H"},
		},
	})
	assert.Equal(t, []string{"ID Curso", "Título", "Sección", "Semestre", "Año", "Sala", "Horario ID"}, building.Columns)
	require.Len(t, building.Rows, 1)
	assert.Equal(t, "H", building.Rows[0][6])
}

func TestAdvisorAndAdviseesTables(t *testing.T) {
	advisor := AdvisorTable(&dto.AdvisorResult{
		Students: []dto.StudentAdvisor{
			{StudentID: "00128", StudentName: "Zhang", StudentDept: "Comp. Sci.", TotalCredits: 102, AdvisorName: "Srinivasan", AdvisorDept: "Comp. Sci."},
		},
	})
	assert.Equal(t, []string{"ID Estudiante", "Nombre Estudiante", "Depto. Estudiante", "Créditos", "Nombre Asesor", "Depto. Asesor"}, advisor.Columns)
	require.Len(t, advisor.Rows, 1)
	assert.Equal(t, "102", advisor.Rows[0][3])

	advisees := AdviseesTable(&dto.AdviseesResult{
		Instructor: dto.InstructorSummary{Name: "Srinivasan"},
		Advisees: []dto.StudentSummary{
			{ID: "00128", Name: "Zhang", DeptName: "Comp. Sci.", TotalCredits: 102},
		},
	})
	assert.Equal(t, []string{"ID Estudiante", "Nombre", "Departamento", "Créditos"}, advisees.Columns)
	require.Len(t, advisees.Rows, 1)
	assert.Equal(t, []string{"00128", "Zhang", "Comp. Sci.", "102"}, advisees.Rows[0])
}

func TestTopGradesTable(t *testing.T) {
	table := TopGradesTable(&dto.TopGradesResult{
		Course: dto.CourseSummary{CourseID: "CS-101"},
		Students: []dto.GradeEntry{
			{StudentID: "00128", Name: "Zhang", DeptName: "Comp. Sci.", Grade: "A", Semester: "Fall", Year: 2017},
		},
	})

	assert.Equal(t, []string{"ID Estudiante", "Nombre", "Departamento", "Calificación", "Semestre", "Año"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"00128", "Zhang", "Comp. Sci.", "A", "Fall", "2017"}, table.Rows[0])
}

func TestTaughtCoursesTable(t *testing.T) {
	table := TaughtCoursesTable(&dto.TaughtCoursesResult{
		Instructor: dto.InstructorSummary{Name: "Srinivasan"},
		Courses: []dto.TaughtCourse{
			{CourseID: "CS-347", Title: "Database System Concepts", SecID: "1", Semester: "Fall", Year: 2017, Classroom: "Taylor 3128", Schedule: "M 8:00-8:50"},
		},
	})

	assert.Equal(t, []string{"ID Curso", "Título", "Sección", "Semestre", "Año", "Aula", "Horario"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Taylor 3128", table.Rows[0][5])
}

func TestSalaryReportTable(t *testing.T) {
	table := SalaryReportTable(&dto.SalaryReport{
		Departments: []dto.DeptSalary{
			{DeptName: "Physics", AvgSalary: 91000, MinSalary: 87000, MaxSalary: 95000.5, Instructors: 2},
		},
	})

	assert.Equal(t, []string{"Departamento", "Salario Promedio", "Total Profesores", "Salario Mínimo", "Salario Máximo"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Physics", "$91,000.00", "2", "$87,000.00", "$95,000.50"}, table.Rows[0])
}

func TestCreditsTable(t *testing.T) {
	table := CreditsTable(&dto.CreditsResult{
		DeptName:  "Comp. Sci.",
		Threshold: 90,
		Students: []dto.StudentSummary{
			{ID: "23121", Name: "Chavez", DeptName: "Comp. Sci.", TotalCredits: 110},
		},
	})

	assert.Equal(t, []string{"ID Estudiante", "Nombre", "Departamento", "Créditos"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"23121", "Chavez", "Comp. Sci.", "110"}, table.Rows[0])
}
