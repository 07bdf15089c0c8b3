package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drosales/campusq/internal/app/models"
	"github.com/drosales/campusq/internal/pkg/apperrors"
)

func newTestStore() *fakeStore {
	return &fakeStore{
		courses: []models.Course{
			{CourseID: "CS-347", Title: "Database System Concepts", DeptName: "Comp. Sci.", Credits: 3},
			{CourseID: "CS-101", Title: "Intro. to Computer Science", DeptName: "Comp. Sci.", Credits: 4},
			{CourseID: "MATH-201", Title: "Discrete Mathematics", DeptName: "Math", Credits: 3},
			{CourseID: "PHY-101", Title: "Physical Principles", DeptName: "Physics", Credits: 4},
		},
		prereqs: []models.Prereq{
			{CourseID: "CS-347", PrereqID: "CS-101"},
			{CourseID: "CS-347", PrereqID: "MATH-201"},
		},
		students: []models.Student{
			{ID: "00128", Name: "Zhang", DeptName: "Comp. Sci.", TotalCredits: 102},
			{ID: "12345", Name: "Shankar", DeptName: "Comp. Sci.", TotalCredits: 32},
			{ID: "45678", Name: "Levy", DeptName: "Physics", TotalCredits: 46},
			{ID: "23121", Name: "Chavez", DeptName: "Comp. Sci.", TotalCredits: 110},
		},
		instructors: []models.Instructor{
			{ID: "10101", Name: "Srinivasan", DeptName: "Comp. Sci.", Salary: 65000},
			{ID: "22222", Name: "Einstein", DeptName: "Physics", Salary: 95000},
		},
		sections: []models.Section{
			{CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Building: "Packard", RoomNumber: "101", TimeSlotID: "H"},
			{CourseID: "CS-347", SecID: "1", Semester: "Fall", Year: 2017, Building: "Taylor", RoomNumber: "3128", TimeSlotID: "A"},
		},
		timeSlots: []models.TimeSlot{
			{TimeSlotID: "A", Day: "M", StartHour: 8, StartMin: 0, EndHour: 8, EndMin: 50},
			{TimeSlotID: "A", Day: "W", StartHour: 8, StartMin: 0, EndHour: 8, EndMin: 50},
			{TimeSlotID: "H", Day: "W", StartHour: 10, StartMin: 0, EndHour: 12, EndMin: 30},
		},
	}
}

func TestMissingParametersNeverTouchStore(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		run  func(s *QueryService) error
	}{
		{"prerequisites", func(s *QueryService) error {
			_, err := s.CoursePrerequisites(ctx, "")
			return err
		}},
		{"transcript", func(s *QueryService) error {
			_, err := s.StudentTranscript(ctx, "")
			return err
		}},
		{"section details", func(s *QueryService) error {
			_, err := s.SectionDetails(ctx, "")
			return err
		}},
		{"sections by building", func(s *QueryService) error {
			_, err := s.SectionsByBuilding(ctx, "")
			return err
		}},
		{"student advisor", func(s *QueryService) error {
			_, err := s.StudentAdvisor(ctx, "")
			return err
		}},
		{"top grades", func(s *QueryService) error {
			_, err := s.TopGradeStudents(ctx, "")
			return err
		}},
		{"advisees", func(s *QueryService) error {
			_, err := s.AdviseesOf(ctx, "")
			return err
		}},
		{"taught courses", func(s *QueryService) error {
			_, err := s.CoursesTaughtBy(ctx, "")
			return err
		}},
		{"credits", func(s *QueryService) error {
			_, err := s.StudentsAboveCredits(ctx, "", DefaultCreditThreshold)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore()
			svc := NewQueryService(store)

			err := tc.run(svc)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMissingParameter)
			assert.Equal(t, 0, store.callCount(), "validation failure must not reach the store")
		})
	}
}

func TestCoursePrerequisites(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves prerequisites in edge order", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.CoursePrerequisites(ctx, "CS-347")
		require.NoError(t, err)

		assert.Equal(t, "CS-347", result.Course.CourseID)
		assert.Empty(t, result.Message)
		require.Len(t, result.Prerequisites, 2)
		assert.Equal(t, "CS-101", result.Prerequisites[0].CourseID)
		assert.Equal(t, "Intro. to Computer Science", result.Prerequisites[0].Title)
		assert.Equal(t, "MATH-201", result.Prerequisites[1].CourseID)
	})

	t.Run("course without prerequisites is informational", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.CoursePrerequisites(ctx, "CS-101")
		require.NoError(t, err)
		assert.Empty(t, result.Prerequisites)
		assert.Equal(t, "Este curso no tiene prerrequisitos", result.Message)
	})

	t.Run("dangling edges are skipped", func(t *testing.T) {
		store := newTestStore()
		store.prereqs = append(store.prereqs, models.Prereq{CourseID: "CS-347", PrereqID: "GHOST-1"})
		svc := NewQueryService(store)

		result, err := svc.CoursePrerequisites(ctx, "CS-347")
		require.NoError(t, err)
		require.Len(t, result.Prerequisites, 2)
		for _, p := range result.Prerequisites {
			assert.NotEqual(t, "GHOST-1", p.CourseID)
		}
	})

	t.Run("unknown course is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.CoursePrerequisites(ctx, "CS-000")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "El curso 'CS-000' no existe", err.Error())
	})
}

func TestStudentTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by year then semester as raw strings", func(t *testing.T) {
		store := newTestStore()
		store.takes = []models.Takes{
			{StudentID: "00128", CourseID: "CS-347", SecID: "1", Semester: "Spring", Year: 2018, Grade: strPtr("B+")},
			{StudentID: "00128", CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Grade: strPtr("A")},
			{StudentID: "00128", CourseID: "PHY-101", SecID: "1", Semester: "Fall", Year: 2018, Grade: strPtr("A-")},
		}
		svc := NewQueryService(store)

		result, err := svc.StudentTranscript(ctx, "00128")
		require.NoError(t, err)
		require.Len(t, result.Entries, 3)

		// 2017 precedes 2018, and within 2018 "Fall" < "Spring"
		assert.Equal(t, "CS-101", result.Entries[0].CourseID)
		assert.Equal(t, "PHY-101", result.Entries[1].CourseID)
		assert.Equal(t, "CS-347", result.Entries[2].CourseID)
	})

	t.Run("missing course and grade degrade to N/A", func(t *testing.T) {
		store := newTestStore()
		store.takes = []models.Takes{
			{StudentID: "00128", CourseID: "GONE-9", SecID: "1", Semester: "Fall", Year: 2017, Grade: nil},
		}
		svc := NewQueryService(store)

		result, err := svc.StudentTranscript(ctx, "00128")
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "N/A", result.Entries[0].Title)
		assert.Equal(t, "N/A", result.Entries[0].Grade)
		assert.Zero(t, result.Entries[0].Credits)
	})

	t.Run("no enrollments is informational", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.StudentTranscript(ctx, "12345")
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, "El estudiante Shankar no tiene cursos registrados", result.Message)
	})

	t.Run("unknown student is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.StudentTranscript(ctx, "99999")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "El estudiante con ID '99999' no existe", err.Error())
	})
}

func TestSectionDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves title and schedule", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.SectionDetails(ctx, "1")
		require.NoError(t, err)
		require.Len(t, result.Sections, 2)

		first := result.Sections[0]
		assert.Equal(t, "CS-101", first.CourseID)
		assert.Equal(t, "Intro. to Computer Science", first.Title)
		assert.Equal(t, "W 10:00-12:30", first.Schedule)

		second := result.Sections[1]
		assert.Equal(t, "M 8:00-8:50, W 8:00-8:50", second.Schedule)
	})

	t.Run("unknown section is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.SectionDetails(ctx, "9")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "No se encontró la sección '9'", err.Error())
	})

	t.Run("by full key", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.SectionDetailsByKey(ctx, "CS-347", "1", "Fall", 2017)
		require.NoError(t, err)
		require.Len(t, result.Sections, 1)
		assert.Equal(t, "Database System Concepts", result.Sections[0].Title)
	})
}

func TestSectionsByBuilding(t *testing.T) {
	ctx := context.Background()

	t.Run("matches whole building name ignoring case", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.SectionsByBuilding(ctx, "packard")
		require.NoError(t, err)
		require.Len(t, result.Sections, 1)
		assert.Equal(t, "CS-101", result.Sections[0].CourseID)
		assert.Equal(t, "H", result.Sections[0].TimeSlotID)
	})

	t.Run("empty building is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.SectionsByBuilding(ctx, "Watson")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "No se encontraron secciones en el edificio 'Watson'", err.Error())
	})
}

func TestStudentAdvisor(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the advisor", func(t *testing.T) {
		store := newTestStore()
		store.advisors = []models.Advisor{{StudentID: "00128", InstructorID: "10101"}}
		svc := NewQueryService(store)

		result, err := svc.StudentAdvisor(ctx, "zhang")
		require.NoError(t, err)
		require.Len(t, result.Students, 1)
		assert.Equal(t, "Srinivasan", result.Students[0].AdvisorName)
		assert.Equal(t, "Comp. Sci.", result.Students[0].AdvisorDept)
	})

	t.Run("missing advisor edge uses fallback strings", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.StudentAdvisor(ctx, "Levy")
		require.NoError(t, err)
		require.Len(t, result.Students, 1)
		assert.Equal(t, "Sin asesor asignado", result.Students[0].AdvisorName)
		assert.Equal(t, "N/A", result.Students[0].AdvisorDept)
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.StudentAdvisor(ctx, "Nadie")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "No se encontró estudiante con nombre 'Nadie'", err.Error())
	})
}

func TestTopGradeStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("matches A variants and rejects others", func(t *testing.T) {
		store := newTestStore()
		store.takes = []models.Takes{
			{StudentID: "00128", CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Grade: strPtr("A")},
			{StudentID: "12345", CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Grade: strPtr("a-")},
			{StudentID: "45678", CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Grade: strPtr("B+")},
			{StudentID: "23121", CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Grade: strPtr("A+")},
		}
		svc := NewQueryService(store)

		result, err := svc.TopGradeStudents(ctx, "CS-101")
		require.NoError(t, err)
		require.Len(t, result.Students, 3)
		for _, entry := range result.Students {
			assert.NotEqual(t, "Levy", entry.Name)
		}
	})

	t.Run("course resolves by title", func(t *testing.T) {
		store := newTestStore()
		store.takes = []models.Takes{
			{StudentID: "00128", CourseID: "CS-101", SecID: "1", Semester: "Fall", Year: 2017, Grade: strPtr("A")},
		}
		svc := NewQueryService(store)

		result, err := svc.TopGradeStudents(ctx, "intro. to computer science")
		require.NoError(t, err)
		assert.Equal(t, "CS-101", result.Course.CourseID)
		require.Len(t, result.Students, 1)
		assert.Equal(t, "Zhang", result.Students[0].Name)
	})

	t.Run("no A grades is informational", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.TopGradeStudents(ctx, "CS-101")
		require.NoError(t, err)
		assert.Empty(t, result.Students)
		assert.Equal(t, "Ningún estudiante obtuvo 'A' en el curso Intro. to Computer Science", result.Message)
	})
}

func TestAdviseesOf(t *testing.T) {
	ctx := context.Background()

	t.Run("lists advisees", func(t *testing.T) {
		store := newTestStore()
		store.advisors = []models.Advisor{
			{StudentID: "00128", InstructorID: "10101"},
			{StudentID: "12345", InstructorID: "10101"},
			{StudentID: "45678", InstructorID: "22222"},
		}
		svc := NewQueryService(store)

		result, err := svc.AdviseesOf(ctx, "Srinivasan")
		require.NoError(t, err)
		require.Len(t, result.Advisees, 2)
		assert.Equal(t, "Zhang", result.Advisees[0].Name)
		assert.Equal(t, "Shankar", result.Advisees[1].Name)
	})

	t.Run("no advisees is informational", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.AdviseesOf(ctx, "Einstein")
		require.NoError(t, err)
		assert.Empty(t, result.Advisees)
		assert.Equal(t, "El profesor Einstein no tiene estudiantes asignados", result.Message)
	})

	t.Run("unknown instructor is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.AdviseesOf(ctx, "Hawking")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "No se encontró un profesor con nombre 'Hawking'", err.Error())
	})
}

func TestCoursesTaughtBy(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves classroom and schedule from the section", func(t *testing.T) {
		store := newTestStore()
		store.teaches = []models.Teaches{
			{InstructorID: "10101", CourseID: "CS-347", SecID: "1", Semester: "Fall", Year: 2017},
		}
		svc := NewQueryService(store)

		result, err := svc.CoursesTaughtBy(ctx, "Srinivasan")
		require.NoError(t, err)
		require.Len(t, result.Courses, 1)
		assert.Equal(t, "Taylor 3128", result.Courses[0].Classroom)
		assert.Equal(t, "M 8:00-8:50, W 8:00-8:50", result.Courses[0].Schedule)
	})

	t.Run("missing section degrades to N/A", func(t *testing.T) {
		store := newTestStore()
		store.teaches = []models.Teaches{
			{InstructorID: "10101", CourseID: "CS-347", SecID: "2", Semester: "Spring", Year: 2019},
		}
		svc := NewQueryService(store)

		result, err := svc.CoursesTaughtBy(ctx, "Srinivasan")
		require.NoError(t, err)
		require.Len(t, result.Courses, 1)
		assert.Equal(t, "N/A", result.Courses[0].Classroom)
		assert.Equal(t, "N/A", result.Courses[0].Schedule)
		assert.Equal(t, "Database System Concepts", result.Courses[0].Title)
	})

	t.Run("no assignments is informational", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.CoursesTaughtBy(ctx, "Einstein")
		require.NoError(t, err)
		assert.Empty(t, result.Courses)
		assert.Equal(t, "El profesor Einstein no imparte ningún curso", result.Message)
	})
}

func TestSalaryByDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps store order and rounds to two decimals", func(t *testing.T) {
		store := newTestStore()
		store.salaryStats = []models.DeptSalaryStats{
			{DeptName: "CS", AvgSalary: 60000.333333, MinSalary: 50000, MaxSalary: 70000.005, Count: 2},
			{DeptName: "Math", AvgSalary: 60000, MinSalary: 60000, MaxSalary: 60000, Count: 1},
		}
		svc := NewQueryService(store)

		report, err := svc.SalaryByDepartment(ctx)
		require.NoError(t, err)
		require.Len(t, report.Departments, 2)
		assert.Equal(t, "CS", report.Departments[0].DeptName)
		assert.Equal(t, 60000.33, report.Departments[0].AvgSalary)
		assert.Equal(t, 70000.01, report.Departments[0].MaxSalary)
		assert.Equal(t, 2, report.Departments[0].Instructors)
	})

	t.Run("empty instructor set yields an empty report", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		report, err := svc.SalaryByDepartment(ctx)
		require.NoError(t, err)
		assert.Empty(t, report.Departments)
	})
}

func TestStudentsAboveCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("strictly above threshold, credits descending", func(t *testing.T) {
		store := newTestStore()
		// Zhang holds exactly 102, Chavez 110, Shankar 32
		svc := NewQueryService(store)

		result, err := svc.StudentsAboveCredits(ctx, "Comp. Sci.", 90)
		require.NoError(t, err)
		require.Len(t, result.Students, 2)
		assert.Equal(t, "Chavez", result.Students[0].Name)
		assert.Equal(t, "Zhang", result.Students[1].Name)
	})

	t.Run("threshold boundary is exclusive", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		result, err := svc.StudentsAboveCredits(ctx, "Comp. Sci.", 102)
		require.NoError(t, err)
		require.Len(t, result.Students, 1)
		assert.Equal(t, "Chavez", result.Students[0].Name)
	})

	t.Run("no matches is not found", func(t *testing.T) {
		svc := NewQueryService(newTestStore())

		_, err := svc.StudentsAboveCredits(ctx, "Physics", 90)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, "No se encontraron estudiantes en 'Physics' con más de 90 créditos", err.Error())
	})
}

func TestStoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()

	store := newTestStore()
	store.err = apperrors.NewStoreUnavailableError("La base de datos no está disponible", assert.AnError)
	svc := NewQueryService(store)

	_, err := svc.CoursePrerequisites(ctx, "CS-347")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
