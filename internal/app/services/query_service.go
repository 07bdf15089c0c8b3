package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/drosales/campusq/internal/app/models"
	"github.com/drosales/campusq/internal/app/models/dto"
	"github.com/drosales/campusq/internal/app/repositories"
	"github.com/drosales/campusq/internal/pkg/apperrors"
	"github.com/drosales/campusq/internal/pkg/helpers"
)

// Result caps, matching the cursor limits the dataset was served with.
const (
	maxPrereqs          = 100
	maxTakes            = 1000
	maxSections         = 100
	maxBuildingSections = 500
	maxNameMatches      = 100
	maxAdvisees         = 500
	maxTeaches          = 100
	maxTimeSlots        = 10
	maxStudents         = 1000

	// DefaultCreditThreshold is the credit floor of the credit-threshold
	// query when the caller does not override it.
	DefaultCreditThreshold = 90
)

// QueryService is the catalog of academic queries. Every method is a pure
// function of the store and its parameters: validate, resolve the primary
// entity, run the dependent lookups, assemble and sort.
type QueryService struct {
	store repositories.Store
}

// NewQueryService creates a new query catalog over the given store
func NewQueryService(store repositories.Store) *QueryService {
	return &QueryService{store: store}
}

// notFound reports whether err is the store's no-record signal.
func notFound(err error) bool {
	return errors.Is(err, repositories.ErrNoRecord)
}

// CoursePrerequisites resolves the prerequisites of a course. A course
// without prerequisite edges is a valid answer carrying a message;
// edges pointing at missing courses are skipped silently.
func (s *QueryService) CoursePrerequisites(ctx context.Context, courseID string) (*dto.PrerequisitesResult, error) {
	if courseID == "" {
		return nil, apperrors.NewMissingParameterError("Falta el ID del curso")
	}

	course, err := s.store.CourseByID(ctx, courseID)
	if err != nil {
		if notFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("El curso '%s' no existe", courseID))
		}
		return nil, err
	}

	edges, err := s.store.PrereqsOf(ctx, courseID, maxPrereqs)
	if err != nil {
		return nil, err
	}

	result := &dto.PrerequisitesResult{Course: courseSummary(course)}
	if len(edges) == 0 {
		result.Message = "Este curso no tiene prerrequisitos"
		return result, nil
	}

	// The prerequisite courses are independent of one another, so they
	// are resolved concurrently. Row order still follows the edge list.
	resolved := make([]*models.Course, len(edges))
	g, gctx := errgroup.WithContext(ctx)
	for i, edge := range edges {
		i, edge := i, edge
		g.Go(func() error {
			c, err := s.store.CourseByID(gctx, edge.PrereqID)
			if err != nil {
				if notFound(err) {
					return nil
				}
				return err
			}
			resolved[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range resolved {
		if c == nil {
			continue
		}
		result.Prerequisites = append(result.Prerequisites, courseSummary(c))
	}
	return result, nil
}

// StudentTranscript builds a student's full academic record, sorted
// ascending by (year, semester). The semester is compared as a raw
// string, so "Fall" orders before "Spring" regardless of the calendar;
// that quirk is part of the contract.
func (s *QueryService) StudentTranscript(ctx context.Context, studentID string) (*dto.TranscriptResult, error) {
	if studentID == "" {
		return nil, apperrors.NewMissingParameterError("Falta el ID del estudiante")
	}

	student, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		if notFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("El estudiante con ID '%s' no existe", studentID))
		}
		return nil, err
	}

	takes, err := s.store.TakesByStudent(ctx, studentID, maxTakes)
	if err != nil {
		return nil, err
	}

	result := &dto.TranscriptResult{Student: studentSummary(student)}
	if len(takes) == 0 {
		result.Message = fmt.Sprintf("El estudiante %s no tiene cursos registrados", student.Name)
		return result, nil
	}

	for _, t := range takes {
		entry := dto.TranscriptEntry{
			CourseID: t.CourseID,
			Title:    "N/A",
			Semester: t.Semester,
			Year:     t.Year,
			Grade:    "N/A",
		}
		course, err := s.store.CourseByID(ctx, t.CourseID)
		if err != nil && !notFound(err) {
			return nil, err
		}
		if course != nil {
			entry.Title = course.Title
			entry.Credits = course.Credits
		}
		if t.Grade != nil && *t.Grade != "" {
			entry.Grade = *t.Grade
		}
		result.Entries = append(result.Entries, entry)
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		a, b := result.Entries[i], result.Entries[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Semester < b.Semester
	})

	return result, nil
}

// SectionDetails finds every section carrying the given section id, with
// course title, room and formatted schedule.
func (s *QueryService) SectionDetails(ctx context.Context, secID string) (*dto.SectionDetailsResult, error) {
	if secID == "" {
		return nil, apperrors.NewMissingParameterError("Falta el ID de la sección")
	}

	sections, err := s.store.SectionsBySecID(ctx, secID, maxSections)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No se encontró la sección '%s'", secID))
	}

	result := &dto.SectionDetailsResult{}
	for i := range sections {
		detail, err := s.sectionDetail(ctx, &sections[i])
		if err != nil {
			return nil, err
		}
		result.Sections = append(result.Sections, detail)
	}
	return result, nil
}

// SectionDetailsByKey resolves a single section by its full composite key.
func (s *QueryService) SectionDetailsByKey(ctx context.Context, courseID, secID, semester string, year int) (*dto.SectionDetailsResult, error) {
	if courseID == "" || secID == "" || semester == "" {
		return nil, apperrors.NewMissingParameterError("Falta el ID de la sección")
	}

	section, err := s.store.SectionByKey(ctx, courseID, secID, semester, year)
	if err != nil {
		if notFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No se encontró la sección '%s'", secID))
		}
		return nil, err
	}

	detail, err := s.sectionDetail(ctx, section)
	if err != nil {
		return nil, err
	}
	return &dto.SectionDetailsResult{Sections: []dto.SectionDetail{detail}}, nil
}

func (s *QueryService) sectionDetail(ctx context.Context, section *models.Section) (dto.SectionDetail, error) {
	detail := dto.SectionDetail{
		CourseID:   section.CourseID,
		Title:      "N/A",
		SecID:      section.SecID,
		Semester:   section.Semester,
		Year:       section.Year,
		Building:   section.Building,
		RoomNumber: section.RoomNumber,
	}

	course, err := s.store.CourseByID(ctx, section.CourseID)
	if err != nil && !notFound(err) {
		return dto.SectionDetail{}, err
	}
	if course != nil {
		detail.Title = course.Title
	}

	slots, err := s.store.TimeSlotsByID(ctx, section.TimeSlotID, maxTimeSlots)
	if err != nil {
		return dto.SectionDetail{}, err
	}
	detail.Schedule = helpers.FormatTimeSlots(slots)
	return detail, nil
}

// SectionsByBuilding lists every section held in the named building,
// matched as a whole string ignoring case.
func (s *QueryService) SectionsByBuilding(ctx context.Context, building string) (*dto.BuildingSectionsResult, error) {
	if building == "" {
		return nil, apperrors.NewMissingParameterError("Falta el nombre del edificio")
	}

	sections, err := s.store.SectionsByBuilding(ctx, building, maxBuildingSections)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No se encontraron secciones en el edificio '%s'", building))
	}

	result := &dto.BuildingSectionsResult{Building: building}
	for _, sec := range sections {
		row := dto.BuildingSection{
			CourseID:   sec.CourseID,
			Title:      "N/A",
			SecID:      sec.SecID,
			Semester:   sec.Semester,
			Year:       sec.Year,
			RoomNumber: sec.RoomNumber,
			TimeSlotID: sec.TimeSlotID,
		}
		course, err := s.store.CourseByID(ctx, sec.CourseID)
		if err != nil && !notFound(err) {
			return nil, err
		}
		if course != nil {
			row.Title = course.Title
		}
		result.Sections = append(result.Sections, row)
	}
	return result, nil
}

// StudentAdvisor finds every student with the given name and resolves
// each one's advisor. Students without an advisor edge get the fallback
// strings instead of an error.
func (s *QueryService) StudentAdvisor(ctx context.Context, studentName string) (*dto.AdvisorResult, error) {
	if studentName == "" {
		return nil, apperrors.NewMissingParameterError("Falta el nombre del estudiante")
	}

	students, err := s.store.StudentsByName(ctx, studentName, maxNameMatches)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No se encontró estudiante con nombre '%s'", studentName))
	}

	result := &dto.AdvisorResult{}
	for _, student := range students {
		row := dto.StudentAdvisor{
			StudentID:    student.ID,
			StudentName:  student.Name,
			StudentDept:  student.DeptName,
			TotalCredits: student.TotalCredits,
			AdvisorName:  "Sin asesor asignado",
			AdvisorDept:  "N/A",
		}

		advisor, err := s.store.AdvisorOfStudent(ctx, student.ID)
		if err != nil && !notFound(err) {
			return nil, err
		}
		if advisor != nil {
			instructor, err := s.store.InstructorByID(ctx, advisor.InstructorID)
			if err != nil && !notFound(err) {
				return nil, err
			}
			if instructor != nil {
				row.AdvisorName = instructor.Name
				row.AdvisorDept = instructor.DeptName
			}
		}
		result.Students = append(result.Students, row)
	}
	return result, nil
}

// TopGradeStudents finds the students who earned an A (including A- and
// A+, case-insensitively) in a course. The course resolves by exact id or
// whole-string case-insensitive title.
func (s *QueryService) TopGradeStudents(ctx context.Context, courseName string) (*dto.TopGradesResult, error) {
	if courseName == "" {
		return nil, apperrors.NewMissingParameterError("Falta el nombre o ID del curso")
	}

	course, err := s.store.CourseByIDOrTitle(ctx, courseName)
	if err != nil {
		if notFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("El curso '%s' no existe", courseName))
		}
		return nil, err
	}

	takes, err := s.store.TakesByCourseGradePrefix(ctx, course.CourseID, "A", maxTakes)
	if err != nil {
		return nil, err
	}

	result := &dto.TopGradesResult{Course: courseSummary(course)}
	if len(takes) == 0 {
		result.Message = fmt.Sprintf("Ningún estudiante obtuvo 'A' en el curso %s", course.Title)
		return result, nil
	}

	for _, t := range takes {
		student, err := s.store.StudentByID(ctx, t.StudentID)
		if err != nil {
			if notFound(err) {
				continue
			}
			return nil, err
		}
		grade := ""
		if t.Grade != nil {
			grade = *t.Grade
		}
		result.Students = append(result.Students, dto.GradeEntry{
			StudentID: student.ID,
			Name:      student.Name,
			DeptName:  student.DeptName,
			Grade:     grade,
			Semester:  t.Semester,
			Year:      t.Year,
		})
	}
	return result, nil
}

// AdviseesOf finds the students advised by the named instructor. Having
// no advisees is a valid answer carrying a message.
func (s *QueryService) AdviseesOf(ctx context.Context, professorName string) (*dto.AdviseesResult, error) {
	if professorName == "" {
		return nil, apperrors.NewMissingParameterError("Falta el nombre del profesor")
	}

	instructor, err := s.store.InstructorByName(ctx, professorName)
	if err != nil {
		if notFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No se encontró un profesor con nombre '%s'", professorName))
		}
		return nil, err
	}

	edges, err := s.store.AdviseesOf(ctx, instructor.ID, maxAdvisees)
	if err != nil {
		return nil, err
	}

	result := &dto.AdviseesResult{Instructor: instructorSummary(instructor)}
	if len(edges) == 0 {
		result.Message = fmt.Sprintf("El profesor %s no tiene estudiantes asignados", instructor.Name)
		return result, nil
	}

	for _, edge := range edges {
		student, err := s.store.StudentByID(ctx, edge.StudentID)
		if err != nil {
			if notFound(err) {
				continue
			}
			return nil, err
		}
		result.Advisees = append(result.Advisees, studentSummary(student))
	}
	return result, nil
}

// CoursesTaughtBy finds the courses the named instructor teaches, with
// classroom and schedule resolved from the matching section. A missing
// section degrades the row to "N/A" rather than failing it.
func (s *QueryService) CoursesTaughtBy(ctx context.Context, professorName string) (*dto.TaughtCoursesResult, error) {
	if professorName == "" {
		return nil, apperrors.NewMissingParameterError("Falta el nombre del profesor")
	}

	instructor, err := s.store.InstructorByName(ctx, professorName)
	if err != nil {
		if notFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No se encontró un profesor con nombre '%s'", professorName))
		}
		return nil, err
	}

	teaches, err := s.store.TeachesByInstructor(ctx, instructor.ID, maxTeaches)
	if err != nil {
		return nil, err
	}

	result := &dto.TaughtCoursesResult{Instructor: instructorSummary(instructor)}
	if len(teaches) == 0 {
		result.Message = fmt.Sprintf("El profesor %s no imparte ningún curso", instructor.Name)
		return result, nil
	}

	for _, t := range teaches {
		row := dto.TaughtCourse{
			CourseID:  t.CourseID,
			Title:     "N/A",
			SecID:     t.SecID,
			Semester:  t.Semester,
			Year:      t.Year,
			Classroom: "N/A",
			Schedule:  "N/A",
		}

		course, err := s.store.CourseByID(ctx, t.CourseID)
		if err != nil && !notFound(err) {
			return nil, err
		}
		if course != nil {
			row.Title = course.Title
		}

		section, err := s.store.SectionByKey(ctx, t.CourseID, t.SecID, t.Semester, t.Year)
		if err != nil && !notFound(err) {
			return nil, err
		}
		if section != nil {
			row.Classroom = fmt.Sprintf("%s %s", section.Building, section.RoomNumber)
			slots, err := s.store.TimeSlotsByID(ctx, section.TimeSlotID, maxTimeSlots)
			if err != nil {
				return nil, err
			}
			row.Schedule = helpers.FormatTimeSlots(slots)
		}

		result.Courses = append(result.Courses, row)
	}
	return result, nil
}

// SalaryByDepartment computes the per-department salary aggregates,
// ordered by mean salary descending. It takes no parameters and always
// succeeds; an empty instructor set yields an empty report.
func (s *QueryService) SalaryByDepartment(ctx context.Context) (*dto.SalaryReport, error) {
	stats, err := s.store.SalaryStatsByDept(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.SalaryReport{Departments: make([]dto.DeptSalary, 0, len(stats))}
	for _, st := range stats {
		report.Departments = append(report.Departments, dto.DeptSalary{
			DeptName:    st.DeptName,
			AvgSalary:   helpers.Round2(st.AvgSalary),
			MinSalary:   helpers.Round2(st.MinSalary),
			MaxSalary:   helpers.Round2(st.MaxSalary),
			Instructors: st.Count,
		})
	}
	return report, nil
}

// StudentsAboveCredits finds the students of a department holding
// strictly more than threshold credits, sorted by credits descending.
func (s *QueryService) StudentsAboveCredits(ctx context.Context, deptName string, threshold int) (*dto.CreditsResult, error) {
	if deptName == "" {
		return nil, apperrors.NewMissingParameterError("Falta el nombre del departamento")
	}

	students, err := s.store.StudentsByDeptMinCredits(ctx, deptName, threshold, maxStudents)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("No se encontraron estudiantes en '%s' con más de %d créditos", deptName, threshold))
	}

	result := &dto.CreditsResult{DeptName: deptName, Threshold: threshold}
	for _, st := range students {
		result.Students = append(result.Students, studentSummary(&st))
	}
	sort.SliceStable(result.Students, func(i, j int) bool {
		return result.Students[i].TotalCredits > result.Students[j].TotalCredits
	})
	return result, nil
}

func courseSummary(c *models.Course) dto.CourseSummary {
	return dto.CourseSummary{CourseID: c.CourseID, Title: c.Title, DeptName: c.DeptName, Credits: c.Credits}
}

func studentSummary(st *models.Student) dto.StudentSummary {
	return dto.StudentSummary{ID: st.ID, Name: st.Name, DeptName: st.DeptName, TotalCredits: st.TotalCredits}
}

func instructorSummary(in *models.Instructor) dto.InstructorSummary {
	return dto.InstructorSummary{ID: in.ID, Name: in.Name, DeptName: in.DeptName}
}
