package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drosales/campusq/internal/app/models/dto"
	"github.com/drosales/campusq/internal/app/services"
	"github.com/drosales/campusq/internal/middleware"
)

// AcademicController exposes the query catalog as resource-oriented
// routes returning the structured shapes instead of tables.
type AcademicController struct {
	queryService *services.QueryService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(queryService *services.QueryService) *AcademicController {
	return &AcademicController{queryService: queryService}
}

func respond(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

// GetPrerequisites lists the prerequisites of a course
// @Summary Course prerequisites
// @Description Retrieves the direct prerequisites of a course with their titles, departments and credits
// @Tags academic
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.PrerequisitesResult}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseId}/prerequisites [get]
func (c *AcademicController) GetPrerequisites(ctx *gin.Context) {
	result, err := c.queryService.CoursePrerequisites(ctx, ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetTranscript returns a student's academic record
// @Summary Student transcript
// @Description Retrieves every course a student has taken, ordered by year and semester
// @Tags academic
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptResult}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/transcript [get]
func (c *AcademicController) GetTranscript(ctx *gin.Context) {
	result, err := c.queryService.StudentTranscript(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetSectionDetails lists every offering of a section identifier
// @Summary Section details
// @Description Retrieves all sections with the given section ID, including classroom and meeting schedule
// @Tags academic
// @Produce json
// @Param secId path string true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SectionDetailsResult}
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{secId} [get]
func (c *AcademicController) GetSectionDetails(ctx *gin.Context) {
	result, err := c.queryService.SectionDetails(ctx, ctx.Param("secId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetSectionByKey retrieves one exact section offering
// @Summary Section by full key
// @Description Retrieves the section identified by course, section, semester and year
// @Tags academic
// @Produce json
// @Param courseId path string true "Course ID"
// @Param secId path string true "Section ID"
// @Param semester path string true "Semester"
// @Param year path int true "Year"
// @Success 200 {object} dto.APIResponse{data=dto.SectionDetailsResult}
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /courses/{courseId}/sections/{secId}/{semester}/{year} [get]
func (c *AcademicController) GetSectionByKey(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "El año debe ser un número válido")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.queryService.SectionDetailsByKey(ctx,
		ctx.Param("courseId"), ctx.Param("secId"), ctx.Param("semester"), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetSectionsByBuilding lists the sections taught in a building
// @Summary Sections by building
// @Description Retrieves every section scheduled in the given building
// @Tags academic
// @Produce json
// @Param building path string true "Building name"
// @Success 200 {object} dto.APIResponse{data=dto.BuildingSectionsResult}
// @Failure 404 {object} dto.ErrorResponse "No sections in building"
// @Router /buildings/{building}/sections [get]
func (c *AcademicController) GetSectionsByBuilding(ctx *gin.Context) {
	result, err := c.queryService.SectionsByBuilding(ctx, ctx.Param("building"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetStudentAdvisor finds students by name along with their advisors
// @Summary Student and advisor
// @Description Retrieves the students matching the given name together with their advisor, when one is assigned
// @Tags academic
// @Produce json
// @Param name query string true "Student name"
// @Success 200 {object} dto.APIResponse{data=dto.AdvisorResult}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/advisor [get]
func (c *AcademicController) GetStudentAdvisor(ctx *gin.Context) {
	result, err := c.queryService.StudentAdvisor(ctx, ctx.Query("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetTopStudents lists the students who earned an A in a course
// @Summary Top students of a course
// @Description Retrieves the students whose grade in the course starts with A, matching the course by ID or title
// @Tags academic
// @Produce json
// @Param courseId path string true "Course ID or title"
// @Success 200 {object} dto.APIResponse{data=dto.TopGradesResult}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseId}/top-students [get]
func (c *AcademicController) GetTopStudents(ctx *gin.Context) {
	result, err := c.queryService.TopGradeStudents(ctx, ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetAdvisees lists the students an instructor advises
// @Summary Advisees of an instructor
// @Description Retrieves the students whose advisor matches the given instructor name
// @Tags academic
// @Produce json
// @Param name path string true "Instructor name"
// @Success 200 {object} dto.APIResponse{data=dto.AdviseesResult}
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{name}/advisees [get]
func (c *AcademicController) GetAdvisees(ctx *gin.Context) {
	result, err := c.queryService.AdviseesOf(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetTaughtCourses lists the courses an instructor teaches
// @Summary Courses taught by an instructor
// @Description Retrieves every course the instructor teaches with classroom and schedule when available
// @Tags academic
// @Produce json
// @Param name path string true "Instructor name"
// @Success 200 {object} dto.APIResponse{data=dto.TaughtCoursesResult}
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{name}/courses [get]
func (c *AcademicController) GetTaughtCourses(ctx *gin.Context) {
	result, err := c.queryService.CoursesTaughtBy(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetSalaryReport aggregates instructor salaries per department
// @Summary Salary report
// @Description Retrieves the average, minimum and maximum salary per department, ordered by average descending
// @Tags academic
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SalaryReport}
// @Router /departments/salaries [get]
func (c *AcademicController) GetSalaryReport(ctx *gin.Context) {
	result, err := c.queryService.SalaryByDepartment(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}

// GetStudentsAboveCredits lists a department's students above a credit threshold
// @Summary Students above a credit threshold
// @Description Retrieves the students of a department with strictly more credits than the threshold, 90 by default
// @Tags academic
// @Produce json
// @Param deptName path string true "Department name"
// @Param minCredits query int false "Credit threshold" default(90)
// @Success 200 {object} dto.APIResponse{data=dto.CreditsResult}
// @Failure 400 {object} dto.ErrorResponse "Invalid threshold"
// @Failure 404 {object} dto.ErrorResponse "No students above threshold"
// @Router /departments/{deptName}/students [get]
func (c *AcademicController) GetStudentsAboveCredits(ctx *gin.Context) {
	threshold := services.DefaultCreditThreshold
	if raw := ctx.Query("minCredits"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "El umbral de créditos debe ser un número válido")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		threshold = parsed
	}

	result, err := c.queryService.StudentsAboveCredits(ctx, ctx.Param("deptName"), threshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, result)
}
