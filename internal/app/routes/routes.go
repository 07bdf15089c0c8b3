package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drosales/campusq/internal/app/controllers"
	"github.com/drosales/campusq/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	queryController *controllers.QueryController,
	academicController *controllers.AcademicController,
	catalogController *controllers.CatalogController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Numbered query catalog, tabular answers
	v1.POST("/queries/:id", queryController.RunQuery)

	// Course routes: catalog browsing plus the course-anchored queries.
	// The top-students parameter accepts a course title as well as an ID.
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.ListCourses)
		courses.GET("/count", catalogController.CountCourses)
		courses.GET("/search", catalogController.SearchCourses)
		courses.GET("/:courseId/prerequisites", academicController.GetPrerequisites)
		courses.GET("/:courseId/top-students", academicController.GetTopStudents)
		courses.GET("/:courseId/sections/:secId/:semester/:year", academicController.GetSectionByKey)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("/advisor", academicController.GetStudentAdvisor)
		students.GET("/:studentId/transcript", academicController.GetTranscript)
	}

	// Section and building routes
	v1.GET("/sections/:secId", academicController.GetSectionDetails)
	v1.GET("/buildings/:building/sections", academicController.GetSectionsByBuilding)

	// Instructor routes: catalog browsing plus the instructor-anchored queries
	instructors := v1.Group("/instructors")
	{
		instructors.GET("", catalogController.ListInstructors)
		instructors.GET("/count", catalogController.CountInstructors)
		instructors.GET("/search", catalogController.SearchInstructors)
		instructors.GET("/:name/advisees", academicController.GetAdvisees)
		instructors.GET("/:name/courses", academicController.GetTaughtCourses)
	}

	// Department routes
	departments := v1.Group("/departments")
	{
		departments.GET("/salaries", academicController.GetSalaryReport)
		departments.GET("/:deptName/students", academicController.GetStudentsAboveCredits)
	}

	// Service banner (public)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{
				"service": "campusq",
				"message": "Servicio de consultas universitarias",
			},
			Timestamp: time.Now(),
		})
	})

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
