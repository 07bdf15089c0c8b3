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

// CatalogController exposes paging and search over the course and
// instructor catalogs.
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// pageParams reads the skip/limit query parameters. Invalid values are
// reported, absent ones fall back to the service defaults.
func pageParams(ctx *gin.Context) (int, int, bool) {
	skip, limit := 0, 0
	if raw := ctx.Query("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "El parámetro 'skip' debe ser un número válido")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return 0, 0, false
		}
		skip = parsed
	}
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "El parámetro 'limit' debe ser un número válido")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return 0, 0, false
		}
		limit = parsed
	}
	return skip, limit, true
}

func respondPage(ctx *gin.Context, data interface{}, skip, limit int) {
	ctx.JSON(http.StatusOK, dto.PagedResponse{
		Data:  data,
		Skip:  skip,
		Limit: limit,
	})
}

// ListCourses pages through the course catalog
// @Summary List courses
// @Description Retrieves a page of the course catalog
// @Tags catalog
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.PagedResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	skip, limit, ok := pageParams(ctx)
	if !ok {
		return
	}

	courses, err := c.catalogService.Courses(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondPage(ctx, courses, skip, limit)
}

// CountCourses returns the size of the course catalog
// @Summary Count courses
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse}
// @Router /courses/count [get]
func (c *CatalogController) CountCourses(ctx *gin.Context) {
	total, err := c.catalogService.CountCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CountResponse{Total: total},
		Timestamp: time.Now(),
	})
}

// SearchCourses searches the course catalog
// @Summary Search courses
// @Description Case-insensitive substring search over a whitelisted course field
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Param field query string false "Field to search" Enums(course_id, title, dept_name) default(title)
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.PagedResponse{data=[]models.Course}
// @Failure 400 {object} dto.ErrorResponse "Missing term or invalid field"
// @Router /courses/search [get]
func (c *CatalogController) SearchCourses(ctx *gin.Context) {
	skip, limit, ok := pageParams(ctx)
	if !ok {
		return
	}

	courses, err := c.catalogService.SearchCourses(ctx, ctx.Query("field"), ctx.Query("q"), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondPage(ctx, courses, skip, limit)
}

// ListInstructors pages through the instructor catalog
// @Summary List instructors
// @Tags catalog
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.PagedResponse{data=[]models.Instructor}
// @Router /instructors [get]
func (c *CatalogController) ListInstructors(ctx *gin.Context) {
	skip, limit, ok := pageParams(ctx)
	if !ok {
		return
	}

	instructors, err := c.catalogService.Instructors(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondPage(ctx, instructors, skip, limit)
}

// CountInstructors returns the size of the instructor catalog
// @Summary Count instructors
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse}
// @Router /instructors/count [get]
func (c *CatalogController) CountInstructors(ctx *gin.Context) {
	total, err := c.catalogService.CountInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CountResponse{Total: total},
		Timestamp: time.Now(),
	})
}

// SearchInstructors searches the instructor catalog
// @Summary Search instructors
// @Description Case-insensitive substring search over a whitelisted instructor field
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Param field query string false "Field to search" Enums(id, name, dept_name) default(name)
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.PagedResponse{data=[]models.Instructor}
// @Failure 400 {object} dto.ErrorResponse "Missing term or invalid field"
// @Router /instructors/search [get]
func (c *CatalogController) SearchInstructors(ctx *gin.Context) {
	skip, limit, ok := pageParams(ctx)
	if !ok {
		return
	}

	instructors, err := c.catalogService.SearchInstructors(ctx, ctx.Query("field"), ctx.Query("q"), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondPage(ctx, instructors, skip, limit)
}
