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

// QueryController exposes the numbered query catalog. Every query takes
// its parameters from a shared bag and answers in the flat tabular shape.
type QueryController struct {
	queryService *services.QueryService
}

// NewQueryController creates a new QueryController
func NewQueryController(queryService *services.QueryService) *QueryController {
	return &QueryController{queryService: queryService}
}

// RunQuery executes one of the numbered queries
// @Summary Run a catalog query
// @Description Executes the query identified by its number (1-10) with the supplied parameters and returns a tabular result
// @Tags queries
// @Accept json
// @Produce json
// @Param id path int true "Query number" minimum(1) maximum(10)
// @Param request body dto.QueryParams true "Query parameters"
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Query executed successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Primary entity not found"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /queries/{id} [post]
func (c *QueryController) RunQuery(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 || id > 10 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Número de consulta inválido: debe estar entre 1 y 10")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var params dto.QueryParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la solicitud inválido")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	table, err := c.dispatch(ctx, id, &params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      table,
		Timestamp: time.Now(),
	})
}

func (c *QueryController) dispatch(ctx *gin.Context, id int, params *dto.QueryParams) (dto.TableResponse, error) {
	switch id {
	case 1:
		r, err := c.queryService.CoursePrerequisites(ctx, params.CourseID)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.PrerequisitesTable(r), nil
	case 2:
		r, err := c.queryService.StudentTranscript(ctx, params.StudentID)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.TranscriptTable(r), nil
	case 3:
		r, err := c.queryService.SectionDetails(ctx, params.SectionID)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.SectionDetailsTable(r), nil
	case 4:
		r, err := c.queryService.SectionsByBuilding(ctx, params.Building)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.BuildingSectionsTable(r), nil
	case 5:
		r, err := c.queryService.StudentAdvisor(ctx, params.StudentName)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.AdvisorTable(r), nil
	case 6:
		r, err := c.queryService.TopGradeStudents(ctx, params.CourseName)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.TopGradesTable(r), nil
	case 7:
		r, err := c.queryService.AdviseesOf(ctx, params.ProfessorName)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.AdviseesTable(r), nil
	case 8:
		r, err := c.queryService.CoursesTaughtBy(ctx, params.ProfessorName)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.TaughtCoursesTable(r), nil
	case 9:
		r, err := c.queryService.SalaryByDepartment(ctx)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.SalaryReportTable(r), nil
	default:
		threshold := services.DefaultCreditThreshold
		if params.Threshold != nil {
			threshold = *params.Threshold
		}
		r, err := c.queryService.StudentsAboveCredits(ctx, params.DepartmentName, threshold)
		if err != nil {
			return dto.TableResponse{}, err
		}
		return services.CreditsTable(r), nil
	}
}
