package services

import (
	"context"
	"fmt"

	"github.com/drosales/campusq/internal/app/models"
	"github.com/drosales/campusq/internal/app/repositories"
	"github.com/drosales/campusq/internal/pkg/apperrors"
)

// Paging bounds for the browse endpoints.
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// CatalogService serves the plain browse endpoints: paginated listing,
// counting and field-scoped search over courses and instructors.
type CatalogService struct {
	store repositories.Store
}

// NewCatalogService creates a new catalog browser over the given store
func NewCatalogService(store repositories.Store) *CatalogService {
	return &CatalogService{store: store}
}

// clampPage normalizes skip/limit into the allowed paging bounds.
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}

// Courses lists courses with skip/limit paging.
func (s *CatalogService) Courses(ctx context.Context, skip, limit int) ([]models.Course, error) {
	skip, limit = clampPage(skip, limit)
	courses, err := s.store.Courses(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// CountCourses returns the total number of courses.
func (s *CatalogService) CountCourses(ctx context.Context) (int64, error) {
	return s.store.CountCourses(ctx)
}

// SearchCourses matches term as a case-insensitive substring of field.
// The field must be one of the whitelisted course fields.
func (s *CatalogService) SearchCourses(ctx context.Context, field, term string, skip, limit int) ([]models.Course, error) {
	if term == "" {
		return nil, apperrors.NewMissingParameterError("Falta el término de búsqueda")
	}
	if field == "" {
		field = "title"
	}
	if !repositories.CourseSearchFields[field] {
		return nil, apperrors.NewMissingParameterError(fmt.Sprintf("Campo de búsqueda inválido: '%s'", field))
	}

	skip, limit = clampPage(skip, limit)
	courses, err := s.store.SearchCourses(ctx, field, term, skip, limit)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Instructors lists instructors with skip/limit paging.
func (s *CatalogService) Instructors(ctx context.Context, skip, limit int) ([]models.Instructor, error) {
	skip, limit = clampPage(skip, limit)
	instructors, err := s.store.Instructors(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if instructors == nil {
		instructors = []models.Instructor{}
	}
	return instructors, nil
}

// CountInstructors returns the total number of instructors.
func (s *CatalogService) CountInstructors(ctx context.Context) (int64, error) {
	return s.store.CountInstructors(ctx)
}

// SearchInstructors matches term as a case-insensitive substring of field.
// The field must be one of the whitelisted instructor fields.
func (s *CatalogService) SearchInstructors(ctx context.Context, field, term string, skip, limit int) ([]models.Instructor, error) {
	if term == "" {
		return nil, apperrors.NewMissingParameterError("Falta el término de búsqueda")
	}
	if field == "" {
		field = "name"
	}
	if !repositories.InstructorSearchFields[field] {
		return nil, apperrors.NewMissingParameterError(fmt.Sprintf("Campo de búsqueda inválido: '%s'", field))
	}

	skip, limit = clampPage(skip, limit)
	instructors, err := s.store.SearchInstructors(ctx, field, term, skip, limit)
	if err != nil {
		return nil, err
	}
	if instructors == nil {
		instructors = []models.Instructor{}
	}
	return instructors, nil
}
