package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drosales/campusq/internal/app/models"
)

// Field names arrive pre-validated against the repository whitelists and
// are mapped to their document keys here.
var searchKeys = map[string]string{
	"course_id": "course_id",
	"title":     "title",
	"dept_name": "dept_name",
	"id":        "ID",
	"name":      "name",
}

func (s *Store) findPage(ctx context.Context, coll string, filter bson.D, skip, limit int, out interface{}) error {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := s.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return wrap("find "+coll, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return wrap("decode "+coll, err)
	}
	return nil
}

// Courses lists courses with skip/limit paging.
func (s *Store) Courses(ctx context.Context, skip, limit int) ([]models.Course, error) {
	var courses []models.Course
	if err := s.findPage(ctx, collCourse, bson.D{}, skip, limit, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CountCourses returns the total number of courses.
func (s *Store) CountCourses(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(collCourse).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, wrap("count courses", err)
	}
	return count, nil
}

// SearchCourses matches term as a case-insensitive substring of field.
func (s *Store) SearchCourses(ctx context.Context, field, term string, skip, limit int) ([]models.Course, error) {
	var courses []models.Course
	filter := bson.D{{Key: searchKeys[field], Value: containsCI(term)}}
	if err := s.findPage(ctx, collCourse, filter, skip, limit, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Instructors lists instructors with skip/limit paging.
func (s *Store) Instructors(ctx context.Context, skip, limit int) ([]models.Instructor, error) {
	var instructors []models.Instructor
	if err := s.findPage(ctx, collInstructor, bson.D{}, skip, limit, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

// CountInstructors returns the total number of instructors.
func (s *Store) CountInstructors(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(collInstructor).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, wrap("count instructors", err)
	}
	return count, nil
}

// SearchInstructors matches term as a case-insensitive substring of field.
func (s *Store) SearchInstructors(ctx context.Context, field, term string, skip, limit int) ([]models.Instructor, error) {
	var instructors []models.Instructor
	filter := bson.D{{Key: searchKeys[field], Value: containsCI(term)}}
	if err := s.findPage(ctx, collInstructor, filter, skip, limit, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}
