package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drosales/campusq/internal/app/models"
	"github.com/drosales/campusq/internal/app/repositories"
	"github.com/drosales/campusq/internal/pkg/apperrors"
)

// Collection names as they exist in the dataset.
const (
	collCourse     = "Course"
	collPrereq     = "Prereq"
	collStudent    = "Student"
	collInstructor = "Instructor"
	collSection    = "Section"
	collTakes      = "Takes"
	collTeaches    = "Teaches"
	collAdvisor    = "Advisor"
	collTimeSlot   = "Time_slot"
)

// Store implements the repository contract over a MongoDB database.
type Store struct {
	db *mongo.Database
}

// NewStore creates a new MongoDB-backed store
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func wrap(op string, err error) error {
	return apperrors.NewStoreUnavailableError(
		"La base de datos no está disponible",
		fmt.Errorf("%s: %w", op, err),
	)
}

// findOne decodes a single document, mapping the driver's no-documents
// condition to the repository not-found signal.
func (s *Store) findOne(ctx context.Context, coll string, filter bson.D, out interface{}) error {
	err := s.db.Collection(coll).FindOne(ctx, filter).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repositories.ErrNoRecord
		}
		return wrap("find one "+coll, err)
	}
	return nil
}

// findAll runs a capped find and decodes every document into out, a
// pointer to a slice. Cursor order is the collection's natural order.
func (s *Store) findAll(ctx context.Context, coll string, filter bson.D, limit int, out interface{}) error {
	opts := options.Find().SetLimit(int64(limit))
	cursor, err := s.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return wrap("find "+coll, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return wrap("decode "+coll, err)
	}
	return nil
}

// CourseByID resolves a course by its exact id.
func (s *Store) CourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	if err := s.findOne(ctx, collCourse, bson.D{{Key: "course_id", Value: courseID}}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseByIDOrTitle resolves a course by exact id or anchored
// case-insensitive title.
func (s *Store) CourseByIDOrTitle(ctx context.Context, key string) (*models.Course, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "course_id", Value: key}},
		bson.D{{Key: "title", Value: anchoredCI(key)}},
	}}}

	var course models.Course
	if err := s.findOne(ctx, collCourse, filter, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// PrereqsOf lists prerequisite edges of a course.
func (s *Store) PrereqsOf(ctx context.Context, courseID string, limit int) ([]models.Prereq, error) {
	var prereqs []models.Prereq
	filter := bson.D{{Key: "course_id", Value: courseID}}
	if err := s.findAll(ctx, collPrereq, filter, limit, &prereqs); err != nil {
		return nil, err
	}
	return prereqs, nil
}

// StudentByID resolves a student by exact id.
func (s *Store) StudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	if err := s.findOne(ctx, collStudent, bson.D{{Key: "ID", Value: studentID}}, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// StudentsByName lists students whose name equals name, ignoring case.
func (s *Store) StudentsByName(ctx context.Context, name string, limit int) ([]models.Student, error) {
	var students []models.Student
	filter := bson.D{{Key: "name", Value: anchoredCI(name)}}
	if err := s.findAll(ctx, collStudent, filter, limit, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// StudentsByDeptMinCredits lists students of a department holding strictly
// more than minCredits total credits.
func (s *Store) StudentsByDeptMinCredits(ctx context.Context, deptName string, minCredits, limit int) ([]models.Student, error) {
	var students []models.Student
	filter := bson.D{
		{Key: "dept_name", Value: anchoredCI(deptName)},
		{Key: "tot_cred", Value: bson.D{{Key: "$gt", Value: minCredits}}},
	}
	if err := s.findAll(ctx, collStudent, filter, limit, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// InstructorByID resolves an instructor by exact id.
func (s *Store) InstructorByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := s.findOne(ctx, collInstructor, bson.D{{Key: "ID", Value: instructorID}}, &instructor); err != nil {
		return nil, err
	}
	return &instructor, nil
}

// InstructorByName resolves an instructor by anchored case-insensitive
// name, first match wins.
func (s *Store) InstructorByName(ctx context.Context, name string) (*models.Instructor, error) {
	var instructor models.Instructor
	filter := bson.D{{Key: "name", Value: anchoredCI(name)}}
	if err := s.findOne(ctx, collInstructor, filter, &instructor); err != nil {
		return nil, err
	}
	return &instructor, nil
}

// SalaryStatsByDept computes per-department salary aggregates with a
// $group/$sort pipeline, ordered by mean salary descending.
func (s *Store) SalaryStatsByDept(ctx context.Context) ([]models.DeptSalaryStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$dept_name"},
			{Key: "avg_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
			{Key: "min_salary", Value: bson.D{{Key: "$min", Value: "$salary"}}},
			{Key: "max_salary", Value: bson.D{{Key: "$max", Value: "$salary"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "avg_salary", Value: -1}}}},
	}

	cursor, err := s.db.Collection(collInstructor).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrap("aggregate salaries", err)
	}

	var groups []struct {
		DeptName  string  `bson:"_id"`
		AvgSalary float64 `bson:"avg_salary"`
		MinSalary float64 `bson:"min_salary"`
		MaxSalary float64 `bson:"max_salary"`
		Count     int     `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, wrap("decode salary aggregate", err)
	}

	stats := make([]models.DeptSalaryStats, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, models.DeptSalaryStats{
			DeptName:  g.DeptName,
			AvgSalary: g.AvgSalary,
			MinSalary: g.MinSalary,
			MaxSalary: g.MaxSalary,
			Count:     g.Count,
		})
	}
	return stats, nil
}

// SectionsBySecID lists every section with the given section id.
func (s *Store) SectionsBySecID(ctx context.Context, secID string, limit int) ([]models.Section, error) {
	var sections []models.Section
	filter := bson.D{{Key: "sec_id", Value: secID}}
	if err := s.findAll(ctx, collSection, filter, limit, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// SectionByKey resolves a section by its full composite key.
func (s *Store) SectionByKey(ctx context.Context, courseID, secID, semester string, year int) (*models.Section, error) {
	filter := bson.D{
		{Key: "course_id", Value: courseID},
		{Key: "sec_id", Value: secID},
		{Key: "semester", Value: semester},
		{Key: "year", Value: year},
	}

	var section models.Section
	if err := s.findOne(ctx, collSection, filter, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// SectionsByBuilding lists sections held in the named building.
func (s *Store) SectionsByBuilding(ctx context.Context, building string, limit int) ([]models.Section, error) {
	var sections []models.Section
	filter := bson.D{{Key: "building", Value: anchoredCI(building)}}
	if err := s.findAll(ctx, collSection, filter, limit, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// TimeSlotsByID lists the meeting windows of a time-slot id.
func (s *Store) TimeSlotsByID(ctx context.Context, timeSlotID string, limit int) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	filter := bson.D{{Key: "time_slot_id", Value: timeSlotID}}
	if err := s.findAll(ctx, collTimeSlot, filter, limit, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// TakesByStudent lists a student's enrollment records.
func (s *Store) TakesByStudent(ctx context.Context, studentID string, limit int) ([]models.Takes, error) {
	var takes []models.Takes
	filter := bson.D{{Key: "ID", Value: studentID}}
	if err := s.findAll(ctx, collTakes, filter, limit, &takes); err != nil {
		return nil, err
	}
	return takes, nil
}

// TakesByCourseGradePrefix lists enrollments in a course whose grade
// starts with gradePrefix, compared case-insensitively.
func (s *Store) TakesByCourseGradePrefix(ctx context.Context, courseID, gradePrefix string, limit int) ([]models.Takes, error) {
	var takes []models.Takes
	filter := bson.D{
		{Key: "course_id", Value: courseID},
		{Key: "grade", Value: prefixCI(gradePrefix)},
	}
	if err := s.findAll(ctx, collTakes, filter, limit, &takes); err != nil {
		return nil, err
	}
	return takes, nil
}

// TeachesByInstructor lists an instructor's section assignments.
func (s *Store) TeachesByInstructor(ctx context.Context, instructorID string, limit int) ([]models.Teaches, error) {
	var teaches []models.Teaches
	filter := bson.D{{Key: "ID", Value: instructorID}}
	if err := s.findAll(ctx, collTeaches, filter, limit, &teaches); err != nil {
		return nil, err
	}
	return teaches, nil
}

// AdvisorOfStudent resolves a student's advisor edge, first match wins.
func (s *Store) AdvisorOfStudent(ctx context.Context, studentID string) (*models.Advisor, error) {
	var advisor models.Advisor
	if err := s.findOne(ctx, collAdvisor, bson.D{{Key: "s_ID", Value: studentID}}, &advisor); err != nil {
		return nil, err
	}
	return &advisor, nil
}

// AdviseesOf lists advisor edges pointing at an instructor.
func (s *Store) AdviseesOf(ctx context.Context, instructorID string, limit int) ([]models.Advisor, error) {
	var advisors []models.Advisor
	filter := bson.D{{Key: "i_ID", Value: instructorID}}
	if err := s.findAll(ctx, collAdvisor, filter, limit, &advisors); err != nil {
		return nil, err
	}
	return advisors, nil
}
