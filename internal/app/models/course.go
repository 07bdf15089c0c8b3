package models

// Course represents a course in the university catalog.
type Course struct {
	CourseID string `json:"course_id" bson:"course_id" db:"course_id"`
	Title    string `json:"title" bson:"title" db:"title"`
	DeptName string `json:"dept_name" bson:"dept_name" db:"dept_name"`
	Credits  int    `json:"credits" bson:"credits" db:"credits"`
}

// Prereq is a prerequisite edge between two courses. A course may carry
// any number of these; they are read in insertion order.
type Prereq struct {
	CourseID string `json:"course_id" bson:"course_id" db:"course_id"`
	PrereqID string `json:"prereq_id" bson:"prereq_id" db:"prereq_id"`
}
