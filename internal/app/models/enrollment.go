package models

// Takes records a student's enrollment in a section. Grade is nullable:
// a nil grade means the course is in progress or ungraded.
type Takes struct {
	StudentID string  `json:"ID" bson:"ID" db:"id"`
	CourseID  string  `json:"course_id" bson:"course_id" db:"course_id"`
	SecID     string  `json:"sec_id" bson:"sec_id" db:"sec_id"`
	Semester  string  `json:"semester" bson:"semester" db:"semester"`
	Year      int     `json:"year" bson:"year" db:"year"`
	Grade     *string `json:"grade" bson:"grade" db:"grade"`
}

// Teaches assigns an instructor to a section.
type Teaches struct {
	InstructorID string `json:"ID" bson:"ID" db:"id"`
	CourseID     string `json:"course_id" bson:"course_id" db:"course_id"`
	SecID        string `json:"sec_id" bson:"sec_id" db:"sec_id"`
	Semester     string `json:"semester" bson:"semester" db:"semester"`
	Year         int    `json:"year" bson:"year" db:"year"`
}

// Advisor links a student to an advising instructor. The dataset is
// expected to hold at most one edge per student but does not enforce it;
// lookups take the first match.
type Advisor struct {
	StudentID    string `json:"s_ID" bson:"s_ID" db:"s_id"`
	InstructorID string `json:"i_ID" bson:"i_ID" db:"i_id"`
}
