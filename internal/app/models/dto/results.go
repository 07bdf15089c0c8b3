package dto

// Structured result types, one per query. These are what the query
// catalog produces; the tabular shape is derived from them by the
// formatter. JSON keys follow the original dataset's Spanish-facing API.

// CourseSummary describes a course in structured responses.
type CourseSummary struct {
	CourseID string `json:"course_id"`
	Title    string `json:"titulo"`
	DeptName string `json:"departamento"`
	Credits  int    `json:"creditos"`
}

// StudentSummary describes a student in structured responses.
type StudentSummary struct {
	ID           string `json:"ID"`
	Name         string `json:"nombre"`
	DeptName     string `json:"departamento"`
	TotalCredits int    `json:"creditos"`
}

// InstructorSummary describes an instructor in structured responses.
// Salary is deliberately not exposed here; it only appears in the
// salary report.
type InstructorSummary struct {
	ID       string `json:"ID"`
	Name     string `json:"nombre"`
	DeptName string `json:"departamento"`
}

// PrerequisitesResult is the structured answer of the prerequisites query.
// An empty Prerequisites list with a Message is a valid, successful answer.
type PrerequisitesResult struct {
	Course        CourseSummary   `json:"curso"`
	Prerequisites []CourseSummary `json:"prerrequisitos"`
	Message       string          `json:"mensaje,omitempty"`
}

// TranscriptEntry is one row of a student's academic record.
type TranscriptEntry struct {
	CourseID string `json:"course_id"`
	Title    string `json:"titulo"`
	Credits  int    `json:"creditos"`
	Semester string `json:"semestre"`
	Year     int    `json:"anio"`
	Grade    string `json:"calificacion"`
}

// TranscriptResult is the structured answer of the transcript query,
// sorted ascending by (year, semester) with the semester compared as a
// raw string.
type TranscriptResult struct {
	Student StudentSummary    `json:"estudiante"`
	Entries []TranscriptEntry `json:"historial"`
	Message string            `json:"mensaje,omitempty"`
}

// SectionDetail is one section with its resolved course title, room and
// formatted meeting schedule.
type SectionDetail struct {
	CourseID   string `json:"course_id"`
	Title      string `json:"titulo"`
	SecID      string `json:"seccion"`
	Semester   string `json:"semestre"`
	Year       int    `json:"anio"`
	Building   string `json:"edificio"`
	RoomNumber string `json:"sala"`
	Schedule   string `json:"horario"`
}

// SectionDetailsResult is the structured answer of the section-details query.
type SectionDetailsResult struct {
	Sections []SectionDetail `json:"secciones"`
}

// BuildingSection is one section found in a building.
type BuildingSection struct {
	CourseID   string `json:"course_id"`
	Title      string `json:"titulo"`
	SecID      string `json:"seccion"`
	Semester   string `json:"semestre"`
	Year       int    `json:"anio"`
	RoomNumber string `json:"sala"`
	TimeSlotID string `json:"horario_id"`
}

// BuildingSectionsResult is the structured answer of the sections-by-building query.
type BuildingSectionsResult struct {
	Building string            `json:"edificio"`
	Sections []BuildingSection `json:"secciones"`
}

// StudentAdvisor pairs a student with their advisor. When no advisor
// edge exists the advisor fields carry the documented fallback strings
// instead of failing the row.
type StudentAdvisor struct {
	StudentID    string `json:"ID"`
	StudentName  string `json:"nombre"`
	StudentDept  string `json:"departamento"`
	TotalCredits int    `json:"creditos"`
	AdvisorName  string `json:"asesor"`
	AdvisorDept  string `json:"departamento_asesor"`
}

// AdvisorResult is the structured answer of the student-and-advisor query.
type AdvisorResult struct {
	Students []StudentAdvisor `json:"estudiantes"`
}

// GradeEntry is one student's graded enrollment in a course.
type GradeEntry struct {
	StudentID string `json:"ID"`
	Name      string `json:"nombre"`
	DeptName  string `json:"departamento"`
	Grade     string `json:"calificacion"`
	Semester  string `json:"semestre"`
	Year      int    `json:"anio"`
}

// TopGradesResult is the structured answer of the grade-A query.
type TopGradesResult struct {
	Course   CourseSummary `json:"curso"`
	Students []GradeEntry  `json:"estudiantes"`
	Message  string        `json:"mensaje,omitempty"`
}

// AdviseesResult is the structured answer of the students-by-advisor query.
type AdviseesResult struct {
	Instructor InstructorSummary `json:"profesor"`
	Advisees   []StudentSummary  `json:"estudiantes"`
	Message    string            `json:"mensaje,omitempty"`
}

// TaughtCourse is one course an instructor teaches, with the classroom
// and schedule resolved from the matching section when it exists.
type TaughtCourse struct {
	CourseID  string `json:"course_id"`
	Title     string `json:"titulo"`
	SecID     string `json:"seccion"`
	Semester  string `json:"semestre"`
	Year      int    `json:"anio"`
	Classroom string `json:"aula"`
	Schedule  string `json:"horario"`
}

// TaughtCoursesResult is the structured answer of the courses-by-instructor query.
type TaughtCoursesResult struct {
	Instructor InstructorSummary `json:"profesor"`
	Courses    []TaughtCourse    `json:"cursos"`
	Message    string            `json:"mensaje,omitempty"`
}

// DeptSalary is the salary aggregate of one department. Values are
// rounded to 2 decimals but stay numeric in this shape.
type DeptSalary struct {
	DeptName    string  `json:"departamento"`
	AvgSalary   float64 `json:"salario_promedio"`
	MinSalary   float64 `json:"salario_minimo"`
	MaxSalary   float64 `json:"salario_maximo"`
	Instructors int     `json:"total_profesores"`
}

// SalaryReport is the structured answer of the salary query, ordered by
// mean salary descending. An empty department set is a valid answer.
type SalaryReport struct {
	Departments []DeptSalary `json:"departamentos"`
}

// CreditsResult is the structured answer of the credit-threshold query,
// sorted by total credits descending.
type CreditsResult struct {
	DeptName  string           `json:"departamento"`
	Threshold int              `json:"umbral"`
	Students  []StudentSummary `json:"estudiantes"`
}
