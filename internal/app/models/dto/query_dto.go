package dto

// QueryParams is the parameter bag the numbered-query endpoint accepts.
// Every field is optional at the binding level; each query validates the
// fields it needs and rejects the request with a missing-parameter error
// otherwise.
type QueryParams struct {
	CourseID       string `json:"courseId"`
	StudentID      string `json:"studentId"`
	SectionID      string `json:"sectionId"`
	Building       string `json:"building"`
	StudentName    string `json:"studentName"`
	CourseName     string `json:"courseName"`
	ProfessorName  string `json:"professorName"`
	DepartmentName string `json:"departmentName"`
	// Threshold overrides the 90-credit default of the credit query.
	Threshold *int `json:"threshold,omitempty"`
}
