package models

// Instructor represents a faculty member.
type Instructor struct {
	ID       string  `json:"ID" bson:"ID" db:"id"`
	Name     string  `json:"name" bson:"name" db:"name"`
	DeptName string  `json:"dept_name" bson:"dept_name" db:"dept_name"`
	Salary   float64 `json:"salary" bson:"salary" db:"salary"`
}

// DeptSalaryStats is an aggregate over instructors of one department.
type DeptSalaryStats struct {
	DeptName  string  `json:"dept_name"`
	AvgSalary float64 `json:"avg_salary"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
	Count     int     `json:"count"`
}
