package models

// Department is a reference entity; queries join on its name rather
// than resolving it directly.
type Department struct {
	DeptName string  `json:"dept_name" bson:"dept_name" db:"dept_name"`
	Building string  `json:"building" bson:"building" db:"building"`
	Budget   float64 `json:"budget" bson:"budget" db:"budget"`
}
