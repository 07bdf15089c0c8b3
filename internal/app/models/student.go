package models

// Student defines the student model. TotalCredits is the accumulated
// credit count maintained by the registrar, not derived here.
type Student struct {
	ID           string `json:"ID" bson:"ID" db:"id"`
	Name         string `json:"name" bson:"name" db:"name"`
	DeptName     string `json:"dept_name" bson:"dept_name" db:"dept_name"`
	TotalCredits int    `json:"tot_cred" bson:"tot_cred" db:"tot_cred"`
}
