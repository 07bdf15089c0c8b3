package models

// Section is one offering of a course. The composite key is
// (course_id, sec_id, semester, year); a bare sec_id may match several
// sections across semesters.
type Section struct {
	CourseID   string `json:"course_id" bson:"course_id" db:"course_id"`
	SecID      string `json:"sec_id" bson:"sec_id" db:"sec_id"`
	Semester   string `json:"semester" bson:"semester" db:"semester"`
	Year       int    `json:"year" bson:"year" db:"year"`
	Building   string `json:"building" bson:"building" db:"building"`
	RoomNumber string `json:"room_number" bson:"room_number" db:"room_number"`
	TimeSlotID string `json:"time_slot_id" bson:"time_slot_id" db:"time_slot_id"`
}

// Classroom is a physical room keyed by (building, room_number).
type Classroom struct {
	Building   string `json:"building" bson:"building" db:"building"`
	RoomNumber string `json:"room_number" bson:"room_number" db:"room_number"`
	Capacity   int    `json:"capacity" bson:"capacity" db:"capacity"`
}

// TimeSlot is one meeting window of a time-slot id. An id groups several
// rows, one per weekday the slot meets.
type TimeSlot struct {
	TimeSlotID string `json:"time_slot_id" bson:"time_slot_id" db:"time_slot_id"`
	Day        string `json:"day" bson:"day" db:"day"`
	StartHour  int    `json:"start_hr" bson:"start_hr" db:"start_hr"`
	StartMin   int    `json:"start_min" bson:"start_min" db:"start_min"`
	EndHour    int    `json:"end_hr" bson:"end_hr" db:"end_hr"`
	EndMin     int    `json:"end_min" bson:"end_min" db:"end_min"`
}
