package dto

import "time"

// APIResponse is the standard envelope for successful responses. Error
// payloads use ErrorResponse instead; the two never mix.
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// PagedResponse wraps a list payload with its paging window and the
// total number of matching records.
type PagedResponse struct {
	Data  interface{} `json:"data"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
	Total int64       `json:"total,omitempty"`
}
