package dto

// TableResponse is the flat tabular shape: column headers plus rows of
// stringified cells. It is what the numbered-query endpoint returns and
// what the original frontend renders directly.
type TableResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewMessageTable builds the single informational row used when "no
// results" is itself the answer.
func NewMessageTable(message string) TableResponse {
	return TableResponse{
		Columns: []string{"Mensaje"},
		Rows:    [][]string{{message}},
	}
}

// CountResponse reports a collection total for the catalog endpoints.
type CountResponse struct {
	Total int64 `json:"total"`
}
