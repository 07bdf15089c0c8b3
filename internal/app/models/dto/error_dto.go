package dto

// ErrorCode represents standardized error codes returned to clients
type ErrorCode string

const (
	// ErrorCodeMissingParameter indicates a required request field was absent or empty
	ErrorCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	// ErrorCodeResourceNotFound indicates the primary entity of a query does not exist
	ErrorCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	// ErrorCodeStoreUnavailable indicates the backing store could not be reached
	ErrorCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	// ErrorCodeValidationFailed indicates a malformed request body or path parameter
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	// ErrorCodeInternalServer indicates an unclassified server-side failure
	ErrorCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail carries the code and user-facing message of a failure
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"RESOURCE_NOT_FOUND"`
	Message string    `json:"message" example:"El curso 'CS-000' no existe"`
}

// ErrorResponse is the envelope for all error payloads
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// NewErrorDetail creates an ErrorDetail with the given code and message
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// NewErrorResponse wraps an ErrorDetail in a response envelope
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{Error: detail}
}
