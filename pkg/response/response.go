package response

// Response is the standard JSON envelope for all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorData carries a machine-readable code and a human-readable message
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries pagination metadata
type Meta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// Error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// Success builds a successful response envelope
func Success(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Paginated builds a successful response with pagination metadata
func Paginated(data interface{}, page, pageSize int, total int64) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Page: page, PageSize: pageSize, Total: total},
	}
}

// Error builds a failed response envelope
func Error(code, message string) Response {
	return Response{Success: false, Error: &ErrorData{Code: code, Message: message}}
}

// BadRequest builds a BAD_REQUEST error response
func BadRequest(message string) Response {
	return Error(ErrCodeBadRequest, message)
}

// Unauthorized builds an UNAUTHORIZED error response
func Unauthorized(message string) Response {
	return Error(ErrCodeUnauthorized, message)
}

// Forbidden builds a FORBIDDEN error response
func Forbidden(message string) Response {
	return Error(ErrCodeForbidden, message)
}

// NotFound builds a NOT_FOUND error response
func NotFound(message string) Response {
	return Error(ErrCodeNotFound, message)
}

// InternalError builds an INTERNAL_ERROR response
func InternalError(message string) Response {
	return Error(ErrCodeInternal, message)
}
