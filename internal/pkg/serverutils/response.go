// FILE: internal/pkg/serverutils/response.go
package serverutils

// Response is the JSON envelope every endpoint returns.
type Response[T any] struct {
	Success bool     `json:"success"`
	Code    int      `json:"code,omitempty"`
	Message string   `json:"message"`
	Data    T        `json:"data,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorResponseWithReasons carries the full reason list of a failed
// precondition check (eligibility endpoints report every failure at once).
func ErrorResponseWithReasons(code int, message string, reasons []string) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
		Reasons: reasons,
	}
}
