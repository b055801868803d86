package models

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse is the envelope for list endpoints. Count always appears,
// even when zero.
type ListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Count   int    `json:"count"`
}

// SuccessResponse builds a success envelope with an optional data payload.
func SuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// SuccessListResponse builds a success envelope carrying a collection.
func SuccessListResponse(message string, data any, count int) ListResponse {
	return ListResponse{Success: true, Message: message, Data: data, Count: count}
}

// ErrorResponse builds a failure envelope.
func ErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}
