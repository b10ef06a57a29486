package common

// ErrorResponse is the generic error envelope. The key is "error" to match
// the portal frontend, which alerts on result.error.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// MessageResponse acknowledges an operation with a human-readable note.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) *MessageResponse {
	return &MessageResponse{Message: message}
}

// StatusResponse is the three-way submission envelope: status is "success",
// "warning", or an error discriminator, and message explains it.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewStatusResponse(status, message string) *StatusResponse {
	return &StatusResponse{Status: status, Message: message}
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// PageResponse carries one page of a filtered listing plus whatever the
// caller needs to render the filter controls.
type PageResponse struct {
	Data       any        `json:"data"`
	Options    any        `json:"options,omitempty"`
	Pagination Pagination `json:"pagination"`
}

func NewPageResponse(data, options any, pagination Pagination) *PageResponse {
	return &PageResponse{Data: data, Options: options, Pagination: pagination}
}
