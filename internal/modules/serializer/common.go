package serializer

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body: a short error plus, usually, a
// human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Err builds the uniform error body. Outside release mode the underlying
// error is included to ease debugging; callers never see internals in
// production.
func Err(short, message string, err error) ErrorResponse {
	res := ErrorResponse{Error: short, Message: message}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Detail = fmt.Sprintf("%+v", err)
	}
	return res
}

// MessageResponse is the bare acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
