package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope is the wire shape every endpoint returns:
// {success, data?, message?, count?}.
type ApiEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
	})
}

// List is Success plus a count key, which list endpoints always carry.
func List(c *gin.Context, status int, data any, count int) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Success: false,
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}
