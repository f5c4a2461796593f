package response

import (
	"github.com/gin-gonic/gin"
)

// Resource writes a single top-level key, e.g. {"company": {...}} or
// {"invoices": [...]}.
func Resource(c *gin.Context, status int, key string, data any) {
	c.JSON(status, gin.H{key: data})
}

// Deleted is the body every DELETE route answers with.
func Deleted(c *gin.Context, status int) {
	c.JSON(status, gin.H{"status": "deleted"})
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: ErrorBody{
			Code:    errorCode,
			Message: message,
			Status:  status,
			Details: details,
		},
	})
}
