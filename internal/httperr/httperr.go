package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextAdminNamespace = "httperr.admin"

// AdminNamespace marks a route group whose errors are rendered as
// {"success": false, "error": ...}.
func AdminNamespace() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextAdminNamespace, true)
		c.Next()
	}
}

type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"error_code"`
}

type AdminHTTPError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"error_code"`
}

func Write(c *gin.Context, status int, code, message string) {
	if c.GetBool(contextAdminNamespace) {
		c.AbortWithStatusJSON(status, AdminHTTPError{
			Success: false,
			Error:   message,
			Code:    code,
		})
		return
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: message,
		Code:  code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}
