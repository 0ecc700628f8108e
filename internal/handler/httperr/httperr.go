// Package httperr defines the JSON error envelope and a helper to abort a
// request with it while keeping the original error on the gin context.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body sent to clients. Status is carried alongside
// for the middleware but never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and records err on the context so the
// logging middleware still sees the underlying cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
