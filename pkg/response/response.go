// Package response defines the uniform JSON envelope returned by every API
// endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope written for both successes and failures.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope with the given payload and message.
func Success(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  msg,
		Data: data,
	})
}

// Fail writes an error envelope with the given HTTP status and message.
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Code: code,
		Msg:  msg,
	})
}
