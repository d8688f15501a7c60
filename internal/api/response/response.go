package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一成功响应，success 恒等于 statusCode < 400
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func write(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
}

func OK(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusCreated, message, data)
}

// Fail 写入错误响应，errs 为可选的明细
func Fail(c *gin.Context, statusCode int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	})
}

func BadRequest(c *gin.Context, message string, errs ...string) {
	Fail(c, http.StatusBadRequest, message, errs...)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Fail(c, http.StatusServiceUnavailable, message)
}
