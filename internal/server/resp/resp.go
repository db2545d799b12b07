// Package resp writes the JSON envelope shared by every intake server endpoint.
package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the body of every response, successful or not.
type Envelope struct {
	Status      string `json:"status"`      // success | error
	Code        int    `json:"code"`        // mirrors the HTTP status
	Description string `json:"description"` // human readable
	Data        any    `json:"data"`        // object | array | null
}

func Success(c *gin.Context, httpCode int, description string, data any) {
	c.JSON(httpCode, Envelope{Status: StatusSuccess, Code: httpCode, Description: description, Data: data})
}

func OK(c *gin.Context, data any) {
	Success(c, http.StatusOK, "ok", data)
}

func Created(c *gin.Context, description string, data any) {
	Success(c, http.StatusCreated, description, data)
}

func Error(c *gin.Context, httpCode int, description string) {
	c.JSON(httpCode, Envelope{Status: StatusError, Code: httpCode, Description: description})
}

// Abort writes the error envelope and stops the remaining handlers of the chain.
func Abort(c *gin.Context, httpCode int, description string) {
	c.AbortWithStatusJSON(httpCode, Envelope{Status: StatusError, Code: httpCode, Description: description})
}
