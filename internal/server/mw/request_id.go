package mw

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = "request_id"
)

// RequestID keeps a valid UUID sent by the client and generates one otherwise.
// The id is echoed in the response header and stored under CtxRequestID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := uuid.NewString()
		if id, err := uuid.Parse(c.GetHeader(HeaderRequestID)); err == nil {
			rid = id.String()
		}
		c.Set(CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}
