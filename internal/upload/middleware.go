package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/server/resp"
)

const contextKey = "upload.file"

// multipartOverhead is the room left for boundaries and part headers above MaxSize.
const multipartOverhead = 1 << 20

// Middleware saves the single file sent in field and puts a StoredFile in the context.
// Wrong types answer 400, oversized files 413.
func Middleware(p Policy, field string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		limit := p.MaxSize + multipartOverhead
		if c.Request.ContentLength > limit {
			logger.Warn("upload rejected", zap.String("field", field), zap.Int64("content_length", c.Request.ContentLength))
			resp.Abort(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

		fh, err := c.FormFile(field)
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				resp.Abort(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			case errors.Is(err, http.ErrMissingFile):
				resp.Abort(c, http.StatusBadRequest, "file field \""+field+"\" is required")
			default:
				resp.Abort(c, http.StatusBadRequest, "invalid multipart form")
			}
			logger.Warn("upload rejected", zap.String("field", field), zap.Error(err))
			return
		}

		stored, err := p.Save(field, fh)
		if err != nil {
			var rej *RejectedError
			if errors.As(err, &rej) {
				status := http.StatusBadRequest
				if rej.Reason == ReasonSize {
					status = http.StatusRequestEntityTooLarge
				}
				logger.Warn("upload rejected", zap.String("field", field), zap.String("reason", string(rej.Reason)), zap.String("name", fh.Filename))
				resp.Abort(c, status, rej.Message)
				return
			}
			logger.Error("upload failed", zap.String("field", field), zap.Error(err))
			resp.Abort(c, http.StatusInternalServerError, "internal error")
			return
		}

		logger.Info("file uploaded",
			zap.String("filename", stored.Filename),
			zap.Int64("size", stored.Size),
			zap.String("content_type", stored.ContentType),
		)
		c.Set(contextKey, stored)
		c.Next()
	}
}

// FromContext returns the file stored by Middleware.
func FromContext(c *gin.Context) (StoredFile, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return StoredFile{}, false
	}
	f, ok := v.(StoredFile)
	return f, ok
}
