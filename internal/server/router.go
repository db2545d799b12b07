// Package server builds the HTTP intake server: uploads plus the files they produce.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/server/mw"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/server/resp"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/upload"
)

const (
	UploadField = "file"
	UploadsPath = "/uploads"
)

// Deps are optional infrastructure clients; a nil Redis disables rate limiting.
type Deps struct {
	Redis *redis.Client
}

func NewRouter(cfg config.Config, deps Deps, logger *zap.Logger) http.Handler {
	if cfg.IsLocal() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mw.RequestID())
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.Recovery(logger))
	r.Use(mw.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{mw.HeaderRequestID},
	}))

	r.GET("/health", func(c *gin.Context) {
		resp.OK(c, gin.H{"status": "ok"})
	})

	policy := upload.PolicyFrom(cfg.Upload)
	r.Static(UploadsPath, policy.Dir)

	v1 := r.Group("/api/v1")
	if deps.Redis != nil && cfg.Security.RateLimitRPS > 0 {
		v1.Use(mw.RateLimit(deps.Redis, cfg.Security.RateLimitRPS, logger))
	}
	v1.POST("/uploads", upload.Middleware(policy, UploadField, logger), uploaded)

	return r
}

func uploaded(c *gin.Context) {
	f, ok := upload.FromContext(c)
	if !ok {
		resp.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	resp.Created(c, "file uploaded", gin.H{
		"file": f,
		"url":  UploadsPath + "/" + f.Filename,
	})
}
