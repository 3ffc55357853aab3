package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// request id + simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", requestID,
		)
	})

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if slices.Contains(app.Config.CORS.TrustedOrigins, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/interviews", app.Handler.ListInterviews)
		api.GET("/interviews/:id", app.Handler.GetInterview)
		api.POST("/interviews", app.Handler.CreateInterview)

		api.GET("/candidates", app.Handler.ListCandidates)
		api.POST("/candidates", app.Handler.CreateCandidate)
		api.POST("/candidates/bulk", app.Handler.BulkCreateCandidates)
		api.POST("/candidates/import", app.Handler.ImportCandidates)
		api.GET("/candidates/import/template", app.Handler.DownloadImportTemplate)
		api.GET("/candidates/:id", app.Handler.GetCandidate)
		api.PATCH("/candidates/:id", app.Handler.PatchCandidate)
		api.POST("/candidates/:id/invite", app.Handler.InviteCandidate)

		api.GET("/interview-templates", app.Handler.ListTemplates)
		api.GET("/interview-templates/:id", app.Handler.GetTemplate)
		api.POST("/interview-templates", app.Handler.CreateTemplate)
		api.PATCH("/interview-templates/:id", app.Handler.PatchTemplate)
		api.DELETE("/interview-templates/:id", app.Handler.DeleteTemplate)

		api.GET("/analytics", app.Handler.GetAnalytics)
	}

	return r
}
