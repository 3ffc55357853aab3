package handler

import (
	"time"

	"go.uber.org/zap"

	"github.com/javiercriado/interview-dashboard/internal/analytics"
	"github.com/javiercriado/interview-dashboard/internal/mailer"
	"github.com/javiercriado/interview-dashboard/internal/repository"
)

type Handler struct {
	Logger    *zap.Logger
	Repo      *repository.Repository
	Analytics *analytics.Service
	Mailer    *mailer.Sender
}

// nowISO matches the timestamp format the dashboard stores everywhere else,
// ISO-8601 with millisecond precision in UTC.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
