package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/javiercriado/interview-dashboard/pkg/response"
)

func (h *Handler) GetAnalytics(c *gin.Context) {
	summary, err := h.Analytics.Summary(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("failed to compute analytics", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, summary)
}
