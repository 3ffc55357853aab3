package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javiercriado/interview-dashboard/internal/query"
	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
	"github.com/javiercriado/interview-dashboard/pkg/response"
)

func (h *Handler) ListInterviews(c *gin.Context) {
	var params query.InterviewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	interviews, err := h.Repo.Interviews.List(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("failed to list interviews", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, query.Interviews(interviews, params))
}

func (h *Handler) GetInterview(c *gin.Context) {
	interview, err := h.Repo.Interviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to get interview", "id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, interview)
}

func (h *Handler) CreateInterview(c *gin.Context) {
	var req model.CreateInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	interview := req.Interview()
	interview.Status = model.InterviewScheduled
	interview.CreatedAt = nowISO()

	created, err := h.Repo.Interviews.Create(c.Request.Context(), interview)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to create interview", "err", err)
		response.InternalError(c, "")
		return
	}

	h.Analytics.Invalidate(c.Request.Context())
	response.Created(c, created)
}
