package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javiercriado/interview-dashboard/internal/query"
	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
	"github.com/javiercriado/interview-dashboard/pkg/response"
)

func (h *Handler) ListCandidates(c *gin.Context) {
	var params query.CandidateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidates, err := h.Repo.Candidates.List(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("failed to list candidates", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, query.Candidates(candidates, params))
}

// GetCandidate returns one candidate eagerly joined with its interviews.
func (h *Handler) GetCandidate(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	candidate, err := h.Repo.Candidates.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Candidate not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to get candidate", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	interviews, err := h.Repo.Interviews.ListByCandidate(ctx, id)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to join candidate interviews", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}
	candidate.Interviews = interviews

	response.OK(c, candidate)
}

func (h *Handler) CreateCandidate(c *gin.Context) {
	var req model.CreateCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidate := req.Candidate()
	candidate.Status = model.CandidatePending
	candidate.CreatedAt = nowISO()

	created, err := h.Repo.Candidates.Create(c.Request.Context(), candidate)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to create candidate", "err", err)
		response.InternalError(c, "")
		return
	}

	h.Analytics.Invalidate(c.Request.Context())
	response.Created(c, created)
}

func (h *Handler) PatchCandidate(c *gin.Context) {
	var patch model.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.Repo.Candidates.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Candidate not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to update candidate", "id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, updated)
}

func (h *Handler) BulkCreateCandidates(c *gin.Context) {
	var req model.BulkCreateCandidatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	now := nowISO()
	candidates := make([]model.Candidate, 0, len(req.Candidates))
	for _, r := range req.Candidates {
		candidate := r.Candidate()
		candidate.Status = model.CandidatePending
		candidate.CreatedAt = now
		candidates = append(candidates, candidate)
	}

	created, err := h.Repo.Candidates.BulkCreate(c.Request.Context(), candidates)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to bulk create candidates", "err", err)
		response.InternalError(c, "")
		return
	}

	h.Analytics.Invalidate(c.Request.Context())
	response.Created(c, model.BulkCreateResult{
		Created:    len(created),
		Candidates: created,
	})
}

// InviteCandidate simulates sending the interview invitation, then moves the
// candidate to invited.
func (h *Handler) InviteCandidate(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	candidate, err := h.Repo.Candidates.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Candidate not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to get candidate", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	if err := h.Mailer.SendInvite(ctx, *candidate); err != nil {
		h.Logger.Sugar().Warnw("invite send interrupted", "id", id, "err", err)
		response.InternalError(c, "failed to send invite")
		return
	}

	status := model.CandidateInvited
	invitedAt := nowISO()
	updated, err := h.Repo.Candidates.Update(ctx, id, model.CandidatePatch{
		Status:    &status,
		InvitedAt: &invitedAt,
	})
	if err != nil {
		h.Logger.Sugar().Errorw("failed to mark candidate invited", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, updated)
}
