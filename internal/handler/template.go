package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
	"github.com/javiercriado/interview-dashboard/pkg/response"
)

func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.Repo.Templates.List(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("failed to list templates", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, templates)
}

func (h *Handler) GetTemplate(c *gin.Context) {
	template, err := h.Repo.Templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Template not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to get template", "id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, template)
}

func (h *Handler) CreateTemplate(c *gin.Context) {
	var req model.CreateTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	template := req.Template()
	template.CreatedAt = nowISO()
	for i := range template.Questions {
		if template.Questions[i].ID == "" {
			template.Questions[i].ID = "q" + strconv.Itoa(i+1)
		}
	}

	created, err := h.Repo.Templates.Create(c.Request.Context(), template)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to create template", "err", err)
		response.InternalError(c, "")
		return
	}
	response.Created(c, created)
}

func (h *Handler) PatchTemplate(c *gin.Context) {
	var patch model.TemplatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.Repo.Templates.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Template not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to update template", "id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, updated)
}

func (h *Handler) DeleteTemplate(c *gin.Context) {
	err := h.Repo.Templates.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Template not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to delete template", "id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return
	}
	response.NoContent(c)
}
