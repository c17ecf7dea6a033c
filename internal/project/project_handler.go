package project

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rikimaka/internal/middleware"
	"rikimaka/internal/shared/apperror"
	"rikimaka/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("project.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("project request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	projects, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, projects)
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create project validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	p, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update project validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	p, err := h.service.Update(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, p)
}

func (h *Handler) AssignUser(c *gin.Context) {
	var req AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http assign user validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	p, err := h.service.AssignUser(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	if err := h.service.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Proyecto eliminado correctamente")
}
