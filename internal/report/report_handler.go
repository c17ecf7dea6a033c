package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rikimaka/internal/middleware"
	"rikimaka/internal/shared/apperror"
	"rikimaka/internal/shared/response"
	"rikimaka/internal/user"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	reports, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, reports)
}

func (h *Handler) GetByUser(c *gin.Context) {
	userID := c.Param("userId")
	if c.GetString(middleware.CtxUserRole) != user.RoleAdmin && c.GetString(middleware.CtxUserID) != userID {
		response.Error(c, http.StatusForbidden, "No tiene permisos para esta accion")
		return
	}

	reports, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, reports)
}

func (h *Handler) GetByProject(c *gin.Context) {
	reports, err := h.service.GetByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, reports)
}

func (h *Handler) GetByID(c *gin.Context) {
	rep, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, rep)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create report validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	actorRole := c.GetString(middleware.CtxUserRole)
	rep, err := h.service.Create(c.Request.Context(), actorID, actorRole, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusCreated, rep)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update report validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	actorRole := c.GetString(middleware.CtxUserRole)
	rep, err := h.service.Update(c.Request.Context(), actorID, actorRole, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, rep)
}

func (h *Handler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	actorRole := c.GetString(middleware.CtxUserRole)
	if err := h.service.Delete(c.Request.Context(), actorID, actorRole, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Reporte eliminado correctamente")
}

func (h *Handler) HoursByProject(c *gin.Context) {
	stats, err := h.service.HoursByProject(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, stats)
}
