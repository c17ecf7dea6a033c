package holiday

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
	l := zap.L().Named("holiday.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("holiday request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	holidays, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Envelope(c, http.StatusOK, gin.H{"holidays": holidays})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create holiday validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Fecha y nombre son requeridos")
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	created, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Envelope(c, http.StatusCreated, gin.H{"holiday": created})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update holiday validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	updated, err := h.service.Update(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Envelope(c, http.StatusOK, gin.H{"holiday": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	if err := h.service.Deactivate(c.Request.Context(), actorID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Feriado eliminado")
}
