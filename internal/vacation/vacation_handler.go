package vacation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rikimaka/internal/middleware"
	"rikimaka/internal/shared/apperror"
	"rikimaka/internal/shared/response"
	"rikimaka/internal/user"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("vacation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis enables idempotent-create replay on top of NewHandler.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("vacation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	vacations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, vacations)
}

func (h *Handler) GetByUser(c *gin.Context) {
	userID := c.Param("userId")
	// Workers only see their own history.
	if c.GetString(middleware.CtxUserRole) != user.RoleAdmin && c.GetString(middleware.CtxUserID) != userID {
		response.Error(c, http.StatusForbidden, "No tiene permisos para esta accion")
		return
	}

	vacations, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, vacations)
}

func (h *Handler) GetPending(c *gin.Context) {
	vacations, err := h.service.GetPending(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, vacations)
}

func (h *Handler) GetByID(c *gin.Context) {
	v, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, v)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create vacation validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	actorRole := c.GetString(middleware.CtxUserRole)
	v, err := h.service.Create(c.Request.Context(), actorID, actorRole, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResult(c, h.rdb, http.StatusCreated, v)
	response.Data(c, http.StatusCreated, v)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update vacation validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	actorRole := c.GetString(middleware.CtxUserRole)
	v, err := h.service.Update(c.Request.Context(), actorID, actorRole, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, v)
}

func (h *Handler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserID)
	actorRole := c.GetString(middleware.CtxUserRole)
	if err := h.service.Delete(c.Request.Context(), actorID, actorRole, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Solicitud de vacaciones eliminada correctamente")
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide vacation validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserID)
	v, err := h.service.Decide(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Data(c, http.StatusOK, v)
}
