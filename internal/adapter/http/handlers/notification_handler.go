package handlers

import (
	"errors"
	"net/http"

	"hpp_gateway/internal/adapter/http/dto/request"
	"hpp_gateway/internal/adapter/http/dto/response"
	"hpp_gateway/internal/domain/hpp"
	"hpp_gateway/internal/usecase"
	"hpp_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationAccepted is the body the provider expects before it stops
// redelivering a notification.
const NotificationAccepted = "[accepted]"

const basicAuthRealm = `Basic realm="restricted area"`

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	log     *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, log *zap.Logger) *NotificationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationHandler{usecase: uc, log: log}
}

// BasicAuth rejects requests whose basic credentials do not match the
// configured notification user.
func (h *NotificationHandler) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, password, ok := c.Request.BasicAuth()
		if !ok {
			h.unauthorized(c, usecase.ErrNotificationUnauthorized)
			return
		}
		if err := h.usecase.Authenticate(c.Request.Context(), user, password); err != nil {
			h.unauthorized(c, err)
			return
		}
		c.Next()
	}
}

func (h *NotificationHandler) unauthorized(c *gin.Context, err error) {
	h.log.Warn("[notification][handler] unauthorized", zap.String("path", c.FullPath()), zap.Error(err))
	c.Header("WWW-Authenticate", basicAuthRealm)
	appErr := pkg.NewDomainError("UNAUTHORIZED", "Unauthorized", err, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// Receive godoc
// @Summary Receive a payment notification
// @Tags notifications
// @Accept x-www-form-urlencoded
// @Produce plain
// @Security BasicAuth
// @Success 200 {string} string "[accepted]"
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Router /notifications [post]
func (h *NotificationHandler) Receive(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	params := request.Flatten(c.Request.PostForm)

	n, err := h.usecase.Receive(c.Request.Context(), params)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[notification][handler] accepted", zap.String("notification_id", n.ID), zap.String("event_code", n.EventCode))
	c.String(http.StatusOK, NotificationAccepted)
}

// GetNotification godoc
// @Summary Get a stored notification
// @Tags notifications
// @Produce json
// @Security BasicAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} response.NotificationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	details, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationDetails(details))
}

// ProcessUnhandled godoc
// @Summary Publish events for unhandled notifications
// @Tags notifications
// @Produce json
// @Security BasicAuth
// @Success 200 {object} response.ProcessNotificationsResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /notifications/process [post]
func (h *NotificationHandler) ProcessUnhandled(c *gin.Context) {
	published, err := h.usecase.ProcessUnhandled(c.Request.Context())
	if err != nil {
		h.log.Error("[notification][handler] processing finished with errors", zap.Int("published", published), zap.Error(err))
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ProcessNotificationsResponse{Published: published})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), hpp.IsValidationError(err):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationUnauthorized):
		return pkg.NewDomainError("UNAUTHORIZED", "Unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
