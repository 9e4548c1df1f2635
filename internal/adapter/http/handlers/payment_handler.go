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

// PaymentHandler handles HTTP requests for hosted payment sessions.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, log: log}
}

// CreatePayment godoc
// @Summary Create a hosted payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body request.CreatePaymentRequest true "Payment"
// @Success 201 {object} response.PaymentResponse
// @Success 204 "Nothing to pay"
// @Failure 400 {object} pkg.HTTPError
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Info("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	amount, err := req.ResolveAmount()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid payment amount", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	resURL, err := req.ResolveResURL()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	opts, err := hpp.ParseSessionOptions(req.Options)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePayment(c.Request.Context(), usecase.CreatePaymentInput{
		OrderNumber: req.OrderNumber,
		Amount:      amount,
		Currency:    req.Currency,
		ResURL:      resURL,
		Options:     opts,
	})
	if errors.Is(err, usecase.ErrNoPaymentRequired) {
		h.log.Info("[payment][handler] nothing to pay", zap.String("order_number", req.OrderNumber))
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.log.Warn("[payment][handler] create failed", zap.String("order_number", req.OrderNumber), zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[payment][handler] created", zap.String("payment_id", created.ID), zap.String("merchant_reference", created.MerchantReference))

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.PaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// Pay godoc
// @Summary Redirect the shopper to the payment page
// @Description Builds a fresh signed session. Responds 302 unless format=json is given.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Param format query string false "json to get the URL instead of a redirect"
// @Success 200 {object} response.RedirectResponse
// @Success 302 "Redirect to the payment page"
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{id}/pay [get]
func (h *PaymentHandler) Pay(c *gin.Context) {
	id := c.Param("id")
	p, err := h.usecase.Pay(c.Request.Context(), id, c.GetHeader("User-Agent"))
	if err != nil {
		h.log.Warn("[payment][handler] pay failed", zap.String("payment_id", id), zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, response.RedirectResponse{RedirectURL: p.RedirectURL})
		return
	}
	c.Redirect(http.StatusFound, p.RedirectURL)
}

// MockResult godoc
// @Summary Redirect to a signed AUTHORISED result for a test payment
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 302 "Redirect to the result URL"
// @Failure 403 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /payments/{id}/mock-result [get]
func (h *PaymentHandler) MockResult(c *gin.Context) {
	id := c.Param("id")
	target, err := h.usecase.MockResultURL(c.Request.Context(), id)
	if err != nil {
		h.log.Info("[payment][handler] mock result refused", zap.String("payment_id", id), zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Redirect(http.StatusFound, target)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case hpp.IsValidationError(err):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotStarted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_STARTED", "Payment session has not been started", http.StatusConflict)
	case errors.Is(err, usecase.ErrMockResultNotAllowed):
		return pkg.NewDomainErrorSimple("MOCK_RESULT_NOT_ALLOWED", "Mock results are only available for test payments", http.StatusForbidden)
	case errors.Is(err, hpp.ErrUnknownCredential):
		return pkg.NewDomainError("UNKNOWN_SKIN", "No credential configured for this skin", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrMissingResultURL):
		return pkg.NewDomainError("RESULT_URL_NOT_CONFIGURED", "Result URL is not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
