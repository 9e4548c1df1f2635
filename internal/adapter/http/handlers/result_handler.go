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

// ResultHandler receives the shopper when the payment page redirects back.
type ResultHandler struct {
	usecase usecase.IResultUseCase
	log     *zap.Logger
}

func NewResultHandler(uc usecase.IResultUseCase, log *zap.Logger) *ResultHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResultHandler{usecase: uc, log: log}
}

// HandleResult godoc
// @Summary Verify and store a payment result
// @Description Accepts the signed result parameters as query string or form body. Refused, cancelled and errored payments answer 402 with the stored result.
// @Tags results
// @Produce json
// @Success 200 {object} response.ResultResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 402 {object} response.ResultResponse
// @Failure 403 {object} pkg.HTTPError
// @Router /payment-results [get]
// @Router /payment-results [post]
func (h *ResultHandler) HandleResult(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	params := request.Flatten(c.Request.Form)

	out, err := h.usecase.HandleResult(c.Request.Context(), params)
	if errors.Is(err, usecase.ErrPaymentFailed) {
		h.log.Info("[result][handler] payment not accepted",
			zap.String("merchant_reference", out.Result.MerchantReference),
			zap.String("auth_result", string(out.Result.AuthResult)),
		)
		c.JSON(http.StatusPaymentRequired, response.FromResultOutcome(out))
		return
	}
	if err != nil {
		h.log.Warn("[result][handler] result rejected", zap.Error(err))
		appErr := mapResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResultOutcome(out))
}

// BackOfficeLink godoc
// @Summary Customer area link for a PSP reference
// @Tags results
// @Produce json
// @Param psp_reference query string true "PSP reference"
// @Success 200 {object} response.BackOfficeLinkResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/backoffice-link [get]
func (h *ResultHandler) BackOfficeLink(c *gin.Context) {
	psp := c.Query("psp_reference")
	link, err := h.usecase.BackOfficeLink(c.Request.Context(), psp)
	if err != nil {
		appErr := mapResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if link == "" {
		appErr := pkg.NewDomainErrorSimple("PSP_REFERENCE_NOT_FOUND", "PSP reference not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BackOfficeLinkResponse{PSPReference: psp, URL: link})
}

func mapResultError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPSPReference), hpp.IsValidationError(err):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, hpp.ErrBadSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Result signature does not match", err, http.StatusForbidden)
	case errors.Is(err, hpp.ErrUnknownCredential):
		return pkg.NewDomainError("UNKNOWN_SKIN", "Unknown skin code", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
