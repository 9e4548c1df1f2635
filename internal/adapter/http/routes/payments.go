package routes

import (
	"hpp_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments       = "/payments"
	PathPaymentResults = "/payment-results"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, resultHandler *handlers.ResultHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/backoffice-link", resultHandler.BackOfficeLink)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.GET("/:id/pay", paymentHandler.Pay)
		payments.GET("/:id/mock-result", paymentHandler.MockResult)
	}

	// The provider redirects the shopper here; GET by default, POST when the
	// skin is configured to post results.
	results := rg.Group(PathPaymentResults)
	{
		results.GET("", resultHandler.HandleResult)
		results.POST("", resultHandler.HandleResult)
	}
}
