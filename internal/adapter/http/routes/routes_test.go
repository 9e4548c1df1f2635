package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hpp_gateway/internal/adapter/http/handlers"
	"hpp_gateway/internal/adapter/http/handlers/mocks"
	"hpp_gateway/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentUC := mocks.NewMockIPaymentUseCase(ctrl)
	resultUC := mocks.NewMockIResultUseCase(ctrl)
	notificationUC := mocks.NewMockINotificationUseCase(ctrl)
	log := zap.NewNop()

	router := NewRouter(Handlers{
		Payment:      handlers.NewPaymentHandler(paymentUC, log),
		Result:       handlers.NewResultHandler(resultUC, log),
		Notification: handlers.NewNotificationHandler(notificationUC, log),
	}, log, []string{"https://shop.example.com"})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("backoffice link is not a payment id", func(t *testing.T) {
		resultUC.EXPECT().BackOfficeLink(gomock.Any(), "881").Return("https://ca-test.adyen.com/x", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/backoffice-link?psp_reference=881", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("payment by id", func(t *testing.T) {
		paymentUC.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("notifications require basic auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/notifications/process", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/payments", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://shop.example.com" {
			t.Fatalf("unexpected allow origin %q", w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("foreign origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("panics are recovered", func(t *testing.T) {
		paymentUC.EXPECT().GetByID(gomock.Any(), "boom").DoAndReturn(func(_ any, _ string) (entities.Payment, error) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/boom", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
