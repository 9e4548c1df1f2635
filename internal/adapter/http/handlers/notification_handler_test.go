package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hpp_gateway/internal/adapter/http/handlers/mocks"
	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"
	"hpp_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(uc usecase.INotificationUseCase) *gin.Engine {
	h := NewNotificationHandler(uc, nil)
	r := gin.New()
	g := r.Group("/v1/notifications", h.BasicAuth())
	g.POST("", h.Receive)
	g.POST("/process", h.ProcessUnhandled)
	g.GET("/:id", h.GetNotification)
	return r
}

func notificationRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("adyen", "s3cret")
	return req
}

func TestNotificationHandler_BasicAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newNotificationRouter(mocks.NewMockINotificationUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/notifications", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w.Header().Get("WWW-Authenticate") != basicAuthRealm {
			t.Fatalf("unexpected challenge %q", w.Header().Get("WWW-Authenticate"))
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), "adyen", "s3cret").Return(usecase.ErrNotificationUnauthorized)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodPost, "/v1/notifications", "eventCode=AUTHORISATION"))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), "adyen", "s3cret").Return(nil)
		uc.EXPECT().Receive(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, params map[string]string) (entities.PaymentNotification, error) {
			if params["eventCode"] != "AUTHORISATION" || params["pspReference"] != "8813760397300101" {
				t.Fatalf("unexpected params: %v", params)
			}
			return entities.PaymentNotification{ID: "n-1", EventCode: "AUTHORISATION"}, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodPost, "/v1/notifications", "eventCode=AUTHORISATION&pspReference=8813760397300101"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != NotificationAccepted {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("invalid notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uc.EXPECT().Receive(gomock.Any(), gomock.Any()).Return(entities.PaymentNotification{}, &hpp.InvalidBooleanLiteralError{Field: "live", Raw: "maybe"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodPost, "/v1/notifications", "live=maybe"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uc.EXPECT().Receive(gomock.Any(), gomock.Any()).Return(entities.PaymentNotification{}, errors.New("dynamo down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodPost, "/v1/notifications", "eventCode=AUTHORISATION"))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), NotificationAccepted) {
			t.Fatalf("failure must not be acknowledged: %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_GetNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(usecase.NotificationDetails{}, usecase.ErrNotificationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodGet, "/v1/notifications/missing", ""))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		n := entities.PaymentNotification{
			ID:            "n-1",
			EventCode:     "AUTHORISATION",
			PSPReference:  "8813760397300101",
			PaymentMethod: "visa",
			Value:         4599,
			Currency:      "EUR",
			EventDate:     time.Date(2015, 2, 14, 14, 45, 10, 0, time.UTC),
		}
		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uc.EXPECT().GetByID(gomock.Any(), "n-1").Return(usecase.NotificationDetails{
			Notification:  n,
			Duplicate:     true,
			BackOfficeURL: hpp.NotificationBackOfficeURL(n),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodGet, "/v1/notifications/n-1", ""))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		for _, want := range []string{`"duplicate":true`, `"amount":"45.99"`, `"payment_method_name":"VISA"`} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %s in %s", want, body)
			}
		}
	})
}

func TestNotificationHandler_ProcessUnhandled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uc.EXPECT().ProcessUnhandled(gomock.Any()).Return(3, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodPost, "/v1/notifications/process", ""))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) != `{"published":3}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uc.EXPECT().ProcessUnhandled(gomock.Any()).Return(1, errors.New("publish failed"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, notificationRequest(http.MethodPost, "/v1/notifications/process", ""))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
