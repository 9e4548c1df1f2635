package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hpp_gateway/internal/adapter/http/handlers/mocks"
	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"
	"hpp_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newResultRouter(uc usecase.IResultUseCase) *gin.Engine {
	h := NewResultHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/payment-results", h.HandleResult)
	r.POST("/v1/payment-results", h.HandleResult)
	r.GET("/v1/payments/backoffice-link", h.BackOfficeLink)
	return r
}

func TestResultHandler_HandleResult(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const query = "/v1/payment-results?authResult=AUTHORISED&merchantReference=1&merchantSig=sig&pspReference=8813760397300101&skinCode=abc123"

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIResultUseCase(ctrl)
		r := newResultRouter(uc)

		uc.EXPECT().HandleResult(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, params map[string]string) (usecase.ResultOutcome, error) {
			if params["merchantSig"] != "sig" || params["pspReference"] != "8813760397300101" {
				t.Fatalf("unexpected params: %v", params)
			}
			return usecase.ResultOutcome{Result: entities.PaymentResult{ID: "res-1", AuthResult: entities.AuthResultAuthorised, MerchantReference: "1"}}, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, query, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"accepted":true`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("form post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIResultUseCase(ctrl)
		r := newResultRouter(uc)

		uc.EXPECT().HandleResult(gomock.Any(), map[string]string{"authResult": "PENDING", "merchantReference": "1"}).
			Return(usecase.ResultOutcome{Result: entities.PaymentResult{AuthResult: entities.AuthResultPending}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-results", strings.NewReader("authResult=PENDING&merchantReference=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refused answers 402 with body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIResultUseCase(ctrl)
		r := newResultRouter(uc)

		out := usecase.ResultOutcome{
			Result:  entities.PaymentResult{ID: "res-1", AuthResult: entities.AuthResultRefused, MerchantReference: "100-7"},
			Payment: &entities.Payment{ID: "7", OrderNumber: "100"},
		}
		uc.EXPECT().HandleResult(gomock.Any(), gomock.Any()).Return(out, usecase.ErrPaymentFailed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, query, nil))
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"auth_result":"REFUSED"`) || !strings.Contains(w.Body.String(), `"order_number":"100"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad signature", err: hpp.ErrBadSignature, code: http.StatusForbidden},
		{name: "unknown skin", err: hpp.ErrUnknownCredential, code: http.StatusForbidden},
		{name: "missing field", err: &hpp.MissingRequiredFieldError{Fields: []string{"authResult"}}, code: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("dynamo down"), code: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIResultUseCase(ctrl)
			r := newResultRouter(uc)

			uc.EXPECT().HandleResult(gomock.Any(), gomock.Any()).Return(usecase.ResultOutcome{}, tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, query, nil))
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if strings.Contains(w.Body.String(), "dynamo down") {
				t.Fatalf("internal error leaked: %s", w.Body.String())
			}
		})
	}
}

func TestResultHandler_BackOfficeLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIResultUseCase(ctrl)
		r := newResultRouter(uc)

		link := hpp.BackOfficeURL(false, "8813760397300101")
		uc.EXPECT().BackOfficeLink(gomock.Any(), "8813760397300101").Return(link, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/backoffice-link?psp_reference=8813760397300101", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "8813760397300101") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIResultUseCase(ctrl)
		r := newResultRouter(uc)

		uc.EXPECT().BackOfficeLink(gomock.Any(), "nope").Return("", nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/backoffice-link?psp_reference=nope", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIResultUseCase(ctrl)
		r := newResultRouter(uc)

		uc.EXPECT().BackOfficeLink(gomock.Any(), "").Return("", usecase.ErrInvalidPSPReference)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/backoffice-link", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
