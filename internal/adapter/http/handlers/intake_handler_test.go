package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"solosync/internal/adapter/http/handlers/mocks"
	"solosync/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestIntakeHandler_Sync(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *IntakeHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/intake", h.Sync)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		r := newRouter(NewIntakeHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/intake", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing raw text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		r := newRouter(NewIntakeHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/intake", bytes.NewBufferString(`{"platform":"Email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("whitespace raw text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		r := newRouter(NewIntakeHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/intake", bytes.NewBufferString(`{"raw_text":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("extraction failure maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		r := newRouter(NewIntakeHandler(uc))

		uc.EXPECT().Sync(gomock.Any(), "gibberish", "").Return(usecase.ErrExtractionFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/intake", bytes.NewBufferString(`{"raw_text":"gibberish"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		r := newRouter(NewIntakeHandler(uc))

		uc.EXPECT().Sync(gomock.Any(), "need a logo", "Email").Return(errors.New("store unreachable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/intake", bytes.NewBufferString(`{"raw_text":"need a logo","platform":"Email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns ack without records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		r := newRouter(NewIntakeHandler(uc))

		uc.EXPECT().Sync(gomock.Any(), "Hi, need a logo by Friday for $500", "WhatsApp").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/intake", bytes.NewBufferString(`{"raw_text":"Hi, need a logo by Friday for $500","platform":"WhatsApp"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["success"] != true {
			t.Fatalf("expected success ack, got %v", body)
		}
		if _, ok := body["project"]; ok {
			t.Fatalf("ack must not carry created records: %v", body)
		}
	})
}
