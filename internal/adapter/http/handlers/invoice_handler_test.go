package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solosync/internal/adapter/http/handlers/mocks"
	"solosync/internal/domain/entities"
	"solosync/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_MarkSent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/invoices/:id/send", h.MarkSent)
		return r
	}

	t.Run("transition conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().MarkSent(gomock.Any(), "inv-1").Return(entities.Invoice{}, usecase.ErrInvalidInvoiceTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().MarkSent(gomock.Any(), "inv-404").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-404/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns updated invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().MarkSent(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID:        "inv-1",
			Amount:    1500,
			Status:    entities.InvoiceStatusSent,
			ProjectID: "proj-1",
			ClientID:  "client-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "Sent" {
			t.Fatalf("expected Sent status, got %v", body)
		}
	})
}

func TestInvoiceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/v1/invoices", h.List)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Invoice{
		{ID: "inv-1", Amount: 1500, Status: entities.InvoiceStatusDraft},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "inv-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}
