package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"solosync/internal/adapter/http/handlers/mocks"
	"solosync/internal/domain/entities"
	"solosync/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/summary", h.GetSummary)

		uc.EXPECT().GetSummary(gomock.Any()).Return(usecase.Summary{
			PendingAmount: 2200,
			OpenProjects:  3,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["pending_amount"] != float64(2200) {
			t.Fatalf("unexpected pending amount: %v", body)
		}
		if body["open_projects"] != float64(3) {
			t.Fatalf("unexpected open projects: %v", body)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/summary", h.GetSummary)

		uc.EXPECT().GetSummary(gomock.Any()).Return(usecase.Summary{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	r := gin.New()
	r.GET("/v1/clients", h.ListClients)

	uc.EXPECT().ListClients(gomock.Any()).Return([]entities.Client{
		{ID: "client-1", Name: "Alpha Corp"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["name"] != "Alpha Corp" {
		t.Fatalf("unexpected body: %v", body)
	}
}
