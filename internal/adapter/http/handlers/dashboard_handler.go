package handlers

import (
	"net/http"

	response "solosync/internal/adapter/http/dto/response"
	"solosync/internal/usecase"
	"solosync/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read side of the dashboard: clients, the raw
// message log, and the stats bar.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *DashboardHandler) ListCommunications(c *gin.Context) {
	comms, err := h.usecase.ListCommunications(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCommunications(comms))
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(summary))
}
