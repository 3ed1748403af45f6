package routes

import (
	"solosync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects       = "/projects"
	PathInvoices       = "/invoices"
	PathClients        = "/clients"
	PathCommunications = "/communications"
	PathSummary        = "/summary"
)

func addDashboardRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	invoiceHandler *handlers.InvoiceHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.List)
		projects.PATCH("/:id/status", projectHandler.UpdateStatus)
		projects.GET("/:id/invoices", invoiceHandler.ListByProject)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.List)
		invoices.PATCH("/:id/send", invoiceHandler.MarkSent)
		invoices.PATCH("/:id/pay", invoiceHandler.MarkPaid)
	}

	rg.GET(PathClients, dashboardHandler.ListClients)
	rg.GET(PathCommunications, dashboardHandler.ListCommunications)
	rg.GET(PathSummary, dashboardHandler.GetSummary)
}
