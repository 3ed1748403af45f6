package handlers

import (
	"context"
	"errors"
	"net/http"

	response "solosync/internal/adapter/http/dto/response"
	"solosync/internal/domain/entities"
	"solosync/internal/usecase"
	"solosync/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves invoice listings and lifecycle transitions.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) ListByProject(c *gin.Context) {
	invoices, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// MarkSent moves a draft invoice to Sent and its project to Invoiced.
func (h *InvoiceHandler) MarkSent(c *gin.Context) {
	h.patchStatus(c, h.usecase.MarkSent)
}

// MarkPaid settles an invoice and moves its project to Paid.
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.patchStatus(c, h.usecase.MarkPaid)
}

func (h *InvoiceHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Invoice, error),
) {
	invoice, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceTransition):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_TRANSITION", "Invoice status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
