package handlers

import (
	"errors"
	"net/http"

	request "solosync/internal/adapter/http/dto/request"
	response "solosync/internal/adapter/http/dto/response"
	"solosync/internal/usecase"
	"solosync/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)

// IntakeHandler handles the one endpoint that starts a workflow run.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// Sync accepts a raw client message and runs the intake workflow. The
// response is a bare acknowledgment; created records arrive on the
// sync-complete broadcast.
func (h *IntakeHandler) Sync(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	rawText := payload.ResolveRawText()
	if rawText == "" {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	if err := h.usecase.Sync(c.Request.Context(), rawText, payload.ResolvePlatform()); err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SyncedAck())
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyRawText):
		return pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainErrorSimple("EXTRACTION_FAILED", "No structured data could be derived", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidBudget):
		return pkg.NewDomainErrorSimple("INVALID_EXTRACTED_DATA", "Extracted data failed validation", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Workflow sync failed", err, http.StatusInternalServerError)
	}
}
