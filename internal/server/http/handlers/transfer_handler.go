package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

const csvContentType = "text/csv; charset=utf-8"

// TransferHandler exposes CSV import and export.
type TransferHandler struct {
	facade TransferFacade
}

// NewTransferHandler constructs TransferHandler.
func NewTransferHandler(facade TransferFacade) *TransferHandler {
	return &TransferHandler{facade: facade}
}

// ExportClients handles GET /api/export/clients.
func (h *TransferHandler) ExportClients(c *gin.Context) {
	h.export(c, "clients.csv", h.facade.ExportClients)
}

// ExportOrders handles GET /api/export/orders.
func (h *TransferHandler) ExportOrders(c *gin.Context) {
	h.export(c, "orders.csv", h.facade.ExportOrders)
}

// ImportClients handles POST /api/import/clients.
func (h *TransferHandler) ImportClients(c *gin.Context) {
	h.importCSV(c, h.facade.ImportClients)
}

// ImportOrders handles POST /api/import/orders.
func (h *TransferHandler) ImportOrders(c *gin.Context) {
	h.importCSV(c, h.facade.ImportOrders)
}

func (h *TransferHandler) export(c *gin.Context, filename string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(c.Request.Context(), &buf); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

func (h *TransferHandler) importCSV(c *gin.Context, read func(context.Context, io.Reader) (model.ImportResult, error)) {
	result, err := read(c.Request.Context(), c.Request.Body)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMalformedCSV) {
			c.JSON(http.StatusBadRequest, errorBody(err))
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}
