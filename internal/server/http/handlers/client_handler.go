package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

// ClientHandler manages client endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	client, err := h.facade.RegisterClient(c.Request.Context(), req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidEmail), errors.Is(err, domainErrors.ErrInvalidPhone):
			c.JSON(http.StatusUnprocessableEntity, errorBody(err))
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(*client))
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.facade.Clients(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(clients) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		response = append(response, toClientResponse(cl))
	}
	c.JSON(http.StatusOK, response)
}

// Summary handles GET /api/clients/:id/summary.
func (h *ClientHandler) Summary(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	summary, err := h.facade.ClientSummary(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.ClientSummaryResponse{
		Client:     toClientResponse(summary.Client),
		OrderCount: summary.OrderCount,
		TotalSpent: summary.TotalSpent,
	})
}

func toClientResponse(client model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:      client.ID,
		Name:    client.Name,
		Email:   client.Email,
		Phone:   client.Phone,
		Address: client.Address,
	}
}
