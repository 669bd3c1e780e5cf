package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ordertrack/internal/codec"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders. An order for an unknown client is
// dropped and answered with 204.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	place := model.PlaceOrder{
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Products:   make([]model.ProductInput, 0, len(req.Products)),
	}
	for _, p := range req.Products {
		place.Products = append(place.Products, model.ProductInput{Name: p.Name, Price: *p.Price, Category: p.Category})
	}
	if req.OrderDate != "" {
		at, err := time.ParseInLocation(model.DateLayout, req.OrderDate, time.Local)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, errorBody(domainErrors.ErrInvalidDate))
			return
		}
		place.OrderedAt = at
	}

	order, created, err := h.facade.PlaceOrder(c.Request.Context(), place)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidProduct), errors.Is(err, domainErrors.ErrInvalidPrice):
			c.JSON(http.StatusUnprocessableEntity, errorBody(err))
		case errors.Is(err, domainErrors.ErrEmptyOrder), errors.Is(err, domainErrors.ErrClientRequired):
			c.JSON(http.StatusBadRequest, errorBody(err))
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	if !created {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders with optional sort=date|total.
func (h *OrderHandler) List(c *gin.Context) {
	sortBy, err := model.ParseRecordSort(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	records, err := h.facade.Orders(c.Request.Context(), sortBy)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(records) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderRecordResponse, 0, len(records))
	for _, r := range records {
		response = append(response, dto.OrderRecordResponse{
			ID:         r.ID,
			ClientName: r.ClientName,
			OrderDate:  r.OrderDate,
			Products:   r.Products,
			Total:      codec.Total(r.Products),
		})
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	products := make([]dto.ProductResponse, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, dto.ProductResponse{Name: p.Name, Price: p.Price, Category: p.CategoryOrDefault()})
	}
	return dto.OrderResponse{
		ID:         order.ID,
		ClientID:   order.ClientID,
		ClientName: order.ClientName,
		OrderDate:  order.OrderedAt.Format(model.DateLayout),
		Products:   products,
		Total:      order.TotalPrice(),
	}
}
