package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

const dayLayout = "2006-01-02"

// ReportHandler serves the aggregate reports.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// TopClients handles GET /api/reports/top-clients.
func (h *ReportHandler) TopClients(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	ranked, err := h.facade.TopClients(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toNameCounts(ranked))
}

// TopProducts handles GET /api/reports/top-products.
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	ranked, err := h.facade.TopProducts(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toNameCounts(ranked))
}

// OrdersOverTime handles GET /api/reports/orders-over-time.
func (h *ReportHandler) OrdersOverTime(c *gin.Context) {
	series, err := h.facade.OrdersOverTime(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toDateCounts(series))
}

// ClientGraph handles GET /api/reports/client-graph.
func (h *ReportHandler) ClientGraph(c *gin.Context) {
	graph, err := h.facade.ClientGraph(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toGraph(graph))
}

// Summary handles GET /api/reports/summary.
func (h *ReportHandler) Summary(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	summary, err := h.facade.ReportSummary(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{
		TopClients:     toNameCounts(summary.TopClients),
		TopProducts:    toNameCounts(summary.TopProducts),
		OrdersOverTime: toDateCounts(summary.OrdersOverTime),
		ClientGraph:    toGraph(summary.ClientGraph),
	})
}

func toNameCounts(items []model.NameCount) []dto.NameCountResponse {
	result := make([]dto.NameCountResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.NameCountResponse{Name: it.Name, Count: it.Count})
	}
	return result
}

func toDateCounts(items []model.DateCount) []dto.DateCountResponse {
	result := make([]dto.DateCountResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.DateCountResponse{Date: it.Date.Format(dayLayout), Count: it.Count})
	}
	return result
}

func toGraph(g model.Graph) dto.GraphResponse {
	resp := dto.GraphResponse{
		Nodes: append([]string{}, g.Nodes...),
		Edges: make([]dto.EdgeResponse, 0, len(g.Edges)),
	}
	for _, e := range g.Edges {
		resp.Edges = append(resp.Edges, dto.EdgeResponse{A: e.A, B: e.B, Products: e.Products})
	}
	return resp
}
