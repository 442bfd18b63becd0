package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcforge/backend/internal/domain"
	"github.com/pcforge/backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogService *usecase.CatalogService
	compareService *usecase.CompareService
	buildService   *usecase.BuildService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalogService *usecase.CatalogService,
	compareService *usecase.CompareService,
	buildService *usecase.BuildService,
) *Handler {
	return &Handler{
		catalogService: catalogService,
		compareService: compareService,
		buildService:   buildService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pcforge-backend",
		"version": "1.0.0",
	})
}

// searchRequest is the search_products tool-call payload
type searchRequest struct {
	Query   string               `json:"query"`
	Filters domain.SearchFilters `json:"filters"`
	Limit   int                  `json:"limit"`
}

// SearchProducts handles the search_products tool call
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.catalogService == nil {
		serviceNotConfigured(c)
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	products, err := h.catalogService.Search(c.Request.Context(), req.Query, req.Filters, req.Limit)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// GetProduct handles the get_product tool call. A miss is a soft 404 so
// the conversational layer can explain it; only store faults are 502s.
func (h *Handler) GetProduct(c *gin.Context) {
	if h.catalogService == nil {
		serviceNotConfigured(c)
		return
	}

	product, err := h.catalogService.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Product not found",
			})
			return
		}
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Product identifier is required",
			})
			return
		}
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// compareRequest is the compare_products tool-call payload
type compareRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// CompareProducts handles the compare_products tool call
func (h *Handler) CompareProducts(c *gin.Context) {
	if h.compareService == nil {
		serviceNotConfigured(c)
		return
	}

	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.compareService.Compare(c.Request.Context(), req.IDs)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   result.Items,
		"summary": result.Summary,
	})
}

// recommendRequest is the recommend_build tool-call payload
type recommendRequest struct {
	Budget decimal.Decimal `json:"budget"`
	Target string          `json:"target"`
}

// RecommendBuild handles the recommend_build tool call. Infeasible builds
// are 200s with ok:false; they are domain outcomes, not transport errors.
func (h *Handler) RecommendBuild(c *gin.Context) {
	if h.buildService == nil {
		serviceNotConfigured(c)
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.buildService.Recommend(c.Request.Context(), req.Budget, req.Target)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"build":   result,
	})
}

// upstreamError maps catalog store faults to a 502 without masking them
// as empty results
func upstreamError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func serviceNotConfigured(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"success": false,
		"error":   "Service not configured",
	})
}
