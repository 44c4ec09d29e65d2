// internal/handlers/product.go
package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zensupply/backend/internal/services"
	"github.com/zensupply/backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	timeout        time.Duration
}

func NewProductHandler(catalogService *services.CatalogService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		timeout:        timeout,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		c.Error(err)
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.ItemsListResponse(c, products)
}
