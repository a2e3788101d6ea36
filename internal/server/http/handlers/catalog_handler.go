package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/server/http/dto"
)

// CatalogHandler serves shop and promo listings.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Shops handles GET /api/shops.
func (h *CatalogHandler) Shops(c *gin.Context) {
	shops, err := h.facade.Shops(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: toShopResponses(shops)})
}

// TopShops handles GET /api/shops/top.
func (h *CatalogHandler) TopShops(c *gin.Context) {
	shops, err := h.facade.TopShops(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(shops) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "not found", Data: []dto.ShopResponse{}})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: toShopResponses(shops)})
}

// Promos handles GET /api/promos.
func (h *CatalogHandler) Promos(c *gin.Context) {
	promos, err := h.facade.Promos(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: toPromoResponses(promos)})
}

// TopPromos handles GET /api/promos/top.
func (h *CatalogHandler) TopPromos(c *gin.Context) {
	promos, err := h.facade.TopPromos(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(promos) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "not found", Data: []dto.PromoResponse{}})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: toPromoResponses(promos)})
}

func toShopResponses(shops []model.Shop) []dto.ShopResponse {
	response := make([]dto.ShopResponse, 0, len(shops))
	for _, s := range shops {
		response = append(response, toShopResponse(s))
	}
	return response
}

func toShopResponse(shop model.Shop) dto.ShopResponse {
	return dto.ShopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Address:     shop.Address,
		Description: shop.Description,
		Rate:        shop.Rate,
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}

func toPromoResponses(promos []model.PromoDetail) []dto.PromoResponse {
	response := make([]dto.PromoResponse, 0, len(promos))
	for _, p := range promos {
		response = append(response, toPromoResponse(p))
	}
	return response
}

func toPromoResponse(promo model.PromoDetail) dto.PromoResponse {
	return dto.PromoResponse{
		ID:          promo.ID,
		ShopID:      promo.ShopID,
		Title:       promo.Title,
		Description: promo.Description,
		Discount:    promo.Discount,
		CreatedAt:   promo.CreatedAt,
		UpdatedAt:   promo.UpdatedAt,
		Shop:        toShopResponse(promo.Shop),
	}
}
