package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mirzakf/laundromart/internal/domain/errors"
	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/server/http/dto"
)

// LaundryHandler manages laundry-related endpoints.
type LaundryHandler struct {
	facade LaundryFacade
}

// NewLaundryHandler constructs LaundryHandler.
func NewLaundryHandler(facade LaundryFacade) *LaundryHandler {
	return &LaundryHandler{facade: facade}
}

// List handles GET /api/laundries.
func (h *LaundryHandler) List(c *gin.Context) {
	laundries, err := h.facade.Laundries(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: toLaundryResponses(laundries)})
}

// ListByUser handles GET /api/laundries/user/:id.
func (h *LaundryHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	laundries, err := h.facade.LaundriesByUser(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(laundries) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "not found", Data: []dto.LaundryResponse{}})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: toLaundryResponses(laundries)})
}

// Claim handles POST /api/laundries/claim.
func (h *LaundryHandler) Claim(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	laundry, err := h.facade.ClaimLaundry(c.Request.Context(), req.ID, req.ClaimCode, userID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "not found"})
		case errors.Is(err, domainErrors.ErrAlreadyClaimed):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Laundry has been claimed"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "can not be updated"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: toLaundryResponse(*laundry)})
}

func toLaundryResponses(laundries []model.LaundryDetail) []dto.LaundryResponse {
	response := make([]dto.LaundryResponse, 0, len(laundries))
	for _, l := range laundries {
		response = append(response, toLaundryResponse(l))
	}
	return response
}

func toLaundryResponse(laundry model.LaundryDetail) dto.LaundryResponse {
	resp := dto.LaundryResponse{
		ID:              laundry.ID,
		UserID:          laundry.UserID,
		ShopID:          laundry.ShopID,
		Weight:          laundry.Weight,
		WithPickup:      laundry.WithPickup,
		WithDelivery:    laundry.WithDelivery,
		PickupAddress:   laundry.PickupAddress,
		DeliveryAddress: laundry.DeliveryAddress,
		Total:           laundry.Total,
		Description:     laundry.Description,
		Status:          laundry.Status,
		CreatedAt:       laundry.CreatedAt,
		UpdatedAt:       laundry.UpdatedAt,
		Shop:            toShopResponse(laundry.Shop),
	}
	if laundry.User != nil {
		user := toUserResponse(*laundry.User)
		resp.User = &user
	}
	return resp
}
