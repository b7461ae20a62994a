package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(shopUC usecase.ShopUsecase) *ShopHandler {
	return &ShopHandler{shopUC: shopUC}
}

// CreateShopRequest represents the request body for opening a shop
type CreateShopRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Location    LocationRequest `json:"location"`
	Address     string          `json:"address" validate:"required"`
	Phone       string          `json:"phone" validate:"required"`
}

// CreateShop handles shop creation
func (h *ShopHandler) CreateShop(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), principal, &usecase.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location.toEntity(),
		Address:     req.Address,
		Phone:       req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// ListShops returns active shops. With lat and lng the nearest come first.
func (h *ShopHandler) ListShops(c echo.Context) error {
	var near *entity.Location
	if c.QueryParam("lat") != "" && c.QueryParam("lng") != "" {
		var location entity.Location
		err := echo.QueryParamsBinder(c).
			Float64("lat", &location.Latitude).
			Float64("lng", &location.Longitude).
			BindError()
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "lat and lng must be numbers")
		}
		near = &location
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), near)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// GetShop returns one shop
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ListMyShops returns the caller's shops
func (h *ShopHandler) ListMyShops(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	shops, err := h.shopUC.ListMyShops(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}
