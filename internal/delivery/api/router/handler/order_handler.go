package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order workflow handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one line of an order with the price the customer saw
type OrderItemRequest struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	ProductName string    `json:"product_name" validate:"required"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ShopID           uuid.UUID          `json:"shop_id" validate:"required"`
	Items            []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress  string             `json:"delivery_address" validate:"required"`
	DeliveryLocation LocationRequest    `json:"delivery_location"`
}

// CreateOrder handles order placement
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), principal, &usecase.CreateOrderInput{
		ShopID:           req.ShopID,
		Items:            items,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryLocation: req.DeliveryLocation.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders returns the caller's role-scoped orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), principal, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus sets the order status from ?status=
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	status := c.QueryParam("status")
	if status == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "status is required")
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), principal, orderID, entity.OrderStatus(status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// AssignDeliveryAgent assigns the agent in ?agent_id= to the order
func (h *OrderHandler) AssignDeliveryAgent(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	agentID, err := uuid.Parse(c.QueryParam("agent_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery agent ID")
	}

	order, err := h.orderUC.AssignDeliveryAgent(c.Request().Context(), principal, orderID, agentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
