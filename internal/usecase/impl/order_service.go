package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	shopRepo  repository.ShopRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	ShopRepo  repository.ShopRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		shopRepo:  params.ShopRepo,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder places a pending order priced from the submitted item snapshot.
func (s *orderService) CreateOrder(ctx context.Context, principal entity.Principal, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := policy.Authorize(principal, policy.ActionCreateOrder); err != nil {
		return nil, err
	}
	if err := validateOrderItems(input.Items); err != nil {
		return nil, err
	}

	if _, err := s.shopRepo.FindByID(ctx, input.ShopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	now := s.now().UTC()
	order := &entity.Order{
		ID:               uuid.New(),
		CustomerID:       principal.UserID,
		ShopID:           input.ShopID,
		Items:            input.Items,
		TotalAmount:      entity.OrderTotal(input.Items),
		DeliveryAddress:  input.DeliveryAddress,
		DeliveryLocation: input.DeliveryLocation,
		Status:           entity.OrderStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	s.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("shopID", order.ShopID.String()),
		slog.Float64("total", order.TotalAmount),
	)
	s.publish(ctx, service.OrderEventCreated, order)

	return order, nil
}

// ListOrders returns the orders visible to the caller's role, newest first.
func (s *orderService) ListOrders(ctx context.Context, principal entity.Principal) ([]*entity.Order, error) {
	if err := policy.Authorize(principal, policy.ActionListOrders); err != nil {
		return nil, err
	}

	var ownedShopIDs []uuid.UUID
	if principal.Is(entity.RoleShopOwner) {
		shops, err := s.shopRepo.ListByOwner(ctx, principal.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list owned shops")
		}

		ownedShopIDs = make([]uuid.UUID, 0, len(shops))
		for _, shop := range shops {
			ownedShopIDs = append(ownedShopIDs, shop.ID)
		}
	}

	orders, err := s.orderRepo.List(ctx, policy.OrderScope(principal, ownedShopIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order when the caller may see it.
func (s *orderService) GetOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	if err := policy.Authorize(principal, policy.ActionViewOrder); err != nil {
		return nil, err
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewOrder(principal, order) {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another customer")
	}

	return order, nil
}

// UpdateStatus moves the order to any non-empty status.
func (s *orderService) UpdateStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := policy.Authorize(principal, policy.ActionUpdateOrderStatus); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status is required")
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateOrderStatus(principal, order) {
		return nil, domainerrors.ErrForbidden.WrapMessage("order is assigned to another delivery agent")
	}

	now := s.now().UTC()
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, status, now); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = status
	order.UpdatedAt = now

	s.log(ctx).Info("Order status updated",
		slog.String("orderID", order.ID.String()),
		slog.String("status", string(status)),
	)
	s.publish(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// AssignDeliveryAgent hands the order to a delivery agent and marks it assigned.
func (s *orderService) AssignDeliveryAgent(ctx context.Context, principal entity.Principal, orderID, agentID uuid.UUID) (*entity.Order, error) {
	if err := policy.Authorize(principal, policy.ActionAssignDeliveryAgent); err != nil {
		return nil, err
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.FindByID(ctx, order.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrForbidden
		}

		return nil, errors.Wrap(err, "failed to find order shop")
	}

	if err := policy.AuthorizeShopOwnership(principal, shop); err != nil {
		return nil, err
	}

	agent, err := s.userRepo.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrDeliveryAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery agent")
	}
	if agent.Role != entity.RoleDeliveryAgent {
		return nil, domainerrors.ErrDeliveryAgentNotFound
	}

	now := s.now().UTC()
	if err := s.orderRepo.AssignDeliveryAgent(ctx, order.ID, agent.ID, now); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to assign delivery agent")
	}

	order.DeliveryAgentID = &agent.ID
	order.Status = entity.OrderStatusAssigned
	order.UpdatedAt = now

	s.log(ctx).Info("Delivery agent assigned",
		slog.String("orderID", order.ID.String()),
		slog.String("agentID", agent.ID.String()),
	)
	s.publish(ctx, service.OrderEventAssigned, order)

	return order, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// publish emits the order event. The workflow change is already committed, so
// failures are only logged.
func (s *orderService) publish(ctx context.Context, eventType service.OrderEventType, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID.String(),
		ShopID:      order.ShopID.String(),
		CustomerID:  order.CustomerID.String(),
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount,
		OccurredAt:  order.UpdatedAt,
	}
	if order.DeliveryAgentID != nil {
		event.DeliveryAgentID = order.DeliveryAgentID.String()
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", order.ID.String()),
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}

func validateOrderItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}

	return nil
}
