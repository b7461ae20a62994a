package impl

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	shopRepo  *mockRepo.MockShopRepository
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		ShopRepo:  shopRepo,
		UserRepo:  userRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	service.(*orderService).now = fixedClock

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func eventOfType(eventType service.OrderEventType) any {
	return mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Type == eventType })
}

func TestOrderService_CreateOrder_TotalFromSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		items     []entity.OrderItem
		wantTotal float64
	}{
		{
			name: "whole cents",
			items: []entity.OrderItem{
				{ProductID: uuid.New(), ProductName: "Coffee", Quantity: 3, Price: 0.1},
				{ProductID: uuid.New(), ProductName: "Cake", Quantity: 2, Price: 4.35},
			},
			wantTotal: 9.0,
		},
		{
			name: "sub-cent prices are not rounded",
			items: []entity.OrderItem{
				{ProductID: uuid.New(), ProductName: "Screw", Quantity: 3, Price: 0.333},
				{ProductID: uuid.New(), ProductName: "Washer", Quantity: 1, Price: 0.004},
			},
			wantTotal: 1.003,
		},
		{
			name: "snapshot values are taken as submitted",
			items: []entity.OrderItem{
				{ProductID: uuid.New(), ProductName: "Sample", Quantity: 0, Price: 5},
				{ProductID: uuid.New(), ProductName: "Voucher", Quantity: 2, Price: -1.5},
			},
			wantTotal: -3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
			customer := newPrincipal(entity.RoleCustomer)
			shopID := uuid.New()
			input := &usecase.CreateOrderInput{
				ShopID:           shopID,
				Items:            tt.items,
				DeliveryAddress:  "2 Side St",
				DeliveryLocation: entity.Location{Latitude: 1, Longitude: 1},
			}

			fx.shopRepo.On("FindByID", ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
			fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			fx.publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
				return e.Type == service.OrderEventCreated && e.RequestID == "req-1" && e.Status == "pending"
			})).Return(nil)

			order, err := fx.service.CreateOrder(ctx, customer, input)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, order.TotalAmount, 1e-9)
			assert.Len(t, order.Items, len(tt.items))
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Nil(t, order.DeliveryAgentID)
			assert.Equal(t, customer.UserID, order.CustomerID)
			assert.Equal(t, fixedNow, order.CreatedAt)
			assert.Equal(t, fixedNow, order.UpdatedAt)
		})
	}
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)

	shopID := uuid.New()
	fx.shopRepo.On("FindByID", mock.Anything, shopID).Return(&entity.Shop{ID: shopID}, nil)
	fx.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.CreateOrder(context.Background(), newPrincipal(entity.RoleCustomer), &usecase.CreateOrderInput{
		ShopID: shopID,
		Items:  []entity.OrderItem{{ProductID: uuid.New(), Quantity: 1, Price: 1}},
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_CreateOrder_Errors(t *testing.T) {
	shopID := uuid.New()
	item := entity.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 1}

	tests := []struct {
		name      string
		principal entity.Principal
		items     []entity.OrderItem
		setup     func(fx orderServiceFixtures)
		wantErr   error
	}{
		{
			name:      "shop owner cannot order",
			principal: newPrincipal(entity.RoleShopOwner),
			items:     []entity.OrderItem{item},
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "empty items",
			principal: newPrincipal(entity.RoleCustomer),
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "missing shop",
			principal: newPrincipal(entity.RoleCustomer),
			items:     []entity.OrderItem{item},
			setup: func(fx orderServiceFixtures) {
				fx.shopRepo.On("FindByID", mock.Anything, shopID).Return(nil, repository.ErrShopNotFound)
			},
			wantErr: domainerrors.ErrShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.CreateOrder(context.Background(), tt.principal, &usecase.CreateOrderInput{
				ShopID: shopID,
				Items:  tt.items,
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_ListOrders_Scopes(t *testing.T) {
	t.Run("customer sees own", func(t *testing.T) {
		fx := createTestOrderService(t)
		customer := newPrincipal(entity.RoleCustomer)
		fx.orderRepo.On("List", mock.Anything, entity.OrderFilter{CustomerID: &customer.UserID}).Return([]*entity.Order{}, nil)

		_, err := fx.service.ListOrders(context.Background(), customer)

		require.NoError(t, err)
	})

	t.Run("shop owner sees owned shops", func(t *testing.T) {
		fx := createTestOrderService(t)
		owner := newPrincipal(entity.RoleShopOwner)
		shops := []*entity.Shop{{ID: uuid.New()}, {ID: uuid.New()}}
		fx.shopRepo.On("ListByOwner", mock.Anything, owner.UserID).Return(shops, nil)
		fx.orderRepo.On("List", mock.Anything, entity.OrderFilter{ShopIDs: []uuid.UUID{shops[0].ID, shops[1].ID}}).Return([]*entity.Order{}, nil)

		_, err := fx.service.ListOrders(context.Background(), owner)

		require.NoError(t, err)
	})

	t.Run("shop owner without shops", func(t *testing.T) {
		fx := createTestOrderService(t)
		owner := newPrincipal(entity.RoleShopOwner)
		fx.shopRepo.On("ListByOwner", mock.Anything, owner.UserID).Return([]*entity.Shop{}, nil)
		fx.orderRepo.On("List", mock.Anything, mock.MatchedBy(func(f entity.OrderFilter) bool {
			return f.ShopIDs != nil && len(f.ShopIDs) == 0
		})).Return([]*entity.Order{}, nil)

		orders, err := fx.service.ListOrders(context.Background(), owner)

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("delivery agent sees assigned", func(t *testing.T) {
		fx := createTestOrderService(t)
		agent := newPrincipal(entity.RoleDeliveryAgent)
		fx.orderRepo.On("List", mock.Anything, entity.OrderFilter{DeliveryAgentID: &agent.UserID}).Return([]*entity.Order{}, nil)

		_, err := fx.service.ListOrders(context.Background(), agent)

		require.NoError(t, err)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := newPrincipal(entity.RoleCustomer)
	order := &entity.Order{ID: uuid.New(), CustomerID: owner.UserID, ShopID: uuid.New()}

	tests := []struct {
		name      string
		principal entity.Principal
		wantErr   error
	}{
		{name: "own order", principal: owner},
		{name: "other customer", principal: newPrincipal(entity.RoleCustomer), wantErr: domainerrors.ErrForbidden},
		{name: "shop owner", principal: newPrincipal(entity.RoleShopOwner)},
		{name: "delivery agent", principal: newPrincipal(entity.RoleDeliveryAgent)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

			got, err := fx.service.GetOrder(context.Background(), tt.principal, order.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}

	t.Run("missing", func(t *testing.T) {
		fx := createTestOrderService(t)
		id := uuid.New()
		fx.orderRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.GetOrder(context.Background(), owner, id)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	agent := newPrincipal(entity.RoleDeliveryAgent)

	t.Run("assigned agent", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusAssigned, DeliveryAgentID: &agent.UserID}
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		fx.orderRepo.On("UpdateStatus", mock.Anything, order.ID, entity.OrderStatusPickedUp, fixedNow).Return(nil)
		fx.publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventStatusChanged)).Return(nil)

		updated, err := fx.service.UpdateStatus(context.Background(), agent, order.ID, entity.OrderStatusPickedUp)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPickedUp, updated.Status)
		assert.Equal(t, fixedNow, updated.UpdatedAt)
	})

	t.Run("other agent", func(t *testing.T) {
		fx := createTestOrderService(t)
		otherAgent := uuid.New()
		order := &entity.Order{ID: uuid.New(), DeliveryAgentID: &otherAgent}
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateStatus(context.Background(), agent, order.ID, entity.OrderStatusDelivered)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unassigned order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New()}
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateStatus(context.Background(), agent, order.ID, entity.OrderStatusDelivered)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("free-form status", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New()}
		status := entity.OrderStatus("out_for_delivery")
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		fx.orderRepo.On("UpdateStatus", mock.Anything, order.ID, status, fixedNow).Return(nil)
		fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

		updated, err := fx.service.UpdateStatus(context.Background(), newPrincipal(entity.RoleShopOwner), order.ID, status)

		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	})

	t.Run("empty status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(context.Background(), agent, uuid.New(), "")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestOrderService_AssignDeliveryAgent(t *testing.T) {
	owner := newPrincipal(entity.RoleShopOwner)
	shop := &entity.Shop{ID: uuid.New(), OwnerID: owner.UserID}

	t.Run("assigns agent", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), ShopID: shop.ID, Status: entity.OrderStatusPending}
		agent := &entity.User{ID: uuid.New(), Role: entity.RoleDeliveryAgent}
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		fx.shopRepo.On("FindByID", mock.Anything, shop.ID).Return(shop, nil)
		fx.userRepo.On("FindByID", mock.Anything, agent.ID).Return(agent, nil)
		fx.orderRepo.On("AssignDeliveryAgent", mock.Anything, order.ID, agent.ID, fixedNow).Return(nil)
		fx.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventAssigned && e.DeliveryAgentID == agent.ID.String()
		})).Return(nil)

		updated, err := fx.service.AssignDeliveryAgent(context.Background(), owner, order.ID, agent.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusAssigned, updated.Status)
		require.NotNil(t, updated.DeliveryAgentID)
		assert.Equal(t, agent.ID, *updated.DeliveryAgentID)
	})

	t.Run("target is not a delivery agent", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), ShopID: shop.ID}
		customer := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		fx.shopRepo.On("FindByID", mock.Anything, shop.ID).Return(shop, nil)
		fx.userRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		_, err := fx.service.AssignDeliveryAgent(context.Background(), owner, order.ID, customer.ID)

		assert.ErrorIs(t, err, domainerrors.ErrDeliveryAgentNotFound)
	})

	t.Run("unknown agent", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), ShopID: shop.ID}
		missing := uuid.New()
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		fx.shopRepo.On("FindByID", mock.Anything, shop.ID).Return(shop, nil)
		fx.userRepo.On("FindByID", mock.Anything, missing).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.AssignDeliveryAgent(context.Background(), owner, order.ID, missing)

		assert.ErrorIs(t, err, domainerrors.ErrDeliveryAgentNotFound)
	})

	t.Run("another owner's order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), ShopID: shop.ID}
		fx.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		fx.shopRepo.On("FindByID", mock.Anything, shop.ID).Return(shop, nil)

		_, err := fx.service.AssignDeliveryAgent(context.Background(), newPrincipal(entity.RoleShopOwner), order.ID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("customer", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.AssignDeliveryAgent(context.Background(), newPrincipal(entity.RoleCustomer), uuid.New(), uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

// memoryOrderRepository keeps orders in memory for workflow tests.
type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[uuid.UUID]entity.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[uuid.UUID]entity.Order)}
}

func (r *memoryOrderRepository) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order

	return nil
}

func (r *memoryOrderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}

func (r *memoryOrderRepository) List(_ context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, order := range r.orders {
		if filter.CustomerID != nil && order.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ShopIDs != nil && !slices.Contains(filter.ShopIDs, order.ShopID) {
			continue
		}
		if filter.DeliveryAgentID != nil && !order.AssignedTo(*filter.DeliveryAgentID) {
			continue
		}
		out = append(out, &order)
	}

	return out, nil
}

func (r *memoryOrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	r.orders[id] = order

	return nil
}

func (r *memoryOrderRepository) AssignDeliveryAgent(_ context.Context, id, agentID uuid.UUID, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.DeliveryAgentID = &agentID
	order.Status = entity.OrderStatusAssigned
	order.UpdatedAt = updatedAt
	r.orders[id] = order

	return nil
}

func TestOrderService_Workflow_EndToEnd(t *testing.T) {
	orders := newMemoryOrderRepository()
	shopRepo := mockRepo.NewMockShopRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orders,
		ShopRepo:  shopRepo,
		UserRepo:  userRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	owner := newPrincipal(entity.RoleShopOwner)
	customer := newPrincipal(entity.RoleCustomer)
	agent := newPrincipal(entity.RoleDeliveryAgent)
	shop := &entity.Shop{ID: uuid.New(), OwnerID: owner.UserID, IsActive: true}

	shopRepo.On("FindByID", mock.Anything, shop.ID).Return(shop, nil)
	shopRepo.On("ListByOwner", mock.Anything, owner.UserID).Return([]*entity.Shop{shop}, nil)
	userRepo.On("FindByID", mock.Anything, agent.UserID).Return(&entity.User{ID: agent.UserID, Role: entity.RoleDeliveryAgent}, nil)
	publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventCreated)).Return(nil).Once()
	publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventAssigned)).Return(nil).Once()
	publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventStatusChanged)).Return(nil).Once()

	created, err := svc.CreateOrder(ctx, customer, &usecase.CreateOrderInput{
		ShopID:          shop.ID,
		Items:           []entity.OrderItem{{ProductID: uuid.New(), ProductName: "Soup", Quantity: 2, Price: 5.5}},
		DeliveryAddress: "3 Elm St",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, created.Status)
	assert.InDelta(t, 11.0, created.TotalAmount, 1e-9)

	ownerOrders, err := svc.ListOrders(ctx, owner)
	require.NoError(t, err)
	require.Len(t, ownerOrders, 1)
	assert.Equal(t, created.ID, ownerOrders[0].ID)

	_, err = svc.AssignDeliveryAgent(ctx, owner, created.ID, agent.UserID)
	require.NoError(t, err)

	agentOrders, err := svc.ListOrders(ctx, agent)
	require.NoError(t, err)
	require.Len(t, agentOrders, 1)

	_, err = svc.UpdateStatus(ctx, agent, created.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)

	final, err := svc.GetOrder(ctx, customer, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, final.Status)
	require.NotNil(t, final.DeliveryAgentID)
	assert.Equal(t, agent.UserID, *final.DeliveryAgentID)
	assert.InDelta(t, 11.0, final.TotalAmount, 1e-9)
}
