package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order and its items in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withItems(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching every set filter field, newest first.
// A non-nil but empty ShopIDs matches nothing.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	if filter.ShopIDs != nil && len(filter.ShopIDs) == 0 {
		return []*entity.Order{}, nil
	}

	query := repo.withItems(repo.db.WithContext(ctx))
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if len(filter.ShopIDs) > 0 {
		query = query.Where("shop_id IN ?", filter.ShopIDs)
	}
	if filter.DeliveryAgentID != nil {
		query = query.Where("delivery_agent_id = ?", *filter.DeliveryAgentID)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the status and updated_at.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"status":     status.String(),
		"updated_at": updatedAt,
	})
}

// AssignDeliveryAgent sets the agent and moves the order to assigned.
func (repo *orderRepository) AssignDeliveryAgent(ctx context.Context, id, agentID uuid.UUID, updatedAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"delivery_agent_id": agentID,
		"status":            entity.OrderStatusAssigned.String(),
		"updated_at":        updatedAt,
	})
}

func (repo *orderRepository) update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return &entity.Order{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		ShopID:           data.ShopID,
		Items:            items,
		TotalAmount:      data.TotalAmount,
		DeliveryAddress:  data.DeliveryAddress,
		DeliveryLocation: entity.Location{Latitude: data.DeliveryLat, Longitude: data.DeliveryLng},
		Status:           entity.OrderStatus(data.Status),
		DeliveryAgentID:  data.DeliveryAgentID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:     data.ID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		ShopID:          data.ShopID,
		TotalAmount:     data.TotalAmount,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryLat:     data.DeliveryLocation.Latitude,
		DeliveryLng:     data.DeliveryLocation.Longitude,
		Status:          data.Status.String(),
		DeliveryAgentID: data.DeliveryAgentID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Items:           items,
	}
}
