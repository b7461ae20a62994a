package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(shopM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt

	return nil
}

// FindByID retrieves a shop by id.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a shop with SELECT ... FOR UPDATE.
func (repo *shopRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *shopRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := db.Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// ListActive returns all active shops, oldest first.
func (repo *shopRepository) ListActive(ctx context.Context) ([]*entity.Shop, error) {
	return repo.list(repo.db.WithContext(ctx).Where("is_active = ?", true))
}

// ListByOwner returns every shop of the owner, active or not.
func (repo *shopRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	return repo.list(repo.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (repo *shopRepository) list(db *gorm.DB) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := db.Order("created_at ASC").Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// UpdateRating overwrites rating and total_reviews.
func (repo *shopRepository) UpdateRating(ctx context.Context, id uuid.UUID, summary entity.RatingSummary) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        summary.Average,
			"total_reviews": summary.Count,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shop rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		Location:     entity.Location{Latitude: data.Latitude, Longitude: data.Longitude},
		Address:      data.Address,
		Phone:        data.Phone,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		Latitude:     data.Location.Latitude,
		Longitude:    data.Location.Longitude,
		Address:      data.Address,
		Phone:        data.Phone,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}
