// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{
		db: db,
	}
}

// ScanDishes returns dishes matching pred in insertion order.
func (repo *dishRepository) ScanDishes(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.Dish, error) {
	query, err := scanQuery(repo.db.WithContext(ctx).Model(&model.DishModel{}), dishColumns, insertionOrder, pred, limit)
	if err != nil {
		return nil, storeError("scan", collectionDishes, err)
	}

	var dishModels []*model.DishModel
	if err := query.Find(&dishModels).Error; err != nil {
		return nil, storeError("scan", collectionDishes, err)
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

// CreateDish persists a new dish.
func (repo *dishRepository) CreateDish(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		return storeError("insert", collectionDishes, err)
	}

	// Update the entity with generated values
	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt

	return nil
}

// DeleteDish removes a dish by its ID.
func (repo *dishRepository) DeleteDish(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DishModel{}).Error; err != nil {
		return storeError("delete", collectionDishes, err)
	}

	return nil
}

// DistinctPlaces returns every non-empty place tag, sorted.
func (repo *dishRepository) DistinctPlaces(ctx context.Context) ([]string, error) {
	var places []string
	if err := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("place IS NOT NULL AND place <> ''").
		Distinct("place").
		Order("place ASC").
		Pluck("place", &places).Error; err != nil {
		return nil, storeError("distinct", collectionDishes, err)
	}

	return places, nil
}

// --- Mapper Functions ---

// toDishDomain converts a GORM DishModel to a domain Dish entity.
// Unknown occasion values stored by other writers are dropped rather than failing the scan.
func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	dish := &entity.Dish{
		ID:               data.ID,
		OwnerID:          data.UserID,
		Name:             data.Name,
		RestaurantName:   data.Restaurant,
		Place:            data.Place,
		AtmosphereRating: data.AtmosphereRating,
		DishRating:       data.Rating,
		Notes:            data.Notes,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
	}
	if data.Occasion != nil {
		if occasion, err := entity.ParseOccasion(*data.Occasion); err == nil {
			dish.Occasion = &occasion
		}
	}

	return dish
}

// fromDishDomain converts a domain Dish entity to a GORM DishModel.
func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	dishM := &model.DishModel{
		ID:               data.ID,
		UserID:           data.OwnerID,
		Name:             data.Name,
		Restaurant:       data.RestaurantName,
		Place:            data.Place,
		AtmosphereRating: data.AtmosphereRating,
		Rating:           data.DishRating,
		Notes:            data.Notes,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
	}
	if data.Occasion != nil {
		occasion := data.Occasion.String()
		dishM.Occasion = &occasion
	}

	return dishM
}
