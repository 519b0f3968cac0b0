package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dzoniops/booking-service/models"
)

// CatalogRepository reads rooms and properties and keeps property ratings.
type CatalogRepository interface {
	CreateProperty(ctx context.Context, property *models.Property) error
	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	// GetProperty loads the property together with its extras.
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	// RecordRating folds one more rating into the running mean in a single statement.
	RecordRating(ctx context.Context, propertyID int64, rating float64) error
	PropertiesOwnedBy(ctx context.Context, ownerID int64) ([]int64, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) CreateProperty(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *GormCatalogRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *GormCatalogRepository) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormCatalogRepository) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).Preload("Extras").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormCatalogRepository) RecordRating(ctx context.Context, propertyID int64, rating float64) error {
	res := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]any{
			"average_rating": gorm.Expr("(average_rating * rating_count + ?) / (rating_count + 1)", rating),
			"rating_count":   gorm.Expr("rating_count + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCatalogRepository) PropertiesOwnedBy(ctx context.Context, ownerID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("owned_by = ?", ownerID).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
