package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

// PlaceFilter narrows ListByAccount; nil fields mean no constraint.
type PlaceFilter struct {
	Favorite *bool
	Visited  *bool
}

type PlaceRepository interface {
	Upsert(ctx context.Context, place *db_models.SavedPlace) error
	ListByAccount(ctx context.Context, accountID string, filter PlaceFilter) ([]db_models.SavedPlace, error)
	GetByID(ctx context.Context, placeID string) (*db_models.SavedPlace, error)
	FindByProviderID(ctx context.Context, accountID, providerID string) (*db_models.SavedPlace, error)
	Update(ctx context.Context, place *db_models.SavedPlace) error
	Delete(ctx context.Context, placeID string) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Upsert(ctx context.Context, place *db_models.SavedPlace) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) ListByAccount(ctx context.Context, accountID string, filter PlaceFilter) ([]db_models.SavedPlace, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if filter.Favorite != nil {
		q = q.Where("favorite = ?", *filter.Favorite)
	}
	if filter.Visited != nil {
		q = q.Where("visited = ?", *filter.Visited)
	}

	var places []db_models.SavedPlace
	if err := q.Order("created_at DESC").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, placeID string) (*db_models.SavedPlace, error) {
	var place db_models.SavedPlace
	err := r.db.WithContext(ctx).Where("id = ?", placeID).First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) FindByProviderID(ctx context.Context, accountID, providerID string) (*db_models.SavedPlace, error) {
	var place db_models.SavedPlace
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND provider_id = ?", accountID, providerID).
		First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.SavedPlace) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) Delete(ctx context.Context, placeID string) error {
	return r.db.WithContext(ctx).Where("id = ?", placeID).Delete(&db_models.SavedPlace{}).Error
}
