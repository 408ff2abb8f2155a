package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error)
	GetByID(ctx context.Context, tripID string) (*db_models.Trip, error)
	Delete(ctx context.Context, tripID string) error

	// ReplaceItinerary swaps a trip's materialized day/activity rows for the
	// given set inside one transaction.
	ReplaceItinerary(ctx context.Context, tripID uuid.UUID, days []db_models.TripDay) error
	UpdateActivityCompleted(ctx context.Context, activityID uuid.UUID, completed bool) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetByID(ctx context.Context, tripID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_days.day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_activities.position ASC")
		}).
		Where("id = ?", tripID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).Where("id = ?", tripID).Delete(&db_models.Trip{}).Error
}

func (r *tripRepository) ReplaceItinerary(ctx context.Context, tripID uuid.UUID, days []db_models.TripDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dayIDs []uuid.UUID
		if err := tx.Model(&db_models.TripDay{}).
			Where("trip_id = ?", tripID).
			Pluck("id", &dayIDs).Error; err != nil {
			return err
		}
		if len(dayIDs) > 0 {
			if err := tx.Where("trip_day_id IN ?", dayIDs).
				Delete(&db_models.TripActivity{}).Error; err != nil {
				return err
			}
			if err := tx.Where("trip_id = ?", tripID).
				Delete(&db_models.TripDay{}).Error; err != nil {
				return err
			}
		}

		for i := range days {
			days[i].TripID = tripID
			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}
		}

		return tx.Model(&db_models.Trip{}).
			Where("id = ?", tripID).
			Update("day_count", len(days)).Error
	})
}

func (r *tripRepository) UpdateActivityCompleted(ctx context.Context, activityID uuid.UUID, completed bool) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.TripActivity{}).
		Where("id = ?", activityID).
		Update("completed", completed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
