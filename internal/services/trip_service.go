package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, accountID, tripID string) error
	SaveItinerary(ctx context.Context, accountID, tripID string, days []response_models.DayPlan) error
	SetActivityCompleted(ctx context.Context, accountID, tripID, activityID string, completed bool) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (t *TripService) CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	owner, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		AccountID: owner,
		Title:     request.Title,
		Location:  request.Location,
		StartDate: request.StartDate,
		DayCount:  request.DayCount,
		Interests: request.Interests,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		log.Printf("Error creating trip: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := tripResponse(trip)
	return &out, nil
}

func (t *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		log.Printf("Error listing trips: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, tripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.ownedTrip(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	detail := &response_models.TripDetailResponse{
		ID:        trip.ID.String(),
		Title:     trip.Title,
		Location:  trip.Location,
		StartDate: trip.StartDate,
		DayCount:  trip.DayCount,
		Interests: trip.Interests,
		Days:      make([]response_models.DayPlan, 0, len(trip.Days)),
	}

	for _, day := range trip.Days {
		plan := response_models.DayPlan{Date: day.Label}
		for _, act := range day.Activities {
			plan.Activities = append(plan.Activities, response_models.Activity{
				ID:                            act.ID.String(),
				Time:                          act.TimeLabel,
				Title:                         act.Title,
				Location:                      trip.Location,
				Address:                       act.Address,
				BusinessID:                    act.BusinessID,
				Rating:                        act.Rating,
				Price:                         act.Price,
				Categories:                    act.Categories,
				Completed:                     act.Completed,
				SlotType:                      act.SlotType,
				TravelTimeFromPreviousMinutes: act.TravelMinutes,
			})
		}
		detail.TotalActivities += len(plan.Activities)
		detail.Days = append(detail.Days, plan)
	}

	return detail, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, accountID, tripID string) error {
	if _, err := t.ownedTrip(ctx, accountID, tripID); err != nil {
		return err
	}

	if err := t.tripRepo.Delete(ctx, tripID); err != nil {
		log.Printf("Error deleting trip: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) SaveItinerary(ctx context.Context, accountID, tripID string, days []response_models.DayPlan) error {
	trip, err := t.ownedTrip(ctx, accountID, tripID)
	if err != nil {
		return err
	}

	rows := make([]db_models.TripDay, 0, len(days))
	for i, day := range days {
		row := db_models.TripDay{
			DayNumber: i + 1,
			Label:     day.Date,
		}
		for pos, act := range day.Activities {
			row.Activities = append(row.Activities, db_models.TripActivity{
				Position:      pos,
				SlotType:      act.SlotType,
				TimeLabel:     act.Time,
				Title:         act.Title,
				Address:       act.Address,
				BusinessID:    act.BusinessID,
				Rating:        act.Rating,
				Price:         act.Price,
				Categories:    act.Categories,
				Completed:     act.Completed,
				TravelMinutes: act.TravelTimeFromPreviousMinutes,
			})
		}
		rows = append(rows, row)
	}

	if err := t.tripRepo.ReplaceItinerary(ctx, trip.ID, rows); err != nil {
		log.Printf("Error saving itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) SetActivityCompleted(ctx context.Context, accountID, tripID, activityID string, completed bool) error {
	if _, err := t.ownedTrip(ctx, accountID, tripID); err != nil {
		return err
	}

	id, err := uuid.Parse(activityID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	updated, err := t.tripRepo.UpdateActivityCompleted(ctx, id, completed)
	if err != nil {
		log.Printf("Error updating activity: %v", err)
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrActivityNotFound
	}
	return nil
}

// ownedTrip loads a trip and enforces that it belongs to the caller. A trip
// owned by someone else reads as not found.
func (t *TripService) ownedTrip(ctx context.Context, accountID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		log.Printf("Error fetching trip: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func tripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:        trip.ID.String(),
		Title:     trip.Title,
		Location:  trip.Location,
		StartDate: trip.StartDate,
		DayCount:  trip.DayCount,
		Interests: trip.Interests,
	}
}
