package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type PlaceServiceInterface interface {
	SavePlace(ctx context.Context, accountID string, request request_models.SavePlaceRequest) (*response_models.SavedPlaceResponse, error)
	ListPlaces(ctx context.Context, accountID string, filter repositories.PlaceFilter) ([]response_models.SavedPlaceResponse, error)
	UpdatePlace(ctx context.Context, accountID, placeID string, request request_models.UpdatePlaceRequest) (*response_models.SavedPlaceResponse, error)
	DeletePlace(ctx context.Context, accountID, placeID string) error
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{placeRepo: placeRepo}
}

func (p *PlaceService) SavePlace(ctx context.Context, accountID string, request request_models.SavePlaceRequest) (*response_models.SavedPlaceResponse, error) {
	owner, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	record := request.Place
	if record.ID == "" {
		return nil, utils.ErrInvalidInput
	}

	// Saving the same provider place twice updates the existing row instead
	// of duplicating it.
	place, err := p.placeRepo.FindByProviderID(ctx, accountID, record.ID)
	if err != nil {
		log.Printf("Error looking up saved place: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		place = &db_models.SavedPlace{
			AccountID:  owner,
			ProviderID: record.ID,
		}
	}

	place.Name = record.Name
	place.Rating = record.Rating
	place.ReviewCount = record.ReviewCount
	place.Price = record.Price
	place.ImageURL = record.ImageURL
	place.Phone = record.Phone
	place.URL = record.URL
	place.Address = strings.Join(record.Location.DisplayAddress, ", ")
	place.Favorite = request.Favorite

	place.Categories = place.Categories[:0]
	for _, c := range record.Categories {
		place.Categories = append(place.Categories, c.Title)
	}

	if record.Coordinates != nil {
		lat, lng := record.Coordinates.Latitude, record.Coordinates.Longitude
		place.Latitude = &lat
		place.Longitude = &lng
	}

	if err := p.placeRepo.Upsert(ctx, place); err != nil {
		log.Printf("Error saving place: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := savedPlaceResponse(place)
	return &out, nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, accountID string, filter repositories.PlaceFilter) ([]response_models.SavedPlaceResponse, error) {
	places, err := p.placeRepo.ListByAccount(ctx, accountID, filter)
	if err != nil {
		log.Printf("Error listing saved places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedPlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, savedPlaceResponse(&places[i]))
	}
	return out, nil
}

func (p *PlaceService) UpdatePlace(ctx context.Context, accountID, placeID string, request request_models.UpdatePlaceRequest) (*response_models.SavedPlaceResponse, error) {
	place, err := p.ownedPlace(ctx, accountID, placeID)
	if err != nil {
		return nil, err
	}

	if request.Favorite != nil {
		place.Favorite = *request.Favorite
	}
	if request.Visited != nil {
		place.Visited = *request.Visited
	}

	if err := p.placeRepo.Update(ctx, place); err != nil {
		log.Printf("Error updating saved place: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := savedPlaceResponse(place)
	return &out, nil
}

func (p *PlaceService) DeletePlace(ctx context.Context, accountID, placeID string) error {
	if _, err := p.ownedPlace(ctx, accountID, placeID); err != nil {
		return err
	}

	if err := p.placeRepo.Delete(ctx, placeID); err != nil {
		log.Printf("Error deleting saved place: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlaceService) ownedPlace(ctx context.Context, accountID, placeID string) (*db_models.SavedPlace, error) {
	place, err := p.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		log.Printf("Error fetching saved place: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil || place.AccountID.String() != accountID {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func savedPlaceResponse(place *db_models.SavedPlace) response_models.SavedPlaceResponse {
	out := response_models.SavedPlaceResponse{
		ID:          place.ID.String(),
		ProviderID:  place.ProviderID,
		Name:        place.Name,
		Rating:      place.Rating,
		ReviewCount: place.ReviewCount,
		Categories:  place.Categories,
		Price:       place.Price,
		ImageURL:    place.ImageURL,
		Address:     place.Address,
		Favorite:    place.Favorite,
		Visited:     place.Visited,
	}
	if place.Latitude != nil && place.Longitude != nil {
		out.Coordinates = &response_models.Coordinates{
			Latitude:  *place.Latitude,
			Longitude: *place.Longitude,
		}
	}
	return out
}
