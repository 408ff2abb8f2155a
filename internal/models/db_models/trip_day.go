package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	DayNumber int
	Label     string

	Activities []TripActivity
}

type TripActivity struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"index"`
	Position  int

	SlotType   string
	TimeLabel  string
	Title      string
	Address    string
	BusinessID string
	Rating     float64
	Price      string
	Categories pq.StringArray `gorm:"type:text[]"`

	Completed     bool
	TravelMinutes *int
}
