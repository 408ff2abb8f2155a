package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Title     string
	Location  string
	StartDate string
	DayCount  int
	Interests pq.StringArray `gorm:"type:text[]"`

	Days []TripDay
}
