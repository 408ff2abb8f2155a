package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SavedPlace struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	ProviderID string    `gorm:"index"`

	Name        string
	Rating      float64
	ReviewCount int
	Categories  pq.StringArray `gorm:"type:text[]"`
	Price       string
	Latitude    *float64
	Longitude   *float64
	ImageURL    string
	Phone       string
	URL         string
	Address     string

	Favorite bool
	Visited  bool
}
