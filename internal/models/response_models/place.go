package response_models

type SavedPlaceResponse struct {
	ID          string       `json:"id"`
	ProviderID  string       `json:"provider_id"`
	Name        string       `json:"name"`
	Rating      float64      `json:"rating,omitempty"`
	ReviewCount int          `json:"review_count,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	Price       string       `json:"price,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Address     string       `json:"address,omitempty"`
	Favorite    bool         `json:"favorite"`
	Visited     bool         `json:"visited"`
}
