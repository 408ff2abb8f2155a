package response_models

// BusinessRecord is the normalized view of one point of interest as returned
// by the business-search provider. Field names mirror the provider's JSON so
// raw results can be decoded straight into it.
type BusinessRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	Categories  []Category   `json:"categories"`
	Price       string       `json:"price,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	URL         string       `json:"url,omitempty"`
	Location    Address      `json:"location"`

	// CustomTags is assigned by the discovery pipeline, never by the provider.
	CustomTags []string `json:"custom_tags,omitempty"`
}

type Category struct {
	Title string `json:"title"`
	Alias string `json:"alias"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address carries the provider's display address fields through unchanged.
type Address struct {
	Address1       string   `json:"address1,omitempty"`
	City           string   `json:"city,omitempty"`
	ZipCode        string   `json:"zip_code,omitempty"`
	Country        string   `json:"country,omitempty"`
	State          string   `json:"state,omitempty"`
	DisplayAddress []string `json:"display_address,omitempty"`
}

type Region struct {
	Center *Coordinates `json:"center,omitempty"`
}

type DiscoveryResponse struct {
	Businesses []BusinessRecord `json:"businesses"`
	Total      int              `json:"total"`
	Region     Region           `json:"region"`
}
