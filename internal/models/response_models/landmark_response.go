package response_models

type LandmarkResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	City        string   `json:"city,omitempty"`
	Popularity  *float64 `json:"popularity,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	DistanceKm  float64  `json:"distanceKm,omitempty"`
}
