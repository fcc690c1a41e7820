package request_models

type CreateLandmarkRequest struct {
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	City        string   `json:"city"`
}
