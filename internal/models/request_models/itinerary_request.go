package request_models

// PointInput is a user-selected stop as it arrives on the wire. Latitude and
// longitude are pointers so a missing coordinate can be told apart from 0.
type PointInput struct {
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Popularity  *float64 `json:"popularity,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

type TripDetails struct {
	Location     string  `json:"location"`
	NumberOfDays int     `json:"numberOfDays"`
	Budget       float64 `json:"budget"`
}

type PlanItineraryRequest struct {
	Points      []PointInput `json:"points"`
	TripDetails TripDetails  `json:"tripDetails"`
}
