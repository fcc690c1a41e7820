package response_models

const (
	CostTypeEntry     = "entry"
	CostTypeTransport = "transport"
)

// Point is a single landmark/stop within one planning request. Points are
// value objects: built from request input or the geographic provider and
// discarded once the response is sent.
type Point struct {
	Name         string   `json:"name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	IsAdditional bool     `json:"isAdditional"`
	Popularity   *float64 `json:"popularity,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

// Day is one bucket of the day-wise distribution.
type Day struct {
	DayNumber        int     `json:"day"`
	Points           []Point `json:"points"`
	TotalDistanceKm  float64 `json:"totalDistance"`
	EstimatedMinutes int     `json:"estimatedTime"`
}

type ScheduleEntry struct {
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Location string  `json:"location"`
	Duration string  `json:"duration"`
	Cost     float64 `json:"cost"`
	CostType string  `json:"costType"`
	Tips     string  `json:"tips,omitempty"`
}

type ItineraryDay struct {
	Day      int             `json:"day"`
	Date     string          `json:"date"`
	Schedule []ScheduleEntry `json:"schedule"`
}

type Itinerary struct {
	Days []ItineraryDay `json:"days"`
}

type BudgetBreakdown struct {
	Transport   float64 `json:"transport"`
	Attractions float64 `json:"attractions"`
	Total       float64 `json:"total"`
}

// GeneratedPlan is the schedule part of the response, whichever path
// produced it. This is also the exact JSON shape the generative service is
// asked to return.
type GeneratedPlan struct {
	Itinerary       Itinerary       `json:"itinerary"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
	Tips            []string        `json:"tips"`
}

type RouteOptimization struct {
	OptimizedPoints       []Point `json:"optimizedPoints"`
	DayWiseDistribution   []Day   `json:"dayWiseDistribution"`
	TotalDistance         float64 `json:"totalDistance"`
	TotalEstimatedTime    int     `json:"totalEstimatedTime"`
	AverageDistancePerDay float64 `json:"averageDistancePerDay"`
}

type TripSummary struct {
	Location          string `json:"location"`
	NumberOfDays      int    `json:"numberOfDays"`
	Budget            string `json:"budget"`
	TotalPoints       int    `json:"totalPoints"`
	UserSelectedCount int    `json:"userSelectedCount"`
	AdditionalCount   int    `json:"additionalCount"`
	GeneratedAt       string `json:"generatedAt"`
}

type PlanItineraryResponse struct {
	Itinerary         Itinerary         `json:"itinerary"`
	BudgetBreakdown   BudgetBreakdown   `json:"budgetBreakdown"`
	Tips              []string          `json:"tips"`
	RouteOptimization RouteOptimization `json:"routeOptimization"`
	TripSummary       TripSummary       `json:"tripSummary"`
}
