package db_models

// Landmark is a catalogued point of interest. Popularity and Rating come
// from the upstream aggregation pipeline and may be absent.
type Landmark struct {
	BaseModel
	Name        string `gorm:"index"`
	Latitude    float64
	Longitude   float64
	Description string
	Category    string
	City        string `gorm:"index"`
	Popularity  *float64
	Rating      *float64
}
