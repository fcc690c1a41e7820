package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// NearbyPlace is one candidate point of interest from the provider.
type NearbyPlace struct {
	Name  string
	Lat   float64
	Lon   float64
	Kinds string
}

// GeoProviderInterface is the boundary to the external geographic data
// provider. Both calls may fail (timeout, auth, empty result); callers
// treat any failure as "no data".
type GeoProviderInterface interface {
	Geocode(ctx context.Context, place string) (lat, lon float64, err error)
	NearbySearch(ctx context.Context, lat, lon float64, radiusMeters int, kinds string, limit int) ([]NearbyPlace, error)
}

// ------------- OpenTripMap client -------------

type OpenTripMapClient struct {
	HTTP           *http.Client
	APIKey         string
	GeocodeTimeout time.Duration
	SearchTimeout  time.Duration
}

func NewOpenTripMapClient(cfg PlannerConfig) *OpenTripMapClient {
	return &OpenTripMapClient{
		HTTP:           &http.Client{Timeout: cfg.SearchTimeout},
		APIKey:         os.Getenv("OPENTRIPMAP_API_KEY"),
		GeocodeTimeout: cfg.GeocodeTimeout,
		SearchTimeout:  cfg.SearchTimeout,
	}
}

func (c *OpenTripMapClient) Geocode(ctx context.Context, place string) (float64, float64, error) {
	if c.APIKey == "" {
		return 0, 0, fmt.Errorf("opentripmap: no api key configured")
	}

	u := url.URL{
		Scheme: "https",
		Host:   "api.opentripmap.com",
		Path:   "/0.1/en/places/geoname",
	}
	q := url.Values{}
	q.Set("name", place)
	q.Set("apikey", c.APIKey)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.GeocodeTimeout)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("opentripmap geocode http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return 0, 0, fmt.Errorf("opentripmap geocode bad status: %s", resp.Status)
	}

	var payload struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("opentripmap geocode decode: %w", err)
	}

	return payload.Lat, payload.Lon, nil
}

func (c *OpenTripMapClient) NearbySearch(ctx context.Context, lat, lon float64, radiusMeters int, kinds string, limit int) ([]NearbyPlace, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("opentripmap: no api key configured")
	}

	u := url.URL{
		Scheme: "https",
		Host:   "api.opentripmap.com",
		Path:   "/0.1/en/places/radius",
	}
	q := url.Values{}
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("kinds", kinds)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apikey", c.APIKey)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.SearchTimeout)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opentripmap radius http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("opentripmap radius bad status: %s", resp.Status)
	}

	// GeoJSON FeatureCollection; coordinates are [lon, lat].
	var payload struct {
		Features []struct {
			Properties struct {
				Name  string `json:"name"`
				Kinds string `json:"kinds"`
			} `json:"properties"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("opentripmap radius decode: %w", err)
	}

	places := make([]NearbyPlace, 0, len(payload.Features))
	for _, f := range payload.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		places = append(places, NearbyPlace{
			Name:  f.Properties.Name,
			Lat:   f.Geometry.Coordinates[1],
			Lon:   f.Geometry.Coordinates[0],
			Kinds: f.Properties.Kinds,
		})
	}

	return places, nil
}
