package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
)

type stubTextClient struct {
	response string
	err      error
	calls    int
}

func (s *stubTextClient) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleTrip() request_models.TripDetails {
	return request_models.TripDetails{Location: "Jaipur", NumberOfDays: 2, Budget: 5000}
}

func sampleDays() []response_models.Day {
	return []response_models.Day{
		{
			DayNumber: 1,
			Points: []response_models.Point{
				{Name: "Hawa Mahal", Description: "Palace of winds."},
				{Name: "City Palace"},
				{Name: "Jantar Mantar"},
			},
		},
		{
			DayNumber: 2,
			Points: []response_models.Point{
				{Name: "Amber Fort"},
				{Name: "Jal Mahal"},
			},
		},
	}
}

const validAIResponse = `{
  "itinerary": {
    "days": [
      {
        "day": 1,
        "date": "Day 1",
        "schedule": [
          {"time": "9:00 AM", "activity": "Visit Hawa Mahal", "location": "Hawa Mahal", "duration": "2 hours", "cost": 200, "costType": "entry", "tips": "Go early"},
          {"time": "11:00 AM", "activity": "Travel to City Palace", "location": "En route", "duration": "30 minutes", "cost": 900, "costType": "transport", "tips": "Auto-rickshaw"},
          {"time": "11:30 AM", "activity": "Visit City Palace", "location": "City Palace", "duration": "2 hours", "cost": 5000, "costType": "entry", "tips": "Audio guide"}
        ]
      }
    ]
  },
  "budgetBreakdown": {"transport": 1, "attractions": 1, "total": 2},
  "tips": ["Stay hydrated"]
}`

func TestGenerate_NilClientUsesFallback(t *testing.T) {
	service := NewItineraryService(nil, testConfig())

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	require.Len(t, plan.Itinerary.Days, 2)
	// A day with n points has n visits and n-1 transport legs.
	assert.Len(t, plan.Itinerary.Days[0].Schedule, 5)
	assert.Len(t, plan.Itinerary.Days[1].Schedule, 3)
	assert.Equal(t, fallbackTips, plan.Tips)
}

func TestGenerate_FallbackIsDeterministic(t *testing.T) {
	service := NewItineraryService(nil, testConfig())

	first := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())
	second := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	require.Equal(t, first, second)
}

func TestGenerate_FallbackScheduleContent(t *testing.T) {
	cfg := testConfig()
	service := NewItineraryService(nil, cfg)

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	day1 := plan.Itinerary.Days[0]
	assert.Equal(t, 1, day1.Day)
	assert.Equal(t, "Day 1", day1.Date)

	schedule := day1.Schedule
	require.Len(t, schedule, 5)

	assert.Equal(t, "9:00 AM", schedule[0].Time)
	assert.Equal(t, "Visit Hawa Mahal", schedule[0].Activity)
	assert.Equal(t, cfg.FallbackEntryCost, schedule[0].Cost)
	assert.Equal(t, response_models.CostTypeEntry, schedule[0].CostType)
	assert.Equal(t, "Explore Hawa Mahal. Palace of winds.", schedule[0].Tips)

	assert.Equal(t, "10:30 AM", schedule[1].Time)
	assert.Equal(t, "Travel to City Palace", schedule[1].Activity)
	assert.Equal(t, "En route", schedule[1].Location)
	assert.Equal(t, cfg.FallbackTransportCost, schedule[1].Cost)
	assert.Equal(t, response_models.CostTypeTransport, schedule[1].CostType)

	assert.Equal(t, "11:00 AM", schedule[2].Time)
	assert.Equal(t, "12:30 PM", schedule[3].Time)
	assert.Equal(t, "1:00 PM", schedule[4].Time)

	// Points without a description get the generic blurb.
	assert.Equal(t, "Explore City Palace. Popular local attraction.", schedule[2].Tips)
}

func TestGenerate_BudgetBreakdownOnBothPaths(t *testing.T) {
	trip := sampleTrip()
	want := response_models.BudgetBreakdown{Transport: 2000, Attractions: 3000, Total: 5000}

	fallback := NewItineraryService(nil, testConfig()).Generate(context.Background(), nil, sampleDays(), trip)
	assert.Equal(t, want, fallback.BudgetBreakdown)

	ai := NewItineraryService(&stubTextClient{response: validAIResponse}, testConfig())
	generated := ai.Generate(context.Background(), nil, sampleDays(), trip)
	assert.Equal(t, want, generated.BudgetBreakdown, "AI-reported breakdown is replaced with the fixed split")
}

func TestGenerate_UsesAIResponseWhenParsable(t *testing.T) {
	stub := &stubTextClient{response: validAIResponse}
	service := NewItineraryService(stub, testConfig())

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	assert.Equal(t, 1, stub.calls)
	require.Len(t, plan.Itinerary.Days, 1)
	assert.Equal(t, []string{"Stay hydrated"}, plan.Tips)
}

func TestGenerate_ParsesCodeFencedJSON(t *testing.T) {
	stub := &stubTextClient{response: "```json\n" + validAIResponse + "\n```"}
	service := NewItineraryService(stub, testConfig())

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	require.Len(t, plan.Itinerary.Days, 1)
	assert.Equal(t, "Visit Hawa Mahal", plan.Itinerary.Days[0].Schedule[0].Activity)
}

func TestGenerate_ClampsInflatedCosts(t *testing.T) {
	cfg := testConfig()
	service := NewItineraryService(&stubTextClient{response: validAIResponse}, cfg)

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	schedule := plan.Itinerary.Days[0].Schedule
	require.Len(t, schedule, 3)
	assert.Equal(t, 200.0, schedule[0].Cost, "in-range cost stays untouched")
	assert.Equal(t, cfg.TransportCostClamp, schedule[1].Cost)
	assert.Equal(t, cfg.EntryCostClamp, schedule[2].Cost)
}

func TestGenerate_UnparsableResponseFallsBack(t *testing.T) {
	stub := &stubTextClient{response: "Sorry, I cannot produce an itinerary today."}
	service := NewItineraryService(stub, testConfig())

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	assert.Equal(t, fallbackTips, plan.Tips)
	assert.Len(t, plan.Itinerary.Days, 2)
}

func TestGenerate_EmptyDaysResponseFallsBack(t *testing.T) {
	stub := &stubTextClient{response: `{"itinerary": {"days": []}, "tips": ["x"]}`}
	service := NewItineraryService(stub, testConfig())

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	assert.Equal(t, fallbackTips, plan.Tips)
}

func TestGenerate_ClientErrorFallsBack(t *testing.T) {
	stub := &stubTextClient{err: errors.New("rate limited")}
	service := NewItineraryService(stub, testConfig())

	plan := service.Generate(context.Background(), nil, sampleDays(), sampleTrip())

	assert.Equal(t, fallbackTips, plan.Tips)
	require.Len(t, plan.Itinerary.Days, 2)
	assert.Len(t, plan.Itinerary.Days[0].Schedule, 5)
}

func TestGenerate_PromptNamesEveryPoint(t *testing.T) {
	stub := &stubTextClient{err: errors.New("short-circuit")}
	service := &ItineraryService{ai: stub, cfg: testConfig()}

	points := []response_models.Point{{Name: "Hawa Mahal"}, {Name: "Amber Fort"}}
	prompt := service.buildPrompt(points, sampleTrip())

	assert.Contains(t, prompt, "Hawa Mahal, Amber Fort")
	assert.Contains(t, prompt, "2-day travel itinerary for Jaipur")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}
