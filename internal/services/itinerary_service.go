package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// fallbackTips is attached whenever the deterministic path produces the
// schedule.
var fallbackTips = []string{
	"Carry cash as many places don't accept cards",
	"Download offline maps for navigation",
	"Keep copies of important documents",
	"Dress modestly when visiting religious sites",
	"Negotiate prices with auto-rickshaw drivers",
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, points []response_models.Point, days []response_models.Day, trip request_models.TripDetails) response_models.GeneratedPlan
}

type ItineraryService struct {
	ai  utils.TextGenClientInterface
	cfg PlannerConfig
}

func NewItineraryService(ai utils.TextGenClientInterface, cfg PlannerConfig) ItineraryServiceInterface {
	return &ItineraryService{
		ai:  ai,
		cfg: cfg,
	}
}

// Generate produces the final schedule. It first asks the generative-text
// service for a structured plan; when that fails in any way (service error,
// timeout, unparsable text) it synthesizes a deterministic schedule from the
// day distribution. It never returns an error: a degraded itinerary is
// always preferred over a failed response. The budget breakdown is a fixed
// proportional split of the trip budget, independent of which path ran.
func (s *ItineraryService) Generate(ctx context.Context, points []response_models.Point, days []response_models.Day, trip request_models.TripDetails) response_models.GeneratedPlan {
	plan, ok := s.generateWithAI(ctx, points, trip)
	if !ok {
		plan = s.buildFallbackPlan(days)
	}

	plan.BudgetBreakdown = response_models.BudgetBreakdown{
		Transport:   math.Floor(trip.Budget * 0.4),
		Attractions: math.Floor(trip.Budget * 0.6),
		Total:       trip.Budget,
	}

	return plan
}

func (s *ItineraryService) generateWithAI(ctx context.Context, points []response_models.Point, trip request_models.TripDetails) (response_models.GeneratedPlan, bool) {
	if s.ai == nil {
		return response_models.GeneratedPlan{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout)
	defer cancel()

	raw, err := s.ai.GenerateText(ctx, s.buildPrompt(points, trip), 0.3, 4000)
	if err != nil {
		log.Printf("AI itinerary generation failed, using fallback: %v", err)
		return response_models.GeneratedPlan{}, false
	}

	result := extractGeneratedPlan(raw)
	if !result.Parsed {
		log.Printf("AI itinerary response unparsable, using fallback")
		return response_models.GeneratedPlan{}, false
	}

	plan := result.Plan
	s.repairCosts(&plan)
	log.Printf("AI itinerary generated successfully")
	return plan, true
}

func (s *ItineraryService) buildPrompt(points []response_models.Point, trip request_models.TripDetails) string {
	names := make([]string, 0, len(points))
	for _, p := range points {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	pointNames := strings.Join(names, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s, India with budget ₹%.0f INR.\n\n",
		trip.NumberOfDays, trip.Location, trip.Budget)
	fmt.Fprintf(&b, "PLACES TO VISIT: %s\n\n", pointNames)

	b.WriteString(`Return ONLY valid JSON in this exact format:
{
  "itinerary": {
    "days": [
      {
        "day": 1,
        "date": "Day 1",
        "schedule": [
          {
            "time": "9:00 AM",
            "activity": "Visit [Place Name]",
            "location": "[Place Name]",
            "duration": "2 hours",
            "cost": 200,
            "costType": "entry",
            "tips": "Best time to visit, photography tips"
          }
        ]
      }
    ]
  },
  "budgetBreakdown": {
`)
	fmt.Fprintf(&b, "    \"transport\": %.0f,\n", math.Floor(trip.Budget*0.4))
	fmt.Fprintf(&b, "    \"attractions\": %.0f,\n", math.Floor(trip.Budget*0.6))
	fmt.Fprintf(&b, "    \"total\": %.0f\n", trip.Budget)
	b.WriteString(`  },
  "tips": [
    "Practical travel tips"
  ]
}

Requirements:
`)
	fmt.Fprintf(&b, "- Include ALL places: %s\n", pointNames)
	b.WriteString(`- Use realistic Indian prices (entry: ₹50-₹500, transport: ₹50-₹300)
- Time from 8 AM to 6 PM daily
- Include travel time between locations
- NO food or lodging costs, only entry and transport
- Return ONLY JSON, no markdown or extra text`)

	return b.String()
}

// repairCosts clamps magnitude-inflated costs instead of rejecting the whole
// response. The ceilings come from the pricing guidance in the prompt.
func (s *ItineraryService) repairCosts(plan *response_models.GeneratedPlan) {
	for di := range plan.Itinerary.Days {
		schedule := plan.Itinerary.Days[di].Schedule
		for si := range schedule {
			switch schedule[si].CostType {
			case response_models.CostTypeTransport:
				if schedule[si].Cost > s.cfg.TransportCostCeiling {
					schedule[si].Cost = s.cfg.TransportCostClamp
				}
			case response_models.CostTypeEntry:
				if schedule[si].Cost > s.cfg.EntryCostCeiling {
					schedule[si].Cost = s.cfg.EntryCostClamp
				}
			}
		}
	}
}

// buildFallbackPlan deterministically synthesizes a schedule from the day
// distribution: one entry visit per point interleaved with a transport leg
// between consecutive points, times advancing two hours per point from
// 9:00 AM. Repeated calls over the same days produce identical output.
func (s *ItineraryService) buildFallbackPlan(days []response_models.Day) response_models.GeneratedPlan {
	outDays := make([]response_models.ItineraryDay, 0, len(days))

	for _, day := range days {
		schedule := make([]response_models.ScheduleEntry, 0, len(day.Points)*2)
		current := 9.0

		for i, p := range day.Points {
			schedule = append(schedule, response_models.ScheduleEntry{
				Time:     formatClock(current),
				Activity: "Visit " + p.Name,
				Location: p.Name,
				Duration: "1.5 hours",
				Cost:     s.cfg.FallbackEntryCost,
				CostType: response_models.CostTypeEntry,
				Tips:     describePoint(p),
			})
			current += 1.5

			if i < len(day.Points)-1 {
				schedule = append(schedule, response_models.ScheduleEntry{
					Time:     formatClock(current),
					Activity: "Travel to " + day.Points[i+1].Name,
					Location: "En route",
					Duration: "30 minutes",
					Cost:     s.cfg.FallbackTransportCost,
					CostType: response_models.CostTypeTransport,
					Tips:     "Use local transportation - auto-rickshaw, bus, or taxi",
				})
				current += 0.5
			}
		}

		outDays = append(outDays, response_models.ItineraryDay{
			Day:      day.DayNumber,
			Date:     fmt.Sprintf("Day %d", day.DayNumber),
			Schedule: schedule,
		})
	}

	return response_models.GeneratedPlan{
		Itinerary: response_models.Itinerary{Days: outDays},
		Tips:      fallbackTips,
	}
}

func describePoint(p response_models.Point) string {
	desc := p.Description
	if desc == "" {
		desc = "Popular local attraction."
	}
	return fmt.Sprintf("Explore %s. %s", p.Name, desc)
}

func formatClock(hours float64) string {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

// ------------- response extraction -------------

// ExtractionResult classifies a raw generative-text response: either a
// parsed plan or unparsable text.
type ExtractionResult struct {
	Plan   response_models.GeneratedPlan
	Parsed bool
}

// extractGeneratedPlan locates the outermost JSON object in the raw
// response (first '{' to last '}', defensive against conversational
// wrapping and code fences) and attempts to decode it into the plan shape.
func extractGeneratedPlan(raw string) ExtractionResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return ExtractionResult{}
	}

	var plan response_models.GeneratedPlan
	if err := json.Unmarshal([]byte(raw[start:end+1]), &plan); err != nil {
		return ExtractionResult{}
	}
	if len(plan.Itinerary.Days) == 0 {
		return ExtractionResult{}
	}

	return ExtractionResult{Plan: plan, Parsed: true}
}
