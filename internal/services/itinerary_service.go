package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

// Slot categorization. Order matters: the first matching group wins, so a
// bakery that is also a restaurant lands in breakfast, not lunch.
var (
	breakfastPattern = regexp.MustCompile(`breakfast|coffee|bakery|brunch`)
	morningPattern   = regexp.MustCompile(`museum|landmark|park|tour|art`)
	eveningPattern   = regexp.MustCompile(`bars?\b|nightlife|cocktail|pubs?\b|lounge`)
	diningPattern    = regexp.MustCompile(`restaurant|food`)
)

type slotDef struct {
	timeLabel string
	slotType  string
}

var daySlots = []slotDef{
	{"9:00 AM", "breakfast"},
	{"11:00 AM", "morning"},
	{"1:00 PM", "lunch"},
	{"3:30 PM", "afternoon"},
	{"7:00 PM", "dinner"},
}

var eveningSlot = slotDef{"9:00 PM", "evening"}

// A slot left unfilled after every slot has claimed from its own bucket
// borrows from these, in order. Dinner and evening venues are deliberately
// never rescheduled into other slots.
var slotFallbacks = []string{"afternoon", "lunch", "morning"}

type ItineraryServiceInterface interface {
	Generate(places []response_models.BusinessRecord, numDays int, locationLabel string) ([]response_models.DayPlan, error)
}

type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

func (s *ItineraryService) Generate(places []response_models.BusinessRecord, numDays int, locationLabel string) ([]response_models.DayPlan, error) {
	if len(places) == 0 {
		return nil, utils.ErrNoPlacesAvailable
	}
	if numDays < 1 {
		numDays = 1
	}

	buckets := make(map[string][]response_models.BusinessRecord)
	for _, p := range places {
		slot := slotFor(p)
		buckets[slot] = append(buckets[slot], p)
	}
	for slot := range buckets {
		bucket := buckets[slot]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Rating > bucket[j].Rating
		})
	}

	// One used-set across the whole trip so no place is booked twice,
	// even on different days.
	used := make(map[string]bool)

	plans := make([]response_models.DayPlan, 0, numDays)
	for day := 0; day < numDays; day++ {
		slots := daySlots
		if day%2 == 0 {
			slots = append(append([]slotDef{}, daySlots...), eveningSlot)
		}

		// Each slot claims from its own bucket first, so a scarce lunch
		// place is not stolen by an earlier slot's fallback.
		placed := make([]*response_models.BusinessRecord, len(slots))
		for i, slot := range slots {
			placed[i] = takeFromBucket(buckets, used, slot.slotType)
		}
		for i := range slots {
			if placed[i] != nil {
				continue
			}
			for _, fallback := range slotFallbacks {
				if placed[i] = takeFromBucket(buckets, used, fallback); placed[i] != nil {
					break
				}
			}
		}

		var activities []response_models.Activity
		var prev *response_models.BusinessRecord

		for i, slot := range slots {
			place := placed[i]
			if place == nil {
				continue
			}

			activity := buildActivity(place, slot, locationLabel)
			if prev != nil && prev.Coordinates != nil && place.Coordinates != nil {
				minutes, ok := utils.WalkingMinutes(
					prev.Coordinates.Latitude, prev.Coordinates.Longitude,
					place.Coordinates.Latitude, place.Coordinates.Longitude,
				)
				if ok {
					activity.TravelTimeFromPreviousMinutes = &minutes
				}
			}

			activities = append(activities, activity)
			prev = place
		}

		plans = append(plans, response_models.DayPlan{
			Date:       fmt.Sprintf("Day %d", day+1),
			Activities: activities,
		})
	}

	return plans, nil
}

// takeFromBucket returns the best unused place in one bucket, or nil when
// the bucket is exhausted.
func takeFromBucket(buckets map[string][]response_models.BusinessRecord, used map[string]bool, bucket string) *response_models.BusinessRecord {
	for i := range buckets[bucket] {
		place := &buckets[bucket][i]
		if used[place.ID] {
			continue
		}
		used[place.ID] = true
		return place
	}
	return nil
}

func buildActivity(place *response_models.BusinessRecord, slot slotDef, locationLabel string) response_models.Activity {
	titles := make([]string, 0, len(place.Categories))
	for _, c := range place.Categories {
		titles = append(titles, c.Title)
	}

	location := place.Location.City
	if location == "" {
		location = locationLabel
	}

	return response_models.Activity{
		ID:         uuid.New().String(),
		Time:       slot.timeLabel,
		Title:      place.Name,
		Location:   location,
		Address:    strings.Join(place.Location.DisplayAddress, ", "),
		BusinessID: place.ID,
		Rating:     place.Rating,
		Price:      place.Price,
		Categories: titles,
		Completed:  false,
		SlotType:   slot.slotType,
	}
}

// slotFor assigns a place to exactly one bucket.
func slotFor(place response_models.BusinessRecord) string {
	var joined strings.Builder
	for _, c := range place.Categories {
		joined.WriteString(strings.ToLower(c.Title))
		joined.WriteString(" ")
		joined.WriteString(strings.ToLower(c.Alias))
		joined.WriteString(" ")
	}
	haystack := joined.String()

	switch {
	case breakfastPattern.MatchString(haystack):
		return "breakfast"
	case morningPattern.MatchString(haystack):
		return "morning"
	case eveningPattern.MatchString(haystack):
		return "evening"
	case diningPattern.MatchString(haystack):
		if place.Price == "$$$" || place.Price == "$$$$" {
			return "dinner"
		}
		return "lunch"
	default:
		return "afternoon"
	}
}
