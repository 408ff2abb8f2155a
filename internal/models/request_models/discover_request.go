package request_models

// TravelerContext is the request-scoped bundle of traveler preferences that
// steers business discovery. It is built once at the request boundary and
// passed down whole.
type TravelerContext struct {
	Location          string
	Term              string
	SearchCategories  string
	Interests         []string
	UserAge           int
	CompanionAges     []int
	TravelingWithKids bool
	KidsAges          []int
}

// GroupSize is always derived from the companion count on the server side,
// never taken from the client.
func (t TravelerContext) GroupSize() int {
	return 1 + len(t.CompanionAges)
}

// AverageAge averages the traveler and companions, defaulting to 30 when no
// ages were provided at all.
func (t TravelerContext) AverageAge() float64 {
	ages := make([]int, 0, 1+len(t.CompanionAges))
	if t.UserAge > 0 {
		ages = append(ages, t.UserAge)
	}
	ages = append(ages, t.CompanionAges...)

	if len(ages) == 0 {
		return 30
	}

	sum := 0
	for _, a := range ages {
		sum += a
	}
	return float64(sum) / float64(len(ages))
}
