package roadmap

import "strings"

// Pace controls how aggressively weekly task lists are shaped.
type Pace string

const (
	PaceFast     Pace = "fast"
	PaceBalanced Pace = "balanced"
	PaceSlow     Pace = "slow"
)

// DefaultAvailabilityHours is assumed when the caller does not state
// how many hours per week they can commit.
const DefaultAvailabilityHours = 6

// Preferences personalizes ordering and pacing of the generated plan.
type Preferences struct {
	// Focus lists area tags ("frontend", "backend", "cloud", "ml") in the
	// order the caller wants them prioritized.
	Focus []string
	// Pace defaults to PaceBalanced.
	Pace Pace
	// AvailabilityHours defaults to DefaultAvailabilityHours when zero.
	AvailabilityHours int
}

// InterviewSignals carries mock-interview outcomes that bias the plan.
type InterviewSignals struct {
	WeakTopics     []string
	StrengthTopics []string
	// AvgScore is the 0-100 average interview score; zero when unknown.
	AvgScore int
}

// Resource is a single learning resource attached to a week.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// WeekPlan is one milestone week of the roadmap.
type WeekPlan struct {
	Week              int        `json:"week"`
	Milestone         string     `json:"milestone"`
	Tasks             []string   `json:"tasks"`
	LearningResources []Resource `json:"learning_resources"`
}

// DefaultPreferences returns the neutral preference set.
func DefaultPreferences() Preferences {
	return Preferences{Pace: PaceBalanced, AvailabilityHours: DefaultAvailabilityHours}
}

func (p Preferences) normalized() Preferences {
	out := p
	switch Pace(strings.ToLower(string(p.Pace))) {
	case PaceFast:
		out.Pace = PaceFast
	case PaceSlow:
		out.Pace = PaceSlow
	default:
		out.Pace = PaceBalanced
	}
	if out.AvailabilityHours == 0 {
		out.AvailabilityHours = DefaultAvailabilityHours
	}
	focus := make([]string, 0, len(p.Focus))
	for _, f := range p.Focus {
		if trimmed := strings.ToLower(strings.TrimSpace(f)); trimmed != "" {
			focus = append(focus, trimmed)
		}
	}
	out.Focus = focus
	return out
}
