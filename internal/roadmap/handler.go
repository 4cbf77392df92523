package roadmap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/shared/metrics"
	"skillbridge-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the roadmap engine.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches roadmap routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/roadmap", h.generate)
}

// generateRequest mirrors the loose JSON shape clients send. Optional
// sections arrive as free-form objects; anything malformed inside them is
// treated as absent rather than rejected.
type generateRequest struct {
	Missing     []any          `json:"missing"`
	Preferences map[string]any `json:"preferences"`
	Interview   map[string]any `json:"interview"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	missing := stringList(req.Missing)
	prefs := preferencesFrom(req.Preferences)
	signals := signalsFrom(req.Interview)

	plan := Generate(missing, prefs, signals)

	metrics.IncRoadmapGenerated()
	metrics.ObserveRoadmapWeeks(float64(len(plan)))

	respond.OK(c, gin.H{"roadmap": plan})
}

func preferencesFrom(raw map[string]any) *Preferences {
	if raw == nil {
		return nil
	}
	out := DefaultPreferences()
	out.Focus = stringList(raw["focus"])
	if pace, ok := raw["pace"].(string); ok && pace != "" {
		out.Pace = Pace(pace)
	}
	if hours, ok := intValue(raw["availability_hours"]); ok && hours != 0 {
		out.AvailabilityHours = hours
	}
	return &out
}

func signalsFrom(raw map[string]any) *InterviewSignals {
	if raw == nil {
		return nil
	}
	out := InterviewSignals{
		WeakTopics:     stringList(raw["weak_topics"]),
		StrengthTopics: stringList(raw["strength_topics"]),
	}
	if score, ok := intValue(raw["avg_score"]); ok {
		out.AvgScore = score
	}
	return &out
}

// stringList keeps only the string entries of a decoded JSON array.
func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
