// Package gap computes role-aware missing skills for a candidate.
package gap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/roles"
	"skillbridge-backend/internal/shared/metrics"
	"skillbridge-backend/internal/shared/server/respond"
)

// Handler serves the skill-gap endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches gap routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/gap", h.computeGap)
}

type gapRequest struct {
	Skills     []string `json:"skills"`
	TargetRole string   `json:"target_role"`
}

func (h *Handler) computeGap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	missing := Missing(req.Skills, req.TargetRole)
	metrics.IncGapComputed()

	respond.OK(c, gin.H{
		"targetRole": req.TargetRole,
		"missing":    missing,
	})
}

// Missing subtracts the candidate's skills from the role's desired set,
// preserving the desired-set order. Matching is exact and case-sensitive:
// skill names are closed-catalog identifiers.
func Missing(skills []string, targetRole string) []string {
	desired := roles.Resolve(targetRole).DesiredSkills()
	missing := make([]string, 0, len(desired))
	for _, s := range desired {
		if !containsString(skills, s) {
			missing = append(missing, s)
		}
	}
	return missing
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
