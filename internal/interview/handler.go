package interview

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skillbridge-backend/internal/roles"
	"skillbridge-backend/internal/shared/metrics"
	"skillbridge-backend/internal/shared/server/respond"
)

// Handler serves the mock-interview endpoints.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interview/start", h.start)
	rg.POST("/interview/start-detailed", h.startDetailed)
	rg.POST("/interview/score", h.score)
}

type startRequest struct {
	TargetRole string   `json:"target_role"`
	Skills     []string `json:"skills"`
	ResumeText string   `json:"resume_text"`
}

type detailedStartRequest struct {
	TargetRole     string          `json:"target_role"`
	Skills         []string        `json:"skills"`
	ResumeText     string          `json:"resume_text"`
	ResumeAnalysis *ResumeAnalysis `json:"resume_analysis"`
}

type scoreRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *Handler) start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	role := roles.Resolve(req.TargetRole)
	var questions []string
	if req.ResumeText != "" {
		questions = ResumeQuestions(req.ResumeText, role)
	} else {
		questions = RoleQuestions(role)
	}

	metrics.IncInterviewStarted()
	respond.OK(c, gin.H{
		"sessionId": uuid.NewString(),
		"questions": questions,
	})
}

func (h *Handler) startDetailed(c *gin.Context) {
	var req detailedStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	role := roles.Resolve(req.TargetRole)
	var questions []string
	switch {
	case req.ResumeText != "" && req.ResumeAnalysis != nil:
		questions = DetailedQuestions(role, *req.ResumeAnalysis)
	case req.ResumeText != "":
		questions = ResumeQuestions(req.ResumeText, role)
	default:
		questions = RoleQuestions(role)
	}

	metrics.IncInterviewStarted()
	respond.OK(c, gin.H{
		"sessionId": uuid.NewString(),
		"questions": questions,
	})
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	score, feedback := ScoreAnswer(req.Question, req.Answer)

	metrics.IncInterviewScored()
	respond.OK(c, gin.H{
		"score":    score,
		"feedback": feedback,
	})
}
