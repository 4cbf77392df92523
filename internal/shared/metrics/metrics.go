package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	roadmapGeneratedTotal atomic.Uint64
	gapComputedTotal      atomic.Uint64
	interviewStartedTotal atomic.Uint64
	interviewScoredTotal  atomic.Uint64
	resumeAnalyzedTotal   atomic.Uint64
	extractFailedTotal    atomic.Uint64

	roadmapWeeks = newHistogram([]float64{2, 4, 6, 8, 12, 16, 24, 32})
)

// IncRoadmapGenerated increments the roadmap counter.
func IncRoadmapGenerated() {
	roadmapGeneratedTotal.Add(1)
}

// IncGapComputed increments the gap counter.
func IncGapComputed() {
	gapComputedTotal.Add(1)
}

// IncInterviewStarted increments the interview-start counter.
func IncInterviewStarted() {
	interviewStartedTotal.Add(1)
}

// IncInterviewScored increments the answer-scoring counter.
func IncInterviewScored() {
	interviewScoredTotal.Add(1)
}

// IncResumeAnalyzed increments the resume-analysis counter.
func IncResumeAnalyzed() {
	resumeAnalyzedTotal.Add(1)
}

// IncExtractFailed increments the failed-extraction counter.
func IncExtractFailed() {
	extractFailedTotal.Add(1)
}

// ObserveRoadmapWeeks records the number of weeks in a generated plan.
func ObserveRoadmapWeeks(value float64) {
	if value < 0 {
		value = 0
	}
	roadmapWeeks.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "roadmap_generated_total", "Total roadmaps generated", roadmapGeneratedTotal.Load())
	writeCounter(&buf, "gap_computed_total", "Total skill gaps computed", gapComputedTotal.Load())
	writeCounter(&buf, "interview_started_total", "Total interview sessions started", interviewStartedTotal.Load())
	writeCounter(&buf, "interview_scored_total", "Total interview answers scored", interviewScoredTotal.Load())
	writeCounter(&buf, "resume_analyzed_total", "Total resumes analyzed", resumeAnalyzedTotal.Load())
	writeCounter(&buf, "extract_failed_total", "Total failed text extractions", extractFailedTotal.Load())
	writeHistogram(&buf, "roadmap_weeks", "Weeks per generated roadmap", roadmapWeeks.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
