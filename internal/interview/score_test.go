package interview

import (
	"strings"
	"testing"
)

func TestScoreAnswerKeywordCoverage(t *testing.T) {
	question := "What are Docker containers and images?"
	answer := "A container is a running instance of an image, often built via compose and pushed to a registry."

	score, feedback := ScoreAnswer(question, answer)
	// All four docker keywords match; total floors at 5, plus a length bonus.
	if score < 80 {
		t.Fatalf("expected high score for full keyword coverage, got %d", score)
	}
	if feedback != "Good coverage of key concepts." {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreAnswerEmptyAnswer(t *testing.T) {
	score, feedback := ScoreAnswer("Explain the Node.js event loop.", "")
	if score != 0 {
		t.Fatalf("expected 0 for empty answer, got %d", score)
	}
	if !strings.HasPrefix(feedback, "Try to address") {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreAnswerUnknownTopicFallsBackToAPI(t *testing.T) {
	score, _ := ScoreAnswer("Tell me about yourself.", "I build rest apis with http and jwt auth behind a rate limit.")
	// All five api keywords hit: rest, http, auth, rate limit, jwt.
	if score < 100 {
		t.Fatalf("expected full api keyword coverage (plus bonus) to reach 100, got %d", score)
	}
}

func TestScoreAnswerLengthBonusCapped(t *testing.T) {
	long := strings.Repeat("filler words without keywords ", 100)
	score, _ := ScoreAnswer("What are Docker containers?", long)
	if score != 20 {
		t.Fatalf("expected only the capped length bonus, got %d", score)
	}
}

func TestScoreAnswerClampedTo100(t *testing.T) {
	answer := "container image compose registry " + strings.Repeat("padding ", 200)
	score, _ := ScoreAnswer("Tell me about docker.", answer)
	if score != 100 {
		t.Fatalf("expected clamp at 100, got %d", score)
	}
}

func TestScoreAnswerMultipleTopics(t *testing.T) {
	question := "How do you deploy a React app with Docker?"
	answer := "I package each component as a container image."

	score, _ := ScoreAnswer(question, answer)
	// Keywords pool = react(6) + docker(4) = 10; three matches: component,
	// container, image.
	if score < 30 || score > 50 {
		t.Fatalf("expected score near 30 plus small bonus, got %d", score)
	}
}
