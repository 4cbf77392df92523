package interview

import "strings"

type topicKeywords struct {
	topic    string
	keywords []string
}

// scoringTopics is evaluated in declared order so scoring stays
// deterministic when a question mentions several topics.
var scoringTopics = []topicKeywords{
	{topic: "react", keywords: []string{"component", "state", "props", "hooks", "useeffect", "usememo"}},
	{topic: "node", keywords: []string{"event loop", "async", "await", "express", "non-blocking"}},
	{topic: "mongodb", keywords: []string{"schema", "index", "aggregation", "document", "collection"}},
	{topic: "docker", keywords: []string{"container", "image", "compose", "registry"}},
	{topic: "aws", keywords: []string{"ec2", "s3", "iam", "security", "vpc"}},
	{topic: "tailwind", keywords: []string{"utility", "class", "responsive", "css"}},
	{topic: "api", keywords: []string{"rest", "http", "auth", "rate limit", "jwt"}},
}

// ScoreAnswer rates an answer 0-100 by keyword coverage of the topics the
// question mentions, with a small bonus for longer answers.
func ScoreAnswer(question, answer string) (int, string) {
	q := strings.ToLower(question)
	a := strings.ToLower(answer)

	var keywords []string
	for _, t := range scoringTopics {
		if strings.Contains(q, t.topic) {
			keywords = append(keywords, t.keywords...)
		}
	}
	if len(keywords) == 0 {
		// Unrecognized questions fall back to the API topic.
		keywords = append(keywords, scoringTopics[len(scoringTopics)-1].keywords...)
	}

	matches := 0
	for _, kw := range keywords {
		if strings.Contains(a, kw) {
			matches++
		}
	}
	total := len(keywords)
	if total < 5 {
		total = 5
	}
	baseScore := matches * 100 / total

	bonus := len(a) / 50
	if bonus > 20 {
		bonus = 20
	}

	score := baseScore + bonus
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score, feedbackFor(score)
}

func feedbackFor(score int) string {
	switch {
	case score >= 70:
		return "Good coverage of key concepts."
	case score >= 40:
		return "Decent answer, consider elaborating on core concepts mentioned in the question."
	default:
		return "Try to address the core concepts directly and provide concrete examples."
	}
}
