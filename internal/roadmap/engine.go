package roadmap

import "strings"

// Fixed resource lists for the closing weeks; these replace, not extend,
// whatever the catalog would have produced.
var capstoneResources = []Resource{
	{Title: "Portfolio Project Ideas", URL: "https://github.com/practical-tutorials/project-based-learning", Type: "project-ideas"},
	{Title: "Clean Architecture Guide", URL: "https://blog.cleancoder.com/uncle-bob/2012/08/13/the-clean-architecture.html", Type: "guide"},
	{Title: "CI/CD Best Practices", URL: "https://docs.github.com/en/actions/learn-github-actions", Type: "documentation"},
}

var assessmentResources = []Resource{
	{Title: "How to Write a Great README", URL: "https://www.makeareadme.com/", Type: "guide"},
	{Title: "Creating Demo Videos", URL: "https://www.loom.com/", Type: "tool"},
	{Title: "Technical Interview Stories", URL: "https://www.pramp.com/blog/how-to-tell-your-story-during-a-technical-interview", Type: "guide"},
}

// Generate turns a set of missing skills into an ordered multi-week plan.
// Nil preferences or signals fall back to neutral defaults. The function is
// pure: it reads only its arguments and the package catalogs, so concurrent
// calls need no coordination.
func Generate(missing []string, prefs *Preferences, signals *InterviewSignals) []WeekPlan {
	cleaned := cleanSkills(missing)
	if len(cleaned) == 0 {
		return []WeekPlan{}
	}

	p := DefaultPreferences()
	if prefs != nil {
		p = prefs.normalized()
	}
	var sig InterviewSignals
	if signals != nil {
		sig = *signals
	}

	prioritized := prioritize(cleaned, p.Focus)

	b := planBuilder{prefs: p}
	for _, skill := range prioritized {
		b.addWeek("Foundations: "+skill, []string{
			"Read the official " + skill + " docs and summarize key concepts",
			"Complete a beginner tutorial/course for " + skill,
			"Practice: implement 2-3 small exercises using " + skill,
		}, skill, bucketFoundations)
		b.addWeek("Project: Build with "+skill, []string{
			"Design and build a mini app using " + skill,
			"Add tests (unit/integration) and linting for the project",
			"Document learnings and challenges; push to a public repo",
		}, skill, bucketProject)
		if matchesWeakTopic(skill, sig.WeakTopics) {
			b.addWeek("Reinforcement: "+skill, []string{
				"Targeted practice on weak areas in " + skill + " (based on interview)",
				"Implement a small feature addressing an identified gap in " + skill,
				"Summarize lessons learned and update your notes",
			}, skill, bucketProject)
		}
	}

	capstoneTasks := []string{
		"Plan a portfolio-level project combining the learned skills",
		"Implement core features, focusing on clean architecture",
		"Add basic CI (tests) and deploy locally or to a free tier",
	}
	if sig.AvgScore >= 70 {
		capstoneTasks = append(capstoneTasks, "Stretch: add an advanced feature and write a postmortem")
	}
	if sig.AvgScore < 50 {
		capstoneTasks = append(capstoneTasks, "Scope down and solidify fundamentals before expanding")
	}
	b.addWeek("Capstone: Integrate "+strings.Join(prioritized, ", "), capstoneTasks, "", bucketFoundations)
	b.overwriteResources(capstoneResources)

	b.addWeek("Assessment & Reflection", []string{
		"Create a README and short demo video of the capstone",
		"Write a blog/notes highlighting " + showcase(sig.StrengthTopics),
		"Prepare interview stories around the project (problem, approach, impact)",
	}, "", bucketFoundations)
	b.overwriteResources(assessmentResources)

	return b.weeks
}

// cleanSkills trims entries and drops empties; ordering is preserved.
func cleanSkills(missing []string) []string {
	out := make([]string, 0, len(missing))
	for _, m := range missing {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// prioritize orders skills by the caller's focus areas, then appends the
// remaining missing skills in their original order. First seen wins; a skill
// appears at most once.
func prioritize(missing []string, focus []string) []string {
	prioritized := make([]string, 0, len(missing))
	for _, area := range focus {
		for _, s := range areaSkillMap[area] {
			if containsString(missing, s) && !containsString(prioritized, s) {
				prioritized = append(prioritized, s)
			}
		}
	}
	for _, s := range missing {
		if !containsString(prioritized, s) {
			prioritized = append(prioritized, s)
		}
	}
	return prioritized
}

// matchesWeakTopic reports whether any weak topic mentions the skill. The
// test is deliberately a lowercase substring containment check, mirroring
// how the interview subsystem reports topics as free text.
func matchesWeakTopic(skill string, weakTopics []string) bool {
	needle := strings.ToLower(skill)
	for _, t := range weakTopics {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func showcase(strengthTopics []string) string {
	topics := make([]string, 0, 3)
	for _, t := range strengthTopics {
		if len(topics) == 3 {
			break
		}
		topics = append(topics, t)
	}
	if len(topics) == 0 {
		return "key concepts"
	}
	return strings.Join(topics, ", ")
}

type planBuilder struct {
	prefs Preferences
	weeks []WeekPlan
}

// addWeek applies pacing to the base tasks, attaches resources when a skill
// is given, and appends the week. Week numbers stay gapless because they are
// derived from the append position.
func (b *planBuilder) addWeek(milestone string, tasks []string, skill string, bucket resourceBucket) {
	adjusted := b.paceTasks(tasks)

	resources := []Resource{}
	if skill != "" {
		resources = resolveResources(skill, bucket)
	}

	b.weeks = append(b.weeks, WeekPlan{
		Week:              len(b.weeks) + 1,
		Milestone:         milestone,
		Tasks:             adjusted,
		LearningResources: resources,
	})
}

func (b *planBuilder) paceTasks(tasks []string) []string {
	out := append([]string(nil), tasks...)
	switch {
	case b.prefs.Pace == PaceFast && b.prefs.AvailabilityHours >= 8:
		out = append(out, "Optional advanced reading/practice for stretch goals")
	case b.prefs.Pace == PaceSlow || b.prefs.AvailabilityHours < 5:
		if len(out) > 2 {
			out = out[:2]
		}
		out = append(out, "Reflect: write notes on key learnings")
	}
	return out
}

// overwriteResources replaces the resources of the most recent week.
func (b *planBuilder) overwriteResources(resources []Resource) {
	if len(b.weeks) == 0 {
		return
	}
	b.weeks[len(b.weeks)-1].LearningResources = cloneResources(resources)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
