// Package resume produces the rule-based resume analysis report.
package resume

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"skillbridge-backend/internal/roles"
)

// knownSkills is the closed catalog scanned for in resume text.
var knownSkills = []string{
	"JavaScript", "React", "Node.js", "Express", "MongoDB", "Python", "FastAPI", "Docker", "AWS", "NLP", "TailwindCSS",
}

// Report is the full analysis payload for a resume.
type Report struct {
	Summary         string   `json:"summary"`
	TargetRole      string   `json:"targetRole"`
	Fit             int      `json:"fit"`
	ResumeScore     int      `json:"resume_score"`
	ExtractedSkills []string `json:"extracted_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Notes           []string `json:"notes"`
}

type contentSignals struct {
	hasMetrics     bool
	hasProjects    bool
	wellStructured bool
	goodLength     bool
	words          int
}

// Analyze scores resume text against a target role using keyword scans and
// fixed heuristics. It never fails; empty text yields a low-score report.
func Analyze(text, targetRole string) Report {
	lower := strings.ToLower(text)

	extracted := make([]string, 0, len(knownSkills))
	for _, s := range knownSkills {
		if strings.Contains(lower, strings.ToLower(s)) {
			extracted = append(extracted, s)
		}
	}

	desired := roles.Resolve(targetRole).DesiredSkills()
	recommended := make([]string, 0, len(desired))
	for _, s := range desired {
		if !containsString(extracted, s) {
			recommended = append(recommended, s)
		}
	}

	sig := detectSignals(text, lower)

	fit := 0
	if len(desired) > 0 {
		fit = 100 * (len(desired) - len(recommended)) / len(desired)
	}

	scoreBase := float64(fit) / 100.0 * 6.0
	bonus := 0.0
	if sig.hasMetrics {
		bonus++
	}
	if sig.wellStructured {
		bonus++
	}
	if sig.hasProjects {
		bonus++
	}
	if sig.goodLength {
		bonus++
	}
	resumeScore := int(math.Round(scoreBase + bonus))
	if resumeScore < 0 {
		resumeScore = 0
	}
	if resumeScore > 10 {
		resumeScore = 10
	}

	return Report{
		Summary:         executiveSummary(targetRole, extracted, recommended, desired, sig, fit, resumeScore),
		TargetRole:      targetRole,
		Fit:             fit,
		ResumeScore:     resumeScore,
		ExtractedSkills: extracted,
		MissingSkills:   recommended,
		Strengths:       buildStrengths(extracted, sig),
		Weaknesses:      buildWeaknesses(recommended, sig),
		Notes:           buildNotes(targetRole, extracted, recommended, fit, resumeScore),
	}
}

func detectSignals(text, lower string) contentSignals {
	hasDigit := false
	for _, r := range text {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}

	structureHits := 0
	for _, section := range []string{"experience", "education", "skills", "projects", "summary"} {
		if strings.Contains(lower, section) {
			structureHits++
		}
	}

	words := len(strings.Fields(text))
	if words < 1 {
		words = 1
	}

	return contentSignals{
		hasMetrics:     hasDigit || containsAny(lower, []string{"%", "percent", "increased", "decreased", "improved", "reduced", "growth", "roi"}),
		hasProjects:    containsAny(lower, []string{"project", "built", "developed", "implemented", "deployed", "launched"}),
		wellStructured: structureHits >= 2,
		goodLength:     words >= 200 && words <= 1500,
		words:          words,
	}
}

func buildStrengths(extracted []string, sig contentSignals) []string {
	strengths := []string{}
	if len(extracted) > 0 {
		preview := joinFirst(extracted, 4)
		ellipsis := ""
		if len(extracted) > 4 {
			ellipsis = "..."
		}
		strengths = append(strengths, fmt.Sprintf("TECHNICAL PROFICIENCY: Demonstrates solid command of %d key technologies including %s%s. This technical foundation aligns well with industry standards.", len(extracted), preview, ellipsis))
	}
	if sig.hasMetrics {
		strengths = append(strengths, "QUANTIFIED ACHIEVEMENTS: Excellent use of specific metrics, percentages, and measurable outcomes that clearly demonstrate impact and value delivered to previous organizations.")
	}
	if sig.hasProjects {
		strengths = append(strengths, "PROJECT PORTFOLIO: Strong showcase of hands-on development experience with practical implementations, indicating ability to translate technical skills into real-world solutions.")
	}
	if sig.wellStructured {
		strengths = append(strengths, "PROFESSIONAL PRESENTATION: Well-organized resume structure with clear sections, making it easy for recruiters and ATS systems to parse and evaluate your qualifications.")
	}
	if sig.goodLength {
		strengths = append(strengths, "OPTIMAL CONTENT LENGTH: Appropriate resume length that provides comprehensive information without overwhelming the reader, demonstrating good communication skills.")
	}
	return strengths
}

func buildWeaknesses(recommended []string, sig contentSignals) []string {
	weaknesses := []string{}
	if len(recommended) > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("SKILL GAPS: Missing %d critical skills for this role, particularly %s. Consider online courses, bootcamps, or personal projects to develop these competencies.", len(recommended), joinFirst(recommended, 3)))
	}
	if !sig.hasMetrics {
		weaknesses = append(weaknesses, "IMPACT QUANTIFICATION: Lacks specific numbers and measurable achievements. Add metrics like 'Improved performance by 25%', 'Reduced load time by 40%', or 'Managed team of 5 developers' to demonstrate concrete value.")
	}
	if !sig.hasProjects {
		weaknesses = append(weaknesses, "PROJECT SHOWCASE: Limited evidence of practical application. Include 2-3 recent projects with technology stack, challenges solved, and outcomes achieved to demonstrate hands-on experience.")
	}
	if !sig.wellStructured {
		weaknesses = append(weaknesses, "STRUCTURAL CLARITY: Resume organization needs improvement. Ensure clear sections for Professional Experience, Technical Skills, Education, and Projects with consistent formatting throughout.")
	}
	if !sig.goodLength {
		if sig.words < 200 {
			weaknesses = append(weaknesses, "CONTENT DEPTH: Resume appears too brief. Expand with more detailed descriptions of responsibilities, achievements, and technical implementations to reach 1-2 pages.")
		} else {
			weaknesses = append(weaknesses, "CONTENT CONCISENESS: Resume may be too lengthy. Focus on most relevant experiences and achievements, removing outdated or less relevant information to improve readability.")
		}
	}
	return weaknesses
}

func executiveSummary(targetRole string, extracted, recommended, desired []string, sig contentSignals, fit, resumeScore int) string {
	roleLabel := targetRole
	if roleLabel == "" {
		roleLabel = "target"
	}

	extractedPreview := "Limited technical skills detected"
	if len(extracted) > 0 {
		extractedPreview = joinFirst(extracted, 8)
	}
	missingPreview := "None - excellent keyword coverage"
	if len(recommended) > 0 {
		missingPreview = joinFirst(recommended, 5)
	}

	skillsMatchPct := 0
	if len(desired) > 0 {
		skillsMatchPct = len(extracted) * 100 / len(desired)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "EXECUTIVE SUMMARY:\n")
	fmt.Fprintf(&b, "This resume analysis evaluates your candidacy for the %s role. Your current profile demonstrates %d relevant technical skills with a %d%% role alignment score. The overall resume quality scores %d/10 based on technical competency, quantified achievements, project demonstrations, and structural clarity.\n\n", roleLabel, len(extracted), fit, resumeScore)
	fmt.Fprintf(&b, "TECHNICAL COMPETENCY ASSESSMENT:\n")
	fmt.Fprintf(&b, "Your resume showcases proficiency in %d key technologies: %s. For the %s position, you're missing %d critical skills that could significantly impact your candidacy.\n\n", len(extracted), extractedPreview, roleLabel, len(recommended))
	fmt.Fprintf(&b, "CONTENT QUALITY EVALUATION:\n")
	b.WriteString(pick(sig.hasMetrics,
		"Strong quantified achievements detected - excellent use of metrics and impact statements.",
		"Missing quantified achievements - consider adding specific numbers, percentages, and measurable outcomes.") + "\n")
	b.WriteString(pick(sig.hasProjects,
		"Demonstrates hands-on project experience effectively.",
		"Limited project showcase - highlight recent development work and technical implementations.") + "\n")
	b.WriteString(pick(sig.wellStructured,
		"Well-structured with clear sections and professional formatting.",
		"Structure needs improvement - ensure clear Experience, Education, and Skills sections.") + "\n")
	b.WriteString(pick(sig.goodLength,
		"Appropriate length for comprehensive review.",
		"Length optimization needed - aim for 1-2 pages with focused, relevant content.") + "\n\n")
	fmt.Fprintf(&b, "ATS COMPATIBILITY & KEYWORD ANALYSIS:\n")
	fmt.Fprintf(&b, "Your resume contains %d of %d target keywords for this role. Missing keywords that could improve ATS ranking: %s.\n\n", len(extracted), len(desired), missingPreview)
	fmt.Fprintf(&b, "SCORING BREAKDOWN:\n")
	fmt.Fprintf(&b, "• Technical Skills Match: %d%% (%d/%d skills)\n", skillsMatchPct, len(extracted), len(desired))
	fmt.Fprintf(&b, "• Achievement Quantification: %s\n", pick(sig.hasMetrics, "✓ Strong", "✗ Needs Improvement"))
	fmt.Fprintf(&b, "• Project Demonstration: %s\n", pick(sig.hasProjects, "✓ Present", "✗ Missing"))
	fmt.Fprintf(&b, "• Structure & Formatting: %s\n", pick(sig.wellStructured, "✓ Professional", "✗ Needs Work"))
	fmt.Fprintf(&b, "• Content Length: %s\n\n", pick(sig.goodLength, "✓ Optimal", "✗ Suboptimal"))
	fmt.Fprintf(&b, "OVERALL RECOMMENDATION:\n")
	switch {
	case resumeScore >= 7:
		b.WriteString("Strong candidate profile with minor optimizations needed.")
	case resumeScore >= 5:
		b.WriteString("Good foundation requiring strategic improvements.")
	default:
		b.WriteString("Significant enhancements recommended before applying.")
	}
	return b.String()
}

func buildNotes(targetRole string, extracted, recommended []string, fit, resumeScore int) []string {
	roleLabel := targetRole
	if roleLabel == "" {
		roleLabel = "target"
	}

	notes := []string{}
	if len(recommended) > 0 {
		notes = append(notes, fmt.Sprintf("PRIORITY SKILL DEVELOPMENT: Focus immediately on %s as these are critical for the %s role. Recommended learning path: online courses → personal projects → portfolio showcase.", joinFirst(recommended, 3), roleLabel))
		if len(recommended) > 3 {
			notes = append(notes, fmt.Sprintf("SECONDARY SKILLS: Consider developing %s to further strengthen your candidacy and stand out from other applicants.", joinFirst(recommended[3:], 3)))
		}
	}
	if len(extracted) > 0 {
		notes = append(notes, fmt.Sprintf("LEVERAGE EXISTING STRENGTHS: Your proficiency in %s is valuable. Consider highlighting specific projects or achievements using these technologies to demonstrate depth of experience.", joinFirst(extracted, 6)))
	}
	if resumeScore < 7 {
		notes = append(notes, "IMMEDIATE ACTIONS: 1) Add 2-3 quantified achievements per role, 2) Include links to GitHub/portfolio, 3) Tailor keywords to job descriptions, 4) Get feedback from industry professionals.")
	}
	if fit < 70 {
		notes = append(notes, fmt.Sprintf("ROLE ALIGNMENT: Current %d%% role fit suggests significant skill gaps. Consider targeting roles that better match your current skillset while developing missing competencies, or invest 3-6 months in intensive skill development.", fit))
	}
	notes = append(notes, "ATS OPTIMIZATION: Ensure your resume includes exact keyword matches from job postings, uses standard section headers, and is saved in both PDF and Word formats for different application systems.")
	return notes
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
