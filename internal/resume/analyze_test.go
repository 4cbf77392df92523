package resume

import (
	"reflect"
	"strings"
	"testing"
)

const strongFrontendResume = `Experience
Skills
Built a project dashboard with React and TailwindCSS, improved load time by 40%.`

func TestAnalyzeStrongFrontendResume(t *testing.T) {
	report := Analyze(strongFrontendResume, "frontend developer")

	if got, want := report.ExtractedSkills, []string{"React", "TailwindCSS"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("extracted skills = %v, want %v", got, want)
	}
	if len(report.MissingSkills) != 0 {
		t.Fatalf("expected full coverage, missing = %v", report.MissingSkills)
	}
	if report.Fit != 100 {
		t.Fatalf("fit = %d, want 100", report.Fit)
	}
	// 6 points for full fit plus metrics, projects, and structure bonuses.
	if report.ResumeScore != 9 {
		t.Fatalf("resume score = %d, want 9", report.ResumeScore)
	}
	if len(report.Strengths) != 4 {
		t.Fatalf("strengths = %d entries, want 4: %v", len(report.Strengths), report.Strengths)
	}
	if len(report.Weaknesses) != 1 || !strings.Contains(report.Weaknesses[0], "CONTENT DEPTH") {
		t.Fatalf("expected only the brevity weakness, got %v", report.Weaknesses)
	}
	if !strings.Contains(report.Summary, "Strong candidate profile") {
		t.Fatalf("expected strong-candidate recommendation in summary")
	}
	if !strings.Contains(report.Summary, "a 100% role alignment score") {
		t.Fatalf("expected alignment figure in summary, got:\n%s", report.Summary)
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	report := Analyze("", "ml engineer")

	if len(report.ExtractedSkills) != 0 {
		t.Fatalf("expected no skills, got %v", report.ExtractedSkills)
	}
	if got, want := report.MissingSkills, []string{"Python", "NLP", "Docker", "AWS"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("missing skills = %v, want %v", got, want)
	}
	if report.Fit != 0 {
		t.Fatalf("fit = %d, want 0", report.Fit)
	}
	if report.ResumeScore != 0 {
		t.Fatalf("resume score = %d, want 0", report.ResumeScore)
	}
	if len(report.Weaknesses) != 5 {
		t.Fatalf("weaknesses = %d entries, want 5: %v", len(report.Weaknesses), report.Weaknesses)
	}
	if !strings.Contains(report.Summary, "Significant enhancements recommended") {
		t.Fatalf("expected low-score recommendation in summary")
	}
}

func TestAnalyzeFitTruncates(t *testing.T) {
	report := Analyze("react tailwindcss node.js", "full stack engineer")

	if got, want := report.ExtractedSkills, []string{"React", "Node.js", "TailwindCSS"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("extracted skills = %v, want %v", got, want)
	}
	// 3 of 7 desired skills; integer division floors 42.85 to 42.
	if report.Fit != 42 {
		t.Fatalf("fit = %d, want 42", report.Fit)
	}
}

func TestAnalyzeNotesComposition(t *testing.T) {
	report := Analyze("", "ml engineer")

	if len(report.Notes) != 5 {
		t.Fatalf("notes = %d entries, want 5: %v", len(report.Notes), report.Notes)
	}
	if !strings.Contains(report.Notes[0], "PRIORITY SKILL DEVELOPMENT") {
		t.Fatalf("first note should be priority skills, got %q", report.Notes[0])
	}
	if !strings.Contains(report.Notes[1], "AWS") {
		t.Fatalf("secondary note should carry the overflow skill, got %q", report.Notes[1])
	}
	last := report.Notes[len(report.Notes)-1]
	if !strings.Contains(last, "ATS OPTIMIZATION") {
		t.Fatalf("last note should be the ATS reminder, got %q", last)
	}
}

func TestAnalyzeBlankRoleLabel(t *testing.T) {
	report := Analyze("react", "")

	if !strings.Contains(report.Summary, "candidacy for the target role") {
		t.Fatalf("expected fallback role label in summary")
	}
	if report.TargetRole != "" {
		t.Fatalf("target role should echo the input, got %q", report.TargetRole)
	}
}
