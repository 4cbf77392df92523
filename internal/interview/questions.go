// Package interview fabricates mock interview questions and scores answers.
package interview

import (
	"strings"

	"skillbridge-backend/internal/roles"
)

// ResumeAnalysis is the detailed report produced by the resume endpoint,
// replayed here to sharpen question selection.
type ResumeAnalysis struct {
	DetectedSkills []string `json:"detectedSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	RoleFit        int      `json:"roleFit"`
	Score          int      `json:"score"`
}

// RoleQuestions returns the standard question bank for a role.
func RoleQuestions(role roles.Role) []string {
	switch role {
	case roles.RoleFullstack:
		return []string{
			"Explain how React's component state and hooks work together to manage UI state.",
			"Describe the Node.js event loop and how it impacts asynchronous code.",
			"How would you design a REST API with Express and MongoDB, including schema considerations?",
			"What are Docker containers and images, and how would you containerize a Node/React app?",
			"How do you secure AWS resources (e.g., S3, EC2) using IAM best practices?",
		}
	case roles.RoleFrontend:
		return []string{
			"What are React hooks and when would you use useEffect vs useMemo?",
			"How do you optimize performance in a large React app (code splitting, memoization)?",
			"Explain how CSS frameworks like TailwindCSS can improve developer productivity.",
		}
	case roles.RoleBackend:
		return []string{
			"Explain the Node.js event loop and non-blocking I/O.",
			"How would you design scalable APIs with Express, including auth and rate limiting?",
			"Discuss database indexing strategies in MongoDB to improve query performance.",
		}
	default:
		return []string{
			"Tell me about a project you built and what you learned.",
			"How do you approach debugging complex issues?",
			"Describe how you collaborate in a team setting.",
		}
	}
}

// ResumeQuestions builds personalized questions from resume text, topped up
// with the role bank and capped at five.
func ResumeQuestions(resumeText string, role roles.Role) []string {
	lower := strings.ToLower(resumeText)
	var questions []string

	hasProjects := containsAny(lower, []string{"project", "built", "developed", "implemented", "created", "designed", "deployed", "architected"})
	hasSenior := containsAny(lower, []string{"senior", "lead", "principal", "architect", "manager", "director"})
	hasAchievements := containsAny(lower, []string{"reduced", "improved", "increased", "optimized", "delivered", "achieved"})
	hasTeam := containsAny(lower, []string{"team", "collaborated", "mentored", "managed", "coordinated"})
	hasScale := containsAny(lower, []string{"million", "thousand", "users", "requests", "traffic", "scale"})

	if hasProjects {
		if hasAchievements {
			questions = append(questions, "I see you've delivered measurable results in your projects. Can you walk me through a specific project where you achieved significant improvements and explain your technical approach?")
		} else {
			questions = append(questions, "Tell me about one of the most technically challenging projects on your resume. What obstacles did you face and how did you solve them?")
		}
	}

	if strings.Contains(lower, "react") {
		if strings.Contains(lower, "redux") || strings.Contains(lower, "state") {
			questions = append(questions, "I notice you have React and state management experience. Can you explain a complex state management scenario you've handled and why you chose your particular approach?")
		} else {
			questions = append(questions, "Your resume shows React experience. Can you describe how you've optimized React applications for performance and what patterns you follow for component architecture?")
		}
	}

	if strings.Contains(lower, "node") || strings.Contains(lower, "express") {
		if strings.Contains(lower, "microservices") || strings.Contains(lower, "api") {
			questions = append(questions, "I see you have Node.js and API experience. How do you design scalable backend architectures, and what patterns do you use for error handling and logging?")
		} else {
			questions = append(questions, "Your resume mentions Node.js. Can you explain how you handle asynchronous operations and what strategies you use for performance optimization?")
		}
	}

	if strings.Contains(lower, "mongodb") || strings.Contains(lower, "database") {
		if hasScale {
			questions = append(questions, "I notice you have database experience with scale considerations. How do you approach database optimization for high-traffic applications?")
		} else {
			questions = append(questions, "Tell me about your database design approach. How do you handle data modeling and ensure query performance?")
		}
	}

	if strings.Contains(lower, "docker") {
		if strings.Contains(lower, "kubernetes") || strings.Contains(lower, "orchestration") {
			questions = append(questions, "I see you have containerization and orchestration experience. Can you explain how you've implemented container orchestration and managed deployments?")
		} else {
			questions = append(questions, "Your resume shows Docker experience. How do you approach containerization strategy and what benefits have you seen in your projects?")
		}
	}

	if strings.Contains(lower, "aws") || strings.Contains(lower, "cloud") {
		if strings.Contains(lower, "security") || strings.Contains(lower, "iam") {
			questions = append(questions, "I notice cloud and security experience on your resume. How do you implement security best practices in cloud environments and manage access controls?")
		} else {
			questions = append(questions, "Tell me about your cloud architecture experience. How do you design for scalability and cost optimization in cloud environments?")
		}
	}

	if hasSenior {
		if hasTeam {
			questions = append(questions, "Based on your leadership experience, how do you approach technical decision-making in a team environment and ensure knowledge sharing?")
		} else {
			questions = append(questions, "I see you have senior-level experience. How do you approach code reviews and maintaining technical standards across projects?")
		}
	}

	if hasTeam && !hasSenior {
		questions = append(questions, "I notice you have collaborative experience. How do you handle technical disagreements in a team and ensure effective communication?")
	}

	if hasAchievements {
		questions = append(questions, "Your resume shows measurable achievements. Can you describe a specific optimization or improvement you made and walk me through your problem-solving process?")
	}

	if hasScale {
		questions = append(questions, "I see you've worked with large-scale systems. What challenges have you faced with performance and scalability, and how did you address them?")
	}

	if strings.Contains(lower, "startup") || strings.Contains(lower, "entrepreneur") {
		questions = append(questions, "I see you have startup experience. How do you balance rapid development with maintaining code quality and technical debt?")
	}

	questions = append(questions, RoleQuestions(role)...)
	return capQuestions(questions, 5)
}

// DetailedQuestions builds questions from a prior resume analysis, falling
// back to the role bank when too few probes fire. Capped at six.
func DetailedQuestions(role roles.Role, analysis ResumeAnalysis) []string {
	var questions []string

	for i, skill := range analysis.DetectedSkills {
		if i == 3 {
			break
		}
		lower := strings.ToLower(skill)
		switch {
		case strings.Contains(lower, "react"):
			questions = append(questions, "I see you have "+skill+" experience on your resume. Can you describe a complex React application you've built and explain your approach to state management and component optimization?")
		case strings.Contains(lower, "node") || strings.Contains(lower, "javascript"):
			questions = append(questions, "Your resume shows "+skill+" expertise. Can you walk me through how you've handled scalability challenges in Node.js applications and your approach to asynchronous programming?")
		case strings.Contains(lower, "python"):
			questions = append(questions, "I notice "+skill+" on your resume. Can you describe a Python project where you had to optimize performance and explain your debugging process?")
		case strings.Contains(lower, "database") || strings.Contains(lower, "sql") || strings.Contains(lower, "mongodb"):
			questions = append(questions, "Your "+skill+" experience is evident on your resume. How do you approach database schema design and what strategies do you use for query optimization?")
		case strings.Contains(lower, "docker") || strings.Contains(lower, "kubernetes"):
			questions = append(questions, "I see "+skill+" experience listed. Can you explain how you've implemented containerization in production environments and handled deployment challenges?")
		case strings.Contains(lower, "aws") || strings.Contains(lower, "cloud"):
			questions = append(questions, "Your resume mentions "+skill+". How do you design cloud architectures for scalability and what security practices do you implement?")
		}
	}

	for i, missing := range analysis.MissingSkills {
		if i == 2 {
			break
		}
		questions = append(questions, "I notice "+missing+" isn't prominently featured on your resume but is important for this role. How would you approach learning "+missing+" and integrating it into your current skill set?")
	}

	if len(analysis.Strengths) > 0 {
		questions = append(questions, "Your resume highlights strengths in "+joinFirst(analysis.Strengths, 2)+". Can you provide a specific example of how you've leveraged these strengths to solve a complex technical problem?")
	}

	if len(analysis.Weaknesses) > 0 {
		questions = append(questions, "Looking at areas for growth like "+joinFirst(analysis.Weaknesses, 2)+", how do you typically approach improving in areas where you want to develop further?")
	}

	if analysis.RoleFit < 70 {
		questions = append(questions, "Based on your background, what aspects of this role excite you most, and how do you plan to bridge any skill gaps to excel in this position?")
	} else if analysis.RoleFit >= 85 {
		questions = append(questions, "Your background seems well-aligned with this role. What unique perspective or advanced techniques would you bring to elevate the team's technical capabilities?")
	}

	if analysis.Score < 70 {
		questions = append(questions, "What recent projects or learning experiences have you had that might not be fully reflected on your resume but demonstrate your growth as a developer?")
	}

	if len(analysis.DetectedSkills) > 0 {
		primary := analysis.DetectedSkills[0]
		questions = append(questions, "Describe a time when you had to learn a new technology quickly to complement your "+primary+" skills. How did you approach the learning process?")
	}

	if len(questions) < 3 {
		questions = append(questions, RoleQuestions(role)...)
	}

	return capQuestions(questions, 6)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
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

func capQuestions(questions []string, limit int) []string {
	if len(questions) > limit {
		questions = questions[:limit]
	}
	out := make([]string, len(questions))
	copy(out, questions)
	return out
}
