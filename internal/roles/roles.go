// Package roles classifies free-text target roles into a closed enumeration
// and owns the desired-skill set for each role. It replaces scattered
// substring checks across the gap, interview, and resume endpoints with a
// single resolution function.
package roles

import "strings"

// Role is an enumerated target role.
type Role int

const (
	RoleGeneric Role = iota
	RoleFrontend
	RoleBackend
	RoleFullstack
	RoleML
	RoleDataScientist
)

// Resolve classifies a free-text role. Precedence follows the order the
// checks were historically evaluated in: frontend, backend, fullstack, ml,
// data scientist, then generic.
func Resolve(raw string) Role {
	role := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(role, "frontend"):
		return RoleFrontend
	case strings.Contains(role, "backend"):
		return RoleBackend
	case (strings.Contains(role, "full") && strings.Contains(role, "stack")) || strings.Contains(role, "full-stack"):
		return RoleFullstack
	case strings.Contains(role, "ml"):
		return RoleML
	case strings.Contains(role, "data") && strings.Contains(role, "scientist"):
		return RoleDataScientist
	default:
		return RoleGeneric
	}
}

// DesiredSkills returns the ordered skill set expected for the role.
func (r Role) DesiredSkills() []string {
	switch r {
	case RoleFrontend:
		return []string{"React", "TailwindCSS"}
	case RoleBackend:
		return []string{"Node.js", "Express", "MongoDB", "Docker"}
	case RoleFullstack:
		return []string{"React", "TailwindCSS", "Node.js", "Express", "MongoDB", "Docker", "AWS"}
	case RoleML:
		return []string{"Python", "NLP", "Docker", "AWS"}
	case RoleDataScientist:
		return []string{"Python", "NLP", "AWS", "MongoDB"}
	default:
		return []string{"React", "Node.js", "MongoDB", "Docker", "AWS"}
	}
}

func (r Role) String() string {
	switch r {
	case RoleFrontend:
		return "frontend"
	case RoleBackend:
		return "backend"
	case RoleFullstack:
		return "fullstack"
	case RoleML:
		return "ml"
	case RoleDataScientist:
		return "data-scientist"
	default:
		return "generic"
	}
}
