package roles

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{raw: "Frontend Developer", want: RoleFrontend},
		{raw: "backend engineer", want: RoleBackend},
		{raw: "Full Stack Developer", want: RoleFullstack},
		{raw: "full-stack engineer", want: RoleFullstack},
		{raw: "ML Engineer", want: RoleML},
		{raw: "Data Scientist", want: RoleDataScientist},
		{raw: "Product Manager", want: RoleGeneric},
		{raw: "", want: RoleGeneric},
		// Precedence: frontend wins over fullstack when both substrings hit.
		{raw: "frontend full stack", want: RoleFrontend},
	}
	for _, tc := range cases {
		if got := Resolve(tc.raw); got != tc.want {
			t.Fatalf("Resolve(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestDesiredSkills(t *testing.T) {
	cases := []struct {
		role Role
		want []string
	}{
		{role: RoleFrontend, want: []string{"React", "TailwindCSS"}},
		{role: RoleBackend, want: []string{"Node.js", "Express", "MongoDB", "Docker"}},
		{role: RoleFullstack, want: []string{"React", "TailwindCSS", "Node.js", "Express", "MongoDB", "Docker", "AWS"}},
		{role: RoleML, want: []string{"Python", "NLP", "Docker", "AWS"}},
		{role: RoleDataScientist, want: []string{"Python", "NLP", "AWS", "MongoDB"}},
		{role: RoleGeneric, want: []string{"React", "Node.js", "MongoDB", "Docker", "AWS"}},
	}
	for _, tc := range cases {
		if got := tc.role.DesiredSkills(); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%v.DesiredSkills() = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	if RoleFullstack.String() != "fullstack" {
		t.Fatalf("unexpected string for fullstack: %q", RoleFullstack.String())
	}
	if RoleGeneric.String() != "generic" {
		t.Fatalf("unexpected string for generic: %q", RoleGeneric.String())
	}
}
