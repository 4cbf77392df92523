package roadmap

import "strings"

// resourceBucket selects which side of the catalog a milestone draws from.
type resourceBucket string

const (
	bucketFoundations resourceBucket = "foundations"
	bucketProject     resourceBucket = "project"
)

// areaSkillMap orders the skills each focus area prioritizes. Read-only,
// shared across concurrent Generate calls.
var areaSkillMap = map[string][]string{
	"frontend": {"React", "TailwindCSS"},
	"backend":  {"Node.js", "Express", "MongoDB"},
	"cloud":    {"AWS", "Docker"},
	"ml":       {"Python", "NLP"},
}

type skillResources struct {
	foundations []Resource
	project     []Resource
}

// catalogOrder fixes the enumeration order for fallback matching so that
// "first match" is deterministic.
var catalogOrder = []string{
	"React", "Node.js", "Python", "MongoDB", "Express", "AWS", "Docker", "TailwindCSS", "NLP",
}

var resourceCatalog = map[string]skillResources{
	"React": {
		foundations: []Resource{
			{Title: "React Official Documentation", URL: "https://react.dev/learn", Type: "documentation"},
			{Title: "React Tutorial for Beginners", URL: "https://www.freecodecamp.org/news/react-beginner-handbook/", Type: "tutorial"},
			{Title: "React Hooks Explained", URL: "https://www.youtube.com/watch?v=O6P86uwfdR0", Type: "video"},
		},
		project: []Resource{
			{Title: "React Project Ideas", URL: "https://github.com/florinpop17/app-ideas", Type: "project-ideas"},
			{Title: "Testing React Apps", URL: "https://testing-library.com/docs/react-testing-library/intro/", Type: "documentation"},
			{Title: "React Best Practices", URL: "https://react.dev/learn/thinking-in-react", Type: "guide"},
		},
	},
	"Node.js": {
		foundations: []Resource{
			{Title: "Node.js Official Docs", URL: "https://nodejs.org/en/docs/", Type: "documentation"},
			{Title: "Node.js Tutorial", URL: "https://www.w3schools.com/nodejs/", Type: "tutorial"},
			{Title: "Node.js Crash Course", URL: "https://www.youtube.com/watch?v=fBNz5xF-Kx4", Type: "video"},
		},
		project: []Resource{
			{Title: "Express.js Guide", URL: "https://expressjs.com/en/starter/installing.html", Type: "documentation"},
			{Title: "Node.js Testing with Jest", URL: "https://jestjs.io/docs/getting-started", Type: "documentation"},
			{Title: "Node.js Best Practices", URL: "https://github.com/goldbergyoni/nodebestpractices", Type: "guide"},
		},
	},
	"Python": {
		foundations: []Resource{
			{Title: "Python Official Tutorial", URL: "https://docs.python.org/3/tutorial/", Type: "documentation"},
			{Title: "Python for Beginners", URL: "https://www.python.org/about/gettingstarted/", Type: "tutorial"},
			{Title: "Python Crash Course", URL: "https://www.youtube.com/watch?v=rfscVS0vtbw", Type: "video"},
		},
		project: []Resource{
			{Title: "Python Project Ideas", URL: "https://github.com/karan/Projects", Type: "project-ideas"},
			{Title: "Python Testing with pytest", URL: "https://docs.pytest.org/en/stable/", Type: "documentation"},
			{Title: "Python Best Practices", URL: "https://realpython.com/python-code-quality/", Type: "guide"},
		},
	},
	"MongoDB": {
		foundations: []Resource{
			{Title: "MongoDB University", URL: "https://university.mongodb.com/", Type: "course"},
			{Title: "MongoDB Tutorial", URL: "https://www.mongodb.com/docs/manual/tutorial/", Type: "tutorial"},
			{Title: "MongoDB Crash Course", URL: "https://www.youtube.com/watch?v=pWbMrx5rVBE", Type: "video"},
		},
		project: []Resource{
			{Title: "MongoDB with Node.js", URL: "https://www.mongodb.com/docs/drivers/node/current/", Type: "documentation"},
			{Title: "MongoDB Schema Design", URL: "https://www.mongodb.com/docs/manual/data-modeling/", Type: "guide"},
			{Title: "MongoDB Performance", URL: "https://www.mongodb.com/docs/manual/administration/analyzing-mongodb-performance/", Type: "guide"},
		},
	},
	"Express": {
		foundations: []Resource{
			{Title: "Express.js Official Guide", URL: "https://expressjs.com/en/guide/routing.html", Type: "documentation"},
			{Title: "Express.js Tutorial", URL: "https://www.tutorialspoint.com/expressjs/", Type: "tutorial"},
			{Title: "Express.js Crash Course", URL: "https://www.youtube.com/watch?v=L72fhGm1tfE", Type: "video"},
		},
		project: []Resource{
			{Title: "Express.js Best Practices", URL: "https://expressjs.com/en/advanced/best-practice-security.html", Type: "guide"},
			{Title: "Express.js Testing", URL: "https://www.albertgao.xyz/2017/05/24/how-to-test-expressjs-with-jest-and-supertest/", Type: "tutorial"},
			{Title: "Express.js Middleware", URL: "https://expressjs.com/en/guide/using-middleware.html", Type: "documentation"},
		},
	},
	"AWS": {
		foundations: []Resource{
			{Title: "AWS Getting Started", URL: "https://aws.amazon.com/getting-started/", Type: "documentation"},
			{Title: "AWS Free Tier", URL: "https://aws.amazon.com/free/", Type: "tutorial"},
			{Title: "AWS Fundamentals", URL: "https://www.youtube.com/watch?v=ulprqHHWlng", Type: "video"},
		},
		project: []Resource{
			{Title: "AWS Project Ideas", URL: "https://aws.amazon.com/getting-started/hands-on/", Type: "project-ideas"},
			{Title: "AWS Well-Architected", URL: "https://aws.amazon.com/architecture/well-architected/", Type: "guide"},
			{Title: "AWS Security Best Practices", URL: "https://aws.amazon.com/architecture/security-identity-compliance/", Type: "guide"},
		},
	},
	"Docker": {
		foundations: []Resource{
			{Title: "Docker Official Tutorial", URL: "https://docs.docker.com/get-started/", Type: "documentation"},
			{Title: "Docker for Beginners", URL: "https://docker-curriculum.com/", Type: "tutorial"},
			{Title: "Docker Crash Course", URL: "https://www.youtube.com/watch?v=fqMOX6JJhGo", Type: "video"},
		},
		project: []Resource{
			{Title: "Docker Best Practices", URL: "https://docs.docker.com/develop/dev-best-practices/", Type: "guide"},
			{Title: "Docker Compose Tutorial", URL: "https://docs.docker.com/compose/gettingstarted/", Type: "tutorial"},
			{Title: "Docker Security", URL: "https://docs.docker.com/engine/security/", Type: "guide"},
		},
	},
	"TailwindCSS": {
		foundations: []Resource{
			{Title: "Tailwind CSS Documentation", URL: "https://tailwindcss.com/docs", Type: "documentation"},
			{Title: "Tailwind CSS Tutorial", URL: "https://www.youtube.com/watch?v=UBOj6rqRUME", Type: "video"},
			{Title: "Tailwind CSS Components", URL: "https://tailwindui.com/components", Type: "examples"},
		},
		project: []Resource{
			{Title: "Tailwind CSS Best Practices", URL: "https://tailwindcss.com/docs/reusing-styles", Type: "guide"},
			{Title: "Tailwind CSS with React", URL: "https://tailwindcss.com/docs/guides/create-react-app", Type: "tutorial"},
			{Title: "Responsive Design with Tailwind", URL: "https://tailwindcss.com/docs/responsive-design", Type: "documentation"},
		},
	},
	"NLP": {
		foundations: []Resource{
			{Title: "Natural Language Processing with Python", URL: "https://www.nltk.org/book/", Type: "book"},
			{Title: "spaCy Tutorial", URL: "https://spacy.io/usage/spacy-101", Type: "tutorial"},
			{Title: "NLP Course by Hugging Face", URL: "https://huggingface.co/course/chapter1/1", Type: "course"},
		},
		project: []Resource{
			{Title: "NLP Project Ideas", URL: "https://github.com/keon/awesome-nlp", Type: "project-ideas"},
			{Title: "Transformers Library", URL: "https://huggingface.co/docs/transformers/index", Type: "documentation"},
			{Title: "NLP with PyTorch", URL: "https://pytorch.org/tutorials/beginner/nlp/", Type: "tutorial"},
		},
	},
}

// CatalogSize reports how many skills carry curated resources.
func CatalogSize() int {
	return len(resourceCatalog)
}

// resolveResources implements the lookup rule: exact catalog match first,
// then the first case-insensitive substring match in catalog order, and
// finally synthesized search links for unknown skills.
func resolveResources(skill string, bucket resourceBucket) []Resource {
	key := skill
	if _, ok := resourceCatalog[key]; !ok {
		lower := strings.ToLower(skill)
		for _, candidate := range catalogOrder {
			cl := strings.ToLower(candidate)
			if strings.Contains(lower, cl) || strings.Contains(cl, lower) {
				key = candidate
				break
			}
		}
	}
	if entry, ok := resourceCatalog[key]; ok {
		if bucket == bucketProject {
			return cloneResources(entry.project)
		}
		return cloneResources(entry.foundations)
	}
	return genericResources(skill, bucket)
}

func genericResources(skill string, bucket resourceBucket) []Resource {
	if bucket == bucketProject {
		return []Resource{
			{Title: skill + " Project Ideas", URL: "https://www.google.com/search?q=" + skill + "+project+ideas", Type: "project-ideas"},
			{Title: skill + " Best Practices", URL: "https://www.google.com/search?q=" + skill + "+best+practices", Type: "guide"},
			{Title: skill + " Testing Guide", URL: "https://www.google.com/search?q=" + skill + "+testing+guide", Type: "guide"},
		}
	}
	return []Resource{
		{Title: skill + " Official Documentation", URL: "https://www.google.com/search?q=" + skill + "+official+documentation", Type: "documentation"},
		{Title: skill + " Tutorial", URL: "https://www.google.com/search?q=" + skill + "+tutorial+beginner", Type: "tutorial"},
		{Title: skill + " Video Course", URL: "https://www.youtube.com/results?search_query=" + skill + "+crash+course", Type: "video"},
	}
}

func cloneResources(in []Resource) []Resource {
	out := make([]Resource, len(in))
	copy(out, in)
	return out
}
