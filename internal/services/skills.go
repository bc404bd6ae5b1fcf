package services

import "strings"

// MaxSkills caps how many skills a single resume is tagged with.
const MaxSkills = 15

// skillVocabulary is the fixed, ordered list of recognized skill phrases:
// languages, frameworks, data stores, cloud platforms and methodologies.
// Result ordering follows this list, not text occurrence order.
var skillVocabulary = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node", "express", "django", "flask", "spring", "laravel",
	"html", "css", "sass", "tailwind", "bootstrap", "material-ui",
	"sql", "mongodb", "postgresql", "mysql", "redis", "firebase", "supabase",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "ci/cd",
	"git", "github", "gitlab", "bitbucket",
	"agile", "scrum", "jira", "trello",
	"machine learning", "deep learning", "ai", "data science", "nlp",
	"rest api", "graphql", "microservices", "serverless",
	"testing", "jest", "mocha", "pytest", "junit",
}

// ExtractSkills scans normalized text for vocabulary entries using
// case-insensitive substring matching. Substring matching knowingly accepts
// partial-word hits ("java" inside "javascript"); the match list stays
// deterministic for a given text and vocabulary.
func ExtractSkills(content string) []string {
	contentLower := strings.ToLower(content)

	skills := make([]string, 0, MaxSkills)
	for _, skill := range skillVocabulary {
		if strings.Contains(contentLower, skill) {
			skills = append(skills, skill)
			if len(skills) == MaxSkills {
				break
			}
		}
	}

	return skills
}
