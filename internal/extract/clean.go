package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	leadingArticle = regexp.MustCompile(`^(?i:the|a|an)\s+`)
	trailingFiller = regexp.MustCompile(`(?i)\s+(position|role|job|opening|opportunity)$`)
)

// titleCase renders a phrase in English title case. A fresh caser per
// call keeps this safe wherever it is used; cases.Caser carries state.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// cleanPositionTitle strips leading articles and trailing filler words
// from an extracted title, collapses whitespace and title-cases the rest.
func cleanPositionTitle(position string) string {
	if position == "" {
		return ""
	}

	position = leadingArticle.ReplaceAllString(position, "")
	position = trailingFiller.ReplaceAllString(position, "")
	position = strings.Join(strings.Fields(position), " ")

	if position == "" {
		return ""
	}
	return titleCase(position)
}

// invalidPositions are frequent false positives that look like titles but
// are inbox boilerplate.
var invalidPositions = map[string]bool{
	"application":  true,
	"interview":    true,
	"thank you":    true,
	"your":         true,
	"next steps":   true,
	"update":       true,
	"status":       true,
	"confirmation": true,
	"receipt":      true,
	"notification": true,
	"team":         true,
	"company":      true,
	"organization": true,
	"department":   true,
	"office":       true,
	"process":      true,
	"system":       true,
	"platform":     true,
}

// isValidPosition rejects titles that are too short or known noise.
func isValidPosition(position string) bool {
	if len(position) < 3 {
		return false
	}
	return !invalidPositions[strings.ToLower(position)]
}
