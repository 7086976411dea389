package gmailapi

import (
	"fmt"
	"strings"
)

// BuildApplicationQuery assembles the Gmail search query from the
// application confirmation phrases. Each phrase is matched against both
// the subject line and the body, and the whole search is limited to the
// primary inbox category so promotions and social mail never show up.
func BuildApplicationQuery(phrases []string) string {
	terms := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		terms = append(terms, fmt.Sprintf(`(subject:("%s") OR "%s")`, phrase, phrase))
	}

	return fmt.Sprintf("(%s) AND category:primary", strings.Join(terms, " OR "))
}
