package extract

import (
	"strings"

	"github.com/jobsift/jobsift/internal/nlp"
)

// companyRoleWords never belong inside a company name.
var companyRoleWords = map[string]bool{
	"engineer":   true,
	"manager":    true,
	"developer":  true,
	"scientist":  true,
	"analyst":    true,
	"intern":     true,
	"internship": true,
}

// subjectNoiseWords are boilerplate nouns that headline-style subjects
// capitalize next to company names and delimiters. The tagger often marks
// them proper-noun-like, so company runs must refuse to absorb them.
var subjectNoiseWords = map[string]bool{
	"application":     true,
	"applications":    true,
	"interview":       true,
	"interviews":      true,
	"assessment":      true,
	"offer":           true,
	"offers":          true,
	"rejection":       true,
	"update":          true,
	"updates":         true,
	"status":          true,
	"invitation":      true,
	"received":        true,
	"submitted":       true,
	"confirmation":    true,
	"confirmed":       true,
	"receipt":         true,
	"thank":           true,
	"thanks":          true,
	"next":            true,
	"steps":           true,
	"step":            true,
	"action":          true,
	"required":        true,
	"reminder":        true,
	"regarding":       true,
	"important":       true,
	"position":        true,
	"role":            true,
	"job":             true,
	"opportunity":     true,
	"hiring":          true,
	"candidate":       true,
	"candidacy":       true,
	"team":            true,
	"welcome":         true,
	"congratulations": true,
}

// genericSuffixes trigger the two-word collapse: "Lucid Software" and
// "Scale AI" shorten to the brand word.
var genericSuffixes = map[string]bool{
	"software":     true,
	"ai":           true,
	"technologies": true,
	"systems":      true,
	"solutions":    true,
	"services":     true,
}

// rolePhrases are full results rejected as companies.
var rolePhrases = map[string]bool{
	"software engineer":    true,
	"data scientist":       true,
	"product manager":      true,
	"software engineering": true,
	"intern":               true,
}

// orgSkipWords disqualify a whole organization chunk when any of them
// appears inside it.
var orgSkipWords = []string{
	"team", "department", "group", "division", "platform",
	"engineer", "interview", "application", "position", "role",
	"data scientist", "product manager", "software engineer",
	"intern", "internship", "software", "engineering",
}

// orgTruncaters end an organization chunk mid-way.
var orgTruncaters = map[string]bool{
	"engineer":    true,
	"engineering": true,
	"manager":     true,
	"developer":   true,
	"scientist":   true,
	"analyst":     true,
	"data":        true,
	"position":    true,
	"role":        true,
	"interview":   true,
}

// leadingBreakWords end the leading-run method's candidate.
var leadingBreakWords = map[string]bool{
	"cloud":     true,
	"platform":  true,
	"engineer":  true,
	"data":      true,
	"scientist": true,
}

// workdaySystemPrefixes are Workday mailbox prefixes that carry no tenant
// name.
var workdaySystemPrefixes = map[string]bool{
	"send-only.sec": true,
	"system":        true,
	"notification":  true,
}

// domainStoplist rejects first domain labels that identify mail
// infrastructure or an ATS vendor rather than an employer.
var domainStoplist = map[string]bool{
	"mail":            true,
	"noreply":         true,
	"jobs":            true,
	"careers":         true,
	"myworkday":       true,
	"greenhouse-mail": true,
	"talent":          true,
}

// companyEligible reports whether a token can sit inside a company name.
func companyEligible(tok nlp.Token) bool {
	if !tok.IsProperLike() {
		return false
	}
	lower := tok.Lower()
	return !companyRoleWords[lower] && !subjectNoiseWords[lower]
}

// companyFromSender pulls a company out of a "Name <addr>" sender string:
// display name first, then the address domain.
func (e *Extractor) companyFromSender(sender string) string {
	if sender == "" {
		return ""
	}

	if idx := strings.Index(sender, "<"); idx >= 0 {
		namePart := strings.TrimSpace(sender[:idx])
		if namePart != "" && !strings.Contains(strings.ToLower(namePart), "noreply") {
			// ATS display names look like "Atlassian @ icims".
			if strings.Contains(namePart, " @ ") {
				company := strings.TrimSpace(strings.SplitN(namePart, " @ ", 2)[0])
				if len(company) > 1 {
					return titleCase(company)
				}
			}
			if name := e.orgFromDisplayName(namePart); name != "" {
				return name
			}
		}
	}

	emailPart := sender
	if idx := strings.LastIndex(sender, "<"); idx >= 0 {
		emailPart = strings.ReplaceAll(sender[idx+1:], ">", "")
	}
	at := strings.Index(emailPart, "@")
	if at < 0 {
		return ""
	}
	domain := strings.ToLower(strings.TrimSpace(emailPart[at+1:]))

	// Workday tenants put the employer in the local part.
	if strings.Contains(domain, "myworkday.com") {
		prefix := emailPart[:at]
		if !workdaySystemPrefixes[strings.ToLower(prefix)] {
			return strings.ToUpper(prefix)
		}
	}

	stripped := domain
	for _, ext := range []string{".com", ".org", ".io", ".xyz"} {
		stripped = strings.ReplaceAll(stripped, ext, "")
	}
	labels := strings.Split(stripped, ".")
	if labels[0] != "" && !domainStoplist[labels[0]] {
		return titleCase(labels[0])
	}

	return ""
}

// orgFromDisplayName returns the first organization chunk of a display
// name.
func (e *Extractor) orgFromDisplayName(name string) string {
	doc := e.parse(name)
	if doc == nil {
		return ""
	}
	chunks := doc.OrgChunks()
	if len(chunks) == 0 {
		return ""
	}
	return titleCase(chunks[0])
}

// companyFromSubject runs the four-method cascade over a subject line.
func (e *Extractor) companyFromSubject(subject string) string {
	if strings.TrimSpace(subject) == "" {
		return ""
	}
	doc := e.parse(strings.TrimSpace(subject))
	if doc == nil || doc.Len() == 0 {
		return ""
	}

	if name := companyFromPreposition(doc); name != "" {
		return name
	}
	if name := companyFromDelimiter(doc); name != "" {
		return name
	}
	if name := companyFromOrgChunks(doc); name != "" {
		return name
	}
	return companyFromLeadingRun(doc)
}

// companyFromPreposition finds the proper-noun run after "at" or "to":
// "Interview at Stripe", "Your application to Apple".
func companyFromPreposition(doc *nlp.Doc) string {
	tokens := doc.Tokens()
	for i, tok := range tokens {
		lower := tok.Lower()
		if lower != "at" && lower != "to" {
			continue
		}

		var run []string
		for j := i + 1; j < len(tokens) && len(run) < 3; j++ {
			if !companyEligible(tokens[j]) {
				break
			}
			run = append(run, tokens[j].Text)
		}
		if len(run) == 0 {
			continue
		}

		if len(run) == 2 && genericSuffixes[strings.ToLower(run[1])] {
			return titleCase(run[0])
		}
		name := strings.Join(run, " ")
		if len(name) > 1 && !rolePhrases[strings.ToLower(name)] {
			return titleCase(name)
		}
	}
	return ""
}

// companyFromDelimiter finds the proper-noun run before a "-" or "|":
// "Microsoft - Software Engineer", "Google | Product Manager".
func companyFromDelimiter(doc *nlp.Doc) string {
	tokens := doc.Tokens()
	for i := 1; i < len(tokens); i++ {
		if text := tokens[i].Text; text != "-" && text != "|" {
			continue
		}
		if !companyEligible(tokens[i-1]) {
			continue
		}

		var run []string
		for j := i - 1; j >= 0; j-- {
			if !companyEligible(tokens[j]) {
				break
			}
			run = append([]string{tokens[j].Text}, run...)
		}

		if len(run) == 2 && genericSuffixes[strings.ToLower(run[1])] {
			return titleCase(run[0])
		}
		name := strings.Join(run, " ")
		if len(name) > 1 {
			return titleCase(name)
		}
	}
	return ""
}

// companyFromOrgChunks scans organization chunks, skipping ones polluted
// with role, team or boilerplate words and truncating the rest.
func companyFromOrgChunks(doc *nlp.Doc) string {
	for _, chunk := range doc.OrgChunks() {
		chunkLower := strings.ToLower(chunk)
		if containsAny(chunkLower, orgSkipWords) {
			continue
		}

		words := strings.Fields(chunk)
		if anyNoiseWord(words) {
			continue
		}
		if len(words) == 2 {
			first, second := strings.ToLower(words[0]), strings.ToLower(words[1])
			if genericSuffixes[second] {
				return titleCase(words[0])
			}
			// "Data Science", "Product Management" are disciplines, not
			// employers.
			if (first == "software" || first == "data" || first == "product") &&
				(second == "engineering" || second == "science" || second == "management") {
				continue
			}
		}

		var clean []string
		for _, word := range words {
			lower := strings.ToLower(word)
			if lower == "technologies" {
				if len(clean) <= 2 {
					clean = append(clean, word)
				}
				break
			}
			if orgTruncaters[lower] {
				break
			}
			clean = append(clean, word)
		}

		if len(clean) > 0 {
			name := strings.Join(clean, " ")
			if len(name) > 1 {
				return titleCase(name)
			}
		}
	}
	return ""
}

// companyFromLeadingRun tries the proper nouns a subject opens with:
// "Netflix Senior Engineer Position".
func companyFromLeadingRun(doc *nlp.Doc) string {
	tokens := doc.Tokens()
	if len(tokens) == 0 || !companyEligible(tokens[0]) {
		return ""
	}

	run := []string{tokens[0].Text}
	for i := 1; i < len(tokens) && i < 4; i++ {
		if !companyEligible(tokens[i]) {
			break
		}
		lower := tokens[i].Lower()
		if (lower == "cloud" || lower == "platform") && i > 1 {
			break
		}
		run = append(run, tokens[i].Text)
	}

	var clean []string
	for _, word := range run {
		if leadingBreakWords[strings.ToLower(word)] {
			break
		}
		clean = append(clean, word)
	}
	if len(clean) == 0 {
		return ""
	}

	name := strings.Join(clean, " ")
	if len(name) > 1 {
		return titleCase(name)
	}
	return ""
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func anyNoiseWord(words []string) bool {
	for _, word := range words {
		if subjectNoiseWords[strings.ToLower(word)] {
			return true
		}
	}
	return false
}
