package extract

import (
	"strings"

	"github.com/jobsift/jobsift/internal/nlp"
)

// jobTitleKeywords signal a title anywhere in subject or body text. The
// first 18, through "architect", double as the shorter preview list.
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "designer",
	"coordinator", "specialist", "consultant", "director", "lead", "senior",
	"junior", "intern", "associate", "principal", "staff", "architect",
	"administrator", "technician", "supervisor", "executive", "officer",
	"representative", "advisor", "assistant", "researcher",
}

var previewTitleKeywords = jobTitleKeywords[:18]

// subjectModifiers may precede a title head in a subject line.
var subjectModifiers = map[string]bool{
	"senior": true, "junior": true, "lead": true, "principal": true,
	"staff": true, "associate": true, "software": true, "data": true,
	"product": true, "technical": true, "full": true, "stack": true,
	"frontend": true, "backend": true,
}

// seniorityModifiers are keywords that normally modify a following head:
// a hit on "Senior" should yield "Senior Backend Engineer", not "Senior".
var seniorityModifiers = map[string]bool{
	"senior": true, "junior": true, "lead": true,
	"principal": true, "staff": true, "associate": true,
}

var previewModifiers = map[string]bool{
	"senior": true, "junior": true, "lead": true,
	"principal": true, "staff": true,
}

// positionGoverners gate the body preposition method: "position of X",
// "role as Y".
var positionGoverners = map[string]bool{
	"position": true, "role": true, "job": true,
	"opening": true, "opportunity": true,
}

// chunkExcludeWords disqualify noun chunks that mention process noise.
var chunkExcludeWords = []string{"application", "interview", "team", "company", "process"}

func containsKeyword(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// laterHead reports whether a non-modifier keyword follows within reach,
// meaning the current modifier hit should wait for it.
func laterHead(tokens []nlp.Token, i int, keywords []string) bool {
	for j := i + 1; j < len(tokens) && j <= i+3; j++ {
		lower := tokens[j].Lower()
		if containsKeyword(lower, keywords) && !seniorityModifiers[lower] {
			return true
		}
	}
	return false
}

// keywordScan is the shared shape of the keyword-anchored methods: find a
// keyword token, gather qualifying modifiers before it and title words
// after it.
type keywordScan struct {
	keywords   []string
	modifiers  map[string]bool
	backWindow int
	backLoose  bool // admit plain nouns in the backward gate
	ahead      int
	aheadExtra []string
}

var (
	subjectScan = keywordScan{
		keywords:   jobTitleKeywords,
		modifiers:  subjectModifiers,
		backWindow: 3,
		backLoose:  true,
		ahead:      3,
		aheadExtra: []string{"intern", "internship"},
	}
	bodyScan = keywordScan{
		keywords:   jobTitleKeywords,
		modifiers:  seniorityModifiers,
		backWindow: 3,
		ahead:      2,
	}
	previewScan = keywordScan{
		keywords:   previewTitleKeywords,
		modifiers:  previewModifiers,
		backWindow: 2,
		ahead:      2,
	}
)

func (s keywordScan) run(doc *nlp.Doc) string {
	tokens := doc.Tokens()
	for i, tok := range tokens {
		lower := tok.Lower()
		if !containsKeyword(lower, s.keywords) {
			continue
		}
		if seniorityModifiers[lower] && laterHead(tokens, i, s.keywords) {
			continue
		}

		var parts []string
		for j := max(0, i-s.backWindow); j < i; j++ {
			prev := tokens[j]
			if !s.modifiers[prev.Lower()] {
				continue
			}
			if prev.IsAdjective() || prev.IsProperNoun() || (s.backLoose && prev.IsNoun()) {
				parts = append(parts, prev.Text)
			}
		}
		parts = append(parts, tok.Text)
		for j := i + 1; j < len(tokens) && j <= i+s.ahead; j++ {
			next := tokens[j]
			if !next.IsNoun() {
				break
			}
			nextLower := next.Lower()
			if containsKeyword(nextLower, s.keywords) || containsKeyword(nextLower, s.aheadExtra) {
				parts = append(parts, next.Text)
			} else {
				break
			}
		}

		if cleaned := cleanPositionTitle(strings.Join(parts, " ")); cleaned != "" && isValidPosition(cleaned) {
			return cleaned
		}
	}
	return ""
}

// positionFromSubject runs the subject methods: keyword scan, then titles
// placed after a delimiter ("Thank you for applying – SOFTWARE ENGINEER").
func (e *Extractor) positionFromSubject(subject string) string {
	doc := e.parse(strings.TrimSpace(subject))
	if doc == nil || doc.Len() == 0 {
		return ""
	}
	if title := subjectScan.run(doc); title != "" {
		return title
	}
	return positionFromSubjectDelimiter(doc)
}

func positionFromSubjectDelimiter(doc *nlp.Doc) string {
	tokens := doc.Tokens()
	for i := 0; i < len(tokens)-1; i++ {
		if t := tokens[i].Text; t != "–" && t != "-" && t != "(" {
			continue
		}
		for j := i + 1; j < len(tokens) && j <= i+4; j++ {
			if !containsKeyword(tokens[j].Lower(), jobTitleKeywords) {
				continue
			}

			var parts []string
			for k := j; k < len(tokens) && k < j+4; k++ {
				tok := tokens[k]
				if tok.Text == "(" || tok.Text == ")" || tok.Text == "R_" || tok.Text == "ID" {
					break
				}
				if !tok.IsNoun() && !tok.IsAdjective() && !tok.IsYear() {
					break
				}
				lower := tok.Lower()
				if containsKeyword(lower, jobTitleKeywords) ||
					lower == "summer" || lower == "analyst" || tok.IsYear() {
					parts = append(parts, tok.Text)
				} else {
					break
				}
			}

			if len(parts) > 0 {
				if cleaned := cleanPositionTitle(strings.Join(parts, " ")); cleaned != "" && isValidPosition(cleaned) {
					return cleaned
				}
			}
			break
		}
	}
	return ""
}

// positionFromBody runs the body methods in order: prepositional phrase,
// noun chunks, keyword scan.
func (e *Extractor) positionFromBody(body string) string {
	doc := e.parse(strings.TrimSpace(body))
	if doc == nil || doc.Len() == 0 {
		return ""
	}
	if title := positionFromBodyPreposition(doc); title != "" {
		return title
	}
	if title := positionFromNounChunks(doc); title != "" {
		return title
	}
	return bodyScan.run(doc)
}

// positionFromBodyPreposition matches "the position of X" and "a role as
// Y", taking the phrase head after the preposition.
func positionFromBodyPreposition(doc *nlp.Doc) string {
	tokens := doc.Tokens()
	for i := 1; i < len(tokens)-1; i++ {
		lower := tokens[i].Lower()
		if lower != "of" && lower != "as" && lower != "for" {
			continue
		}
		if !positionGoverners[tokens[i-1].Lower()] {
			continue
		}

		head := -1
		for j := i + 1; j < len(tokens) && j <= i+3; j++ {
			tok := tokens[j]
			tokLower := tok.Lower()
			if tok.IsProperNoun() ||
				(containsKeyword(tokLower, jobTitleKeywords) && !seniorityModifiers[tokLower]) {
				head = j
				break
			}
			if !tok.IsNoun() && !tok.IsAdjective() && tok.Tag != "DT" {
				break
			}
		}
		if head < 0 {
			continue
		}

		parts := []string{tokens[head].Text}
		for j := head + 1; j < len(tokens) && j <= head+3; j++ {
			next := tokens[j]
			if (next.IsNoun() || next.IsAdjective()) && containsKeyword(next.Lower(), jobTitleKeywords) {
				parts = append(parts, next.Text)
			} else {
				break
			}
		}

		name := strings.Join(parts, " ")
		if len(name) > 2 {
			return titleCase(name)
		}
	}
	return ""
}

func positionFromNounChunks(doc *nlp.Doc) string {
	for _, chunk := range doc.NounChunks() {
		chunkLower := strings.ToLower(chunk)
		if !containsKeyword(chunkLower, jobTitleKeywords) {
			continue
		}
		if containsAny(chunkLower, chunkExcludeWords) {
			continue
		}
		if cleaned := cleanPositionTitle(chunk); cleaned != "" && isValidPosition(cleaned) {
			return cleaned
		}
	}
	return ""
}

// positionFromPreview scans the short body preview with the reduced
// keyword list.
func (e *Extractor) positionFromPreview(preview string) string {
	doc := e.parse(strings.TrimSpace(preview))
	if doc == nil || doc.Len() == 0 {
		return ""
	}
	return previewScan.run(doc)
}
