package extract

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/nlp"
)

// previewLength is how much of the decoded body the preview method sees.
const previewLength = 200

// genericCompanies are names too unreliable to report on their own: ATS
// vendors, mailbox words and role words. A sender-derived name on this
// list is dropped; a subject-derived name is trusted as written.
var genericCompanies = map[string]bool{
	"greenhouse": true, "workday": true, "myworkday": true, "lever": true,
	"bamboohr": true, "smartrecruiters": true, "icims": true, "jobvite": true,
	"taleo": true, "cornerstone": true, "successfactors": true, "talent": true,
	"ashbyhq": true, "ripplematch": true, "mail": true, "noreply": true,
	"jobs": true, "careers": true, "hiring": true, "hr": true,
	"software": true, "intern": true, "engineering": true, "engineer": true,
	"developer": true, "manager": true, "us": true, "no": true,
	"system": true, "notification": true, "notifications": true,
}

// Extractor pulls company and position entities out of message text. A
// nil analyzer is tolerated: extraction then degrades to no result, and
// the condition is reported once.
type Extractor struct {
	analyzer *nlp.Analyzer
	logger   *zap.Logger
	warnOnce sync.Once
}

// NewExtractor creates an extractor around the given analyzer.
func NewExtractor(analyzer *nlp.Analyzer, logger *zap.Logger) *Extractor {
	return &Extractor{analyzer: analyzer, logger: logger}
}

// Extract runs both entity extractors over one message. The preview
// passed to the position fallback is the opening of the decoded body.
func (e *Extractor) Extract(sender, subject, body string) core.ExtractionResult {
	preview := body
	if runes := []rune(preview); len(runes) > previewLength {
		preview = string(runes[:previewLength])
	}

	return core.ExtractionResult{
		Company:  e.Company(sender, subject),
		Position: e.Position(subject, body, preview),
	}
}

// Company extracts the employer name, reconciling the sender-derived and
// subject-derived candidates.
func (e *Extractor) Company(sender, subject string) string {
	senderCompany := e.companyFromSender(sender)
	subjectCompany := e.companyFromSubject(subject)
	return reconcileCompany(senderCompany, subjectCompany)
}

// reconcileCompany prefers the non-generic candidate, and the subject
// when both are good. A subject-only result is accepted as written; a
// sender-only result must be non-generic.
func reconcileCompany(senderCompany, subjectCompany string) string {
	if senderCompany != "" && subjectCompany != "" {
		if genericCompanies[strings.ToLower(senderCompany)] {
			return subjectCompany
		}
		if genericCompanies[strings.ToLower(subjectCompany)] {
			return senderCompany
		}
		return subjectCompany
	}
	if subjectCompany != "" {
		return subjectCompany
	}
	if senderCompany != "" && !genericCompanies[strings.ToLower(senderCompany)] {
		return senderCompany
	}
	return ""
}

// Position extracts the job title, trying subject, then body, then the
// body preview.
func (e *Extractor) Position(subject, body, preview string) string {
	if subject != "" {
		if title := e.positionFromSubject(subject); title != "" {
			return title
		}
	}
	if body != "" {
		if title := e.positionFromBody(body); title != "" {
			return title
		}
	}
	if preview != "" {
		if title := e.positionFromPreview(preview); title != "" {
			return title
		}
	}
	return ""
}

// parse tags text through the analyzer, returning nil when no analysis
// is possible.
func (e *Extractor) parse(text string) *nlp.Doc {
	if e.analyzer == nil {
		e.warnOnce.Do(func() {
			if e.logger != nil {
				e.logger.Error("Language analyzer unavailable, entity extraction disabled")
			}
		})
		return nil
	}

	doc, err := e.analyzer.Parse(text)
	if err != nil {
		if e.logger != nil {
			e.logger.Debug("Failed to parse text", zap.Error(err))
		}
		return nil
	}
	return doc
}
