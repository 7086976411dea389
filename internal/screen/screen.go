package screen

import (
	"strings"

	"go.uber.org/zap"
)

// Screen filters out messages that match a job-search inbox query but are
// clearly not job mail: card offers, bank notices, newsletters and bulk
// "thanks for your interest" campaigns.
type Screen struct {
	logger *zap.Logger
}

// financialKeywords mark promotional banking subjects.
var financialKeywords = []string{
	"credit card", "cash back", "rewards", "bonus offer",
	"investment", "cd rate", "cash rewards", "$", "%",
	"credit", "savings", "checking", "loan",
}

// bankSenders are excluded unless the message carries a job context; banks
// hire engineers too.
var bankSenders = []string{
	"bankofamerica", "chase", "wells fargo", "citi", "discover",
	"american express", "capital one", "usbank",
}

// jobContextSubjects and jobContextSenders let bank mail through when it
// is actually about a job.
var jobContextSubjects = []string{
	"thank you for applying", "interview", "application",
}

var jobContextSenders = []string{
	"talent acquisition", "careers", "recruiting", "hr",
}

// newsSenders mark newsletters, digests and community notifications.
var newsSenders = []string{
	"linkedin.com", "glassdoor.com", "tldrnewsletter.com",
	"news", "newsletter", "editors-noreply", "community",
	"quora", "digest", "beehiiv", "motley fool", "talentinsightsweekly",
}

// interestEscapes keep "thank you for your interest" mail when it refers
// to an actual application.
var interestEscapes = []string{
	"applying", "application", "position", "job", "career",
}

// NewScreen creates a new non-job screen.
func NewScreen(logger *zap.Logger) *Screen {
	return &Screen{logger: logger}
}

// Exclude reports whether the message should be dropped before
// classification. All matching is lowercase substring containment.
func (s *Screen) Exclude(subject, sender string) bool {
	subjectLower := strings.ToLower(subject)
	senderLower := strings.ToLower(sender)

	for _, keyword := range financialKeywords {
		if strings.Contains(subjectLower, keyword) {
			s.debug("financial promotion", subject, sender, keyword)
			return true
		}
	}

	for _, bank := range bankSenders {
		if strings.Contains(senderLower, bank) && !s.hasJobContext(subjectLower, senderLower) {
			s.debug("bank sender without job context", subject, sender, bank)
			return true
		}
	}

	for _, source := range newsSenders {
		if strings.Contains(senderLower, source) {
			s.debug("newsletter sender", subject, sender, source)
			return true
		}
	}

	if strings.Contains(subjectLower, "thank you for your interest") {
		escaped := false
		for _, escape := range interestEscapes {
			if strings.Contains(subjectLower, escape) {
				escaped = true
				break
			}
		}
		if !escaped {
			s.debug("generic interest mail", subject, sender, "thank you for your interest")
			return true
		}
	}

	return false
}

func (s *Screen) hasJobContext(subjectLower, senderLower string) bool {
	for _, marker := range jobContextSubjects {
		if strings.Contains(subjectLower, marker) {
			return true
		}
	}
	for _, marker := range jobContextSenders {
		if strings.Contains(senderLower, marker) {
			return true
		}
	}
	return false
}

func (s *Screen) debug(rule, subject, sender, matched string) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("Excluded non-job email",
		zap.String("rule", rule),
		zap.String("subject", subject),
		zap.String("sender", sender),
		zap.String("matched", matched))
}
