package classify

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

// Classifier assigns a job-application category to a message based on
// literal phrase matches. It is stateless and deterministic: the same
// subject and body always produce the same category.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a new keyword classifier.
func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify walks the category table in order and returns the first
// category with a phrase match. Matching is lowercase substring
// containment. Offers and rejections are matched against the body before
// the subject; every other category matches on the subject only. No match
// yields CategoryUnknown.
func (c *Classifier) Classify(subject, body string) core.Category {
	subjectLower := strings.ToLower(subject)
	bodyLower := strings.ToLower(body)

	for _, entry := range jobPhrases {
		if entry.bodyFirst {
			for _, phrase := range entry.phrases {
				if strings.Contains(bodyLower, phrase) {
					c.logger.Debug("Matched body phrase",
						zap.String("category", string(entry.category)),
						zap.String("phrase", phrase))
					return entry.category
				}
			}
		}
		for _, phrase := range entry.phrases {
			if strings.Contains(subjectLower, phrase) {
				c.logger.Debug("Matched subject phrase",
					zap.String("category", string(entry.category)),
					zap.String("phrase", phrase))
				return entry.category
			}
		}
	}

	return core.CategoryUnknown
}

// ClassifySubject classifies using the subject line alone. Used when no
// body could be decoded.
func (c *Classifier) ClassifySubject(subject string) core.Category {
	return c.Classify(subject, "")
}
