package gmailapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobsift/jobsift/internal/classify"
)

func TestBuildApplicationQuery(t *testing.T) {
	query := BuildApplicationQuery([]string{"thank you for applying", "application received"})

	assert.Equal(t,
		`((subject:("thank you for applying") OR "thank you for applying") OR (subject:("application received") OR "application received")) AND category:primary`,
		query)
}

func TestBuildApplicationQueryFromPhrases(t *testing.T) {
	phrases := classify.ApplicationPhrases()
	query := BuildApplicationQuery(phrases)

	assert.True(t, strings.HasSuffix(query, ") AND category:primary"))
	for _, phrase := range phrases {
		assert.Contains(t, query, `subject:("`+phrase+`")`)
	}
}
