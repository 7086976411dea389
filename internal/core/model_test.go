package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryStatusLabel(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryApplication, "Applied"},
		{CategoryInterview, "Interview"},
		{CategoryAssessment, "Assessment"},
		{CategoryOffers, "Offer"},
		{CategoryRejections, "Rejected"},
		{CategoryUnknown, "Unknown"},
		{Category("bogus"), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.StatusLabel())
	}
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryApplication.Valid())
	assert.True(t, CategoryUnknown.Valid())
	assert.False(t, Category("spam").Valid())
}

func TestHeaderValue(t *testing.T) {
	msg := &RawMessage{Headers: []Header{
		{Name: "Subject", Value: "Interview"},
		{Name: "From", Value: "a@b.com"},
		{Name: "subject", Value: "second"},
	}}

	assert.Equal(t, "Interview", msg.HeaderValue("subject"))
	assert.Equal(t, "a@b.com", msg.HeaderValue("FROM"))
	assert.Equal(t, "", msg.HeaderValue("Date"))
}

func TestNewBatchStats(t *testing.T) {
	stats := NewBatchStats()
	assert.NotNil(t, stats.ByCategory)
	assert.Equal(t, 0, stats.Found)
}
