package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExclude(t *testing.T) {
	s := NewScreen(zap.NewNop())

	tests := []struct {
		name    string
		subject string
		sender  string
		want    bool
	}{
		{
			name:    "credit card promotion",
			subject: "Your Chase Cash Back Bonus",
			sender:  "offers@chase.com",
			want:    true,
		},
		{
			name:    "percent sign in subject",
			subject: "Earn 5% on every purchase",
			sender:  "promo@somebank.com",
			want:    true,
		},
		{
			name:    "bank sender without job context",
			subject: "Your monthly statement is ready",
			sender:  "no-reply@bankofamerica.com",
			want:    true,
		},
		{
			name:    "bank sender with job subject",
			subject: "Thank you for applying to our analyst program",
			sender:  "notify@bankofamerica.com",
			want:    false,
		},
		{
			name:    "bank recruiting sender",
			subject: "Next steps",
			sender:  "Talent Acquisition <ta@chase.com>",
			want:    false,
		},
		{
			name:    "newsletter sender",
			subject: "Top stories this week",
			sender:  "digest@technews.io",
			want:    true,
		},
		{
			name:    "linkedin notification",
			subject: "People are viewing your profile",
			sender:  "notifications@linkedin.com",
			want:    true,
		},
		{
			name:    "generic interest campaign",
			subject: "Thank you for your interest in our webinar",
			sender:  "events@vendor.com",
			want:    true,
		},
		{
			name:    "interest tied to an application",
			subject: "Thank you for your interest in the Software Engineer position",
			sender:  "recruiter@somecorp.com",
			want:    false,
		},
		{
			name:    "genuine application confirmation",
			subject: "Thank you for applying - Software Engineer",
			sender:  "talent@somecorp.com",
			want:    false,
		},
		{
			name:    "empty subject and sender",
			subject: "",
			sender:  "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Exclude(tt.subject, tt.sender)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExcludeNilLogger(t *testing.T) {
	s := NewScreen(nil)
	assert.True(t, s.Exclude("Your new credit card is here", "cards@issuer.com"))
	assert.False(t, s.Exclude("Interview availability", "recruiter@somecorp.com"))
}
