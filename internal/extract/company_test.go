package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/nlp"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	analyzer, err := nlp.NewAnalyzer(zap.NewNop())
	require.NoError(t, err)
	return NewExtractor(analyzer, zap.NewNop())
}

func TestCompanyFromSubject(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{
			name:    "proper noun after at",
			subject: "Software Engineer Intern at Stripe",
			want:    "Stripe",
		},
		{
			name:    "proper noun after to",
			subject: "Your application to Google",
			want:    "Google",
		},
		{
			name:    "generic suffix collapses before delimiter",
			subject: "Lucid Software - Application Received",
			want:    "Lucid",
		},
		{
			name:    "preposition beats pipe delimiter",
			subject: "Interview at Datadog | Next Steps",
			want:    "Datadog",
		},
		{
			name:    "name before dash delimiter",
			subject: "Microsoft - Software Engineer",
			want:    "Microsoft",
		},
		{
			name:    "boilerplate only",
			subject: "Application Received - Next Steps",
			want:    "",
		},
		{
			name:    "no company present",
			subject: "Thank you for applying",
			want:    "",
		},
		{
			name:    "empty subject",
			subject: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Company("", tt.subject))
		})
	}
}

func TestCompanyFromSender(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name   string
		sender string
		want   string
	}{
		{
			name:   "domain label",
			sender: "careers@stripe.com",
			want:   "Stripe",
		},
		{
			name:   "display name",
			sender: "Atlassian <noreply@am.atlassian.com>",
			want:   "Atlassian",
		},
		{
			name:   "ats display name with at separator",
			sender: "Lucid @ icims <noreply@talent.icims.com>",
			want:   "Lucid",
		},
		{
			name:   "noreply display name falls back to domain",
			sender: "Noreply Notifications <noreply@acme.com>",
			want:   "Acme",
		},
		{
			name:   "workday tenant in local part",
			sender: "acme@myworkday.com",
			want:   "ACME",
		},
		{
			name:   "workday system mailbox falls back to domain",
			sender: "system@acme.myworkday.com",
			want:   "Acme",
		},
		{
			name:   "infrastructure domain label rejected",
			sender: "updates@mail.linkedin.com",
			want:   "",
		},
		{
			name:   "ats vendor display name rejected",
			sender: "Greenhouse <no-reply@us.greenhouse-mail.io>",
			want:   "",
		},
		{
			name:   "generic domain label rejected",
			sender: "no-reply@us.greenhouse-mail.io",
			want:   "",
		},
		{
			name:   "no address",
			sender: "Recruiting Team",
			want:   "",
		},
		{
			name:   "empty sender",
			sender: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Company(tt.sender, ""))
		})
	}
}

func TestCompanyReconciliation(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name    string
		sender  string
		subject string
		want    string
	}{
		{
			name:    "vendor sender defers to subject",
			sender:  "jobs@lever.co",
			subject: "Interview at Initech",
			want:    "Initech",
		},
		{
			name:    "employer sender beats vendor subject",
			sender:  "careers@oracle.com",
			subject: "Interview at Lever",
			want:    "Oracle",
		},
		{
			name:    "both good prefers subject",
			sender:  "careers@oracle.com",
			subject: "Interview at Initech",
			want:    "Initech",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Company(tt.sender, tt.subject))
		})
	}
}

func TestReconcileCompany(t *testing.T) {
	tests := []struct {
		name           string
		senderCompany  string
		subjectCompany string
		want           string
	}{
		{"both empty", "", "", ""},
		{"subject only is trusted", "", "Stripe", "Stripe"},
		{"subject only generic is still trusted", "", "Lever", "Lever"},
		{"sender only non-generic", "Oracle", "", "Oracle"},
		{"sender only generic dropped", "Greenhouse", "", ""},
		{"generic sender defers to subject", "Greenhouse", "Stripe", "Stripe"},
		{"generic subject defers to sender", "Oracle", "Lever", "Oracle"},
		{"both good prefers subject", "Oracle", "Stripe", "Stripe"},
		{"both generic prefers subject", "Greenhouse", "Workday", "Workday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcileCompany(tt.senderCompany, tt.subjectCompany))
		})
	}
}

func TestExtract(t *testing.T) {
	e := newTestExtractor(t)

	result := e.Extract("careers@initech.com", "Thank you for applying - Software Engineer", "")
	assert.Equal(t, "Initech", result.Company)
	assert.Equal(t, "Software Engineer", result.Position)
}

func TestExtractNilAnalyzer(t *testing.T) {
	e := NewExtractor(nil, zap.NewNop())

	// Sender parsing is pure string work and still runs; everything that
	// needs tagging degrades to empty.
	result := e.Extract("careers@stripe.com", "Interview at Stripe", "the position of software engineer")
	assert.Equal(t, "Stripe", result.Company)
	assert.Equal(t, "", result.Position)
}

func TestExtractDeterministic(t *testing.T) {
	e := newTestExtractor(t)

	sender := "Atlassian <noreply@am.atlassian.com>"
	subject := "Senior Backend Engineer Role at Acme (R_1234)"
	body := "we would like to discuss the software engineer position with you"

	first := e.Extract(sender, subject, body)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, e.Extract(sender, subject, body))
	}
}
