package classify

import (
	"github.com/jobsift/jobsift/internal/core"
)

// categoryPhrases binds a category to the literal phrases that signal it.
// bodyFirst categories match against the decoded body before the subject,
// since offers and rejections tend to bury the verdict below a bland
// subject line.
type categoryPhrases struct {
	category  core.Category
	phrases   []string
	bodyFirst bool
}

// jobPhrases is walked in declaration order; the first matching category
// wins. The ordering is part of the classifier contract.
var jobPhrases = []categoryPhrases{
	{category: core.CategoryApplication, phrases: applicationPhrases},
	{category: core.CategoryInterview, phrases: interviewPhrases},
	{category: core.CategoryAssessment, phrases: assessmentPhrases},
	{category: core.CategoryOffers, phrases: offerPhrases, bodyFirst: true},
	{category: core.CategoryRejections, phrases: rejectionPhrases, bodyFirst: true},
}

var applicationPhrases = []string{
	"application received",
	"thank you for applying",
	"we received your application",
	"application submitted",
	"application confirmation",
	"thank you for your interest",
	"thanks for applying",
	"your application has been received",
	"your application has been submitted",
	"your application has been confirmed",
	"thank you for your job application",
	"successfully applied",
	"thanks for completing your application",
	"thank you for your application",
	"you have successfully applied",
	"we've received your application",
	"you have successfully submitted",
}

var interviewPhrases = []string{
	"interview",
	"phone screen",
	"technical interview",
	"onsite interview",
	"video call",
	"interview invitation",
	"schedule an interview",
	"interview request",
}

var assessmentPhrases = []string{
	"coding assessment",
	"technical assessment",
	"coding challenge",
	"technical challenge",
	"hirevue",
	"virtual interview",
	"online assessment",
	"skills assessment",
	"programming challenge",
	"take home assignment",
	"coding test",
	"technical test",
	"assessment invitation",
	"complete your assessment",
	"pre-interview assessment",
	"next step: assessment",
	"hackerrank",
	"codility",
	"codesignal",
}

var offerPhrases = []string{
	"job offer",
	"offer of employment",
	"employment offer",
	"we would like to extend",
	"we are pleased to offer you",
	"congratulations on your",
	"offer letter",
	"position offer",
	"we are excited to offer",
	"pleased to extend an offer",
	"pleased to offer",
	"excited to offer",
	"would like to extend an offer",
	"we are pleased to inform you",
}

var rejectionPhrases = []string{
	"unfortunately",
	"position has been filled",
	"we have decided to move forward",
	"we have decided not to move forward",
	"thank you for your time and interest",
	"we will not be moving forward",
	"after careful consideration",
	"we regret to inform",
	"we have chosen to proceed",
	"not selected for this position",
	"we have decided to pursue",
	"thank you for your interest, however",
	"we appreciate your interest, but",
	"we will be moving forward with other candidates",
	"we regret",
	"not selected",
	"decided to move forward with other candidates",
	"chosen to proceed with other applicants",
	"we have decided to pursue other candidates",
	"not be moving to the next round",
	"we will not be proceeding",
	"we have decided not to proceed",
	"we are unable to move forward",
	"we cannot move forward",
	"we have decided to go with",
	"we have selected another candidate",
	"we have chosen another candidate",
	"we will be proceeding with other candidates",
	"we have decided to pursue other applicants",
	"not moving forward with your application",
	"we will not be considering your application further",
	"your application was not selected",
	"we have decided to decline",
	"we must respectfully decline",
	"we are not able to offer you",
	"we will not be extending an offer",
	"you have not been selected to move forward",
	"not been selected to move forward",
	"have not been selected",
	"candidates whose experience and qualifications are more aligned",
	"more aligned with our needs",
	"selected candidates whose experience",
	"we have selected candidates",
	"move forward with other candidates",
	"with other candidates",
	"with other applicants",
	"pursue other candidates",
	"your application at",
	"more closely aligns with",
	"more closely match our requirements",
	"more closely match our needs",
	"more closely match our criteria",
	"more closely match our qualifications",
	"more closely match our experience",
	"more closely match our skills",
	"more closely match",
	"more closely match our abilities",
	"move forward with other applicants",
}

// ApplicationPhrases returns a copy of the application phrase list. The
// mail source builds its search query from these so the inbox search and
// the classifier stay in agreement.
func ApplicationPhrases() []string {
	out := make([]string, len(applicationPhrases))
	copy(out, applicationPhrases)
	return out
}
