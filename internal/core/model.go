package core

import (
	"strings"
	"time"
)

// Category is the job-application stage a message belongs to.
type Category string

const (
	CategoryApplication Category = "application"
	CategoryInterview   Category = "interview"
	CategoryAssessment  Category = "assessment"
	CategoryOffers      Category = "offers"
	CategoryRejections  Category = "rejections"
	CategoryUnknown     Category = "unknown"
)

// Categories lists every category in classification order.
var Categories = []Category{
	CategoryApplication,
	CategoryInterview,
	CategoryAssessment,
	CategoryOffers,
	CategoryRejections,
	CategoryUnknown,
}

// StatusLabel returns the human-facing status written to the tracker sheet.
func (c Category) StatusLabel() string {
	switch c {
	case CategoryApplication:
		return "Applied"
	case CategoryInterview:
		return "Interview"
	case CategoryAssessment:
		return "Assessment"
	case CategoryOffers:
		return "Offer"
	case CategoryRejections:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Header is a single message header as delivered by the mail provider.
type Header struct {
	Name  string
	Value string
}

// BodyPart is one node of a message's MIME tree. Data carries the part
// payload in URL-safe base64, the encoding Gmail uses on the wire.
type BodyPart struct {
	MimeType string
	Data     string
	Parts    []*BodyPart
}

// RawMessage is an email as fetched from a mail source, before any
// decoding or classification.
type RawMessage struct {
	ID           string
	Headers      []Header
	Payload      *BodyPart
	InternalDate int64
}

// HeaderValue returns the first header with the given name, matched
// case-insensitively, or the empty string.
func (m *RawMessage) HeaderValue(name string) string {
	for _, h := range m.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// MessageRef identifies a message in the mail source without its content.
type MessageRef struct {
	ID       string
	ThreadID string
}

// ExtractionResult holds the entities pulled out of a single message.
// Empty strings mean the entity was not found.
type ExtractionResult struct {
	Company  string
	Position string
}

// JobEmailRecord is the assembled tracking record for one job email.
// It is derived purely from the message content so the same input
// always produces the same record.
type JobEmailRecord struct {
	ID          string
	Subject     string
	Sender      string
	Date        string
	BodySnippet string
	Category    Category
	Company     string
	Position    string
}

// BatchStats summarizes one processing run.
type BatchStats struct {
	Found         int
	Excluded      int
	Processed     int
	Failed        int
	ByCategory    map[Category]int
	CompanyFound  int
	PositionFound int
}

// NewBatchStats returns stats with the category counters initialized.
func NewBatchStats() BatchStats {
	return BatchStats{ByCategory: make(map[Category]int)}
}

// AssistResult is the optional second opinion produced by an assist engine.
type AssistResult struct {
	Category   Category
	Company    string
	Position   string
	Confidence float64
	ModelUsed  string
}

// UserRecord maps a tracked user to their spreadsheet.
type UserRecord struct {
	Email     string
	SheetID   string
	CreatedAt time.Time
}
