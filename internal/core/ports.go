package core

import (
	"context"
)

// BodyDecoder defines the interface for turning a message's MIME
// payload tree into normalized text.
type BodyDecoder interface {
	// Decode returns the best-effort text body of a payload
	Decode(payload *BodyPart) string
}

// Screener defines the interface for dropping non-job messages before
// any classification work happens.
type Screener interface {
	// Exclude reports whether a message should be dropped
	Exclude(subject, sender string) bool
}

// Classifier defines the interface for assigning a message to a
// job-application category.
type Classifier interface {
	// Classify returns the category for a message's subject and body
	Classify(subject, body string) Category
}

// EntityExtractor defines the interface for pulling the company and
// position out of message text.
type EntityExtractor interface {
	// Extract returns the entities found in a message
	Extract(sender, subject, body string) ExtractionResult
}

// MailSource defines the interface for searching and fetching messages
// from a mail provider.
type MailSource interface {
	// Search returns references to messages matching the query
	Search(ctx context.Context, query string) ([]MessageRef, error)

	// Fetch retrieves the full message for an id
	Fetch(ctx context.Context, id string) (*RawMessage, error)
}

// RecordSink defines the interface for persisting assembled records.
type RecordSink interface {
	// CreateTracker creates a new tracker and returns its id and URL
	CreateTracker(ctx context.Context, title string) (string, string, error)

	// EnsureHeaders writes the header row if the tracker needs one
	EnsureHeaders(ctx context.Context, trackerID string) error

	// Append adds records to the tracker
	Append(ctx context.Context, trackerID string, records []JobEmailRecord) error
}

// UserStore defines the interface for the user registry.
type UserStore interface {
	// Get retrieves a user by email
	Get(ctx context.Context, email string) (*UserRecord, error)

	// Save stores a new user
	Save(ctx context.Context, user *UserRecord) error

	// UpdateSheetID points an existing user at a new tracker
	UpdateSheetID(ctx context.Context, email, sheetID string) error

	// Close releases the store's resources
	Close()
}

// AssistClient defines the interface for an optional LLM second opinion
// that fills in what the heuristics could not.
type AssistClient interface {
	// AnalyzeMessage suggests a category, company and position for a message
	AnalyzeMessage(ctx context.Context, sender, subject, body string) (*AssistResult, error)
}
