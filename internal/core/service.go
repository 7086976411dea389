package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// snippetLength is how much of the decoded body is kept on a record.
const snippetLength = 500

// TrackerService is the core pipeline that turns raw messages into job
// email records.
type TrackerService struct {
	decoder    BodyDecoder
	screener   Screener
	classifier Classifier
	extractor  EntityExtractor
	assist     AssistClient
	logger     *zap.Logger
}

// NewTrackerService creates a new tracker service. The assist client is
// optional; pass nil to run on the heuristics alone.
func NewTrackerService(
	decoder BodyDecoder,
	screener Screener,
	classifier Classifier,
	extractor EntityExtractor,
	assist AssistClient,
	logger *zap.Logger,
) *TrackerService {
	return &TrackerService{
		decoder:    decoder,
		screener:   screener,
		classifier: classifier,
		extractor:  extractor,
		assist:     assist,
		logger:     logger,
	}
}

// ProcessMessage runs one message through the pipeline. A nil record
// with a nil error means the message was screened out as non-job mail.
func (s *TrackerService) ProcessMessage(ctx context.Context, msg *RawMessage) (record *JobEmailRecord, err error) {
	if msg == nil {
		return nil, fmt.Errorf("message is nil")
	}

	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = fmt.Errorf("panic while processing message %s: %v", msg.ID, r)
		}
	}()

	subject := msg.HeaderValue("Subject")
	if subject == "" {
		subject = "No Subject"
	}
	sender := msg.HeaderValue("From")
	if sender == "" {
		sender = "No Sender"
	}
	date := msg.HeaderValue("Date")
	if date == "" && msg.InternalDate > 0 {
		// Provider timestamp is epoch milliseconds
		date = time.UnixMilli(msg.InternalDate).UTC().Format("2006-01-02")
	}
	if date == "" {
		date = "No Date"
	}

	if s.screener.Exclude(subject, sender) {
		s.logger.Debug("Excluding message",
			zap.String("id", msg.ID),
			zap.String("subject", subject))
		return nil, nil
	}

	body := s.decoder.Decode(msg.Payload)
	category := s.classifier.Classify(subject, body)
	entities := s.extractor.Extract(sender, subject, body)

	if s.assist != nil && needsAssist(category, entities) {
		category, entities = s.applyAssist(ctx, sender, subject, body, category, entities)
	}

	snippet := body
	if runes := []rune(snippet); len(runes) > snippetLength {
		snippet = string(runes[:snippetLength])
	}

	return &JobEmailRecord{
		ID:          msg.ID,
		Subject:     subject,
		Sender:      sender,
		Date:        date,
		BodySnippet: snippet,
		Category:    category,
		Company:     entities.Company,
		Position:    entities.Position,
	}, nil
}

// needsAssist reports whether the heuristics left anything blank.
func needsAssist(category Category, entities ExtractionResult) bool {
	return category == CategoryUnknown || entities.Company == "" || entities.Position == ""
}

// applyAssist asks the assist client for a second opinion and fills in
// only the fields the heuristics could not determine. Assist failures
// are logged and the heuristic result stands.
func (s *TrackerService) applyAssist(
	ctx context.Context,
	sender, subject, body string,
	category Category,
	entities ExtractionResult,
) (Category, ExtractionResult) {
	result, err := s.assist.AnalyzeMessage(ctx, sender, subject, body)
	if err != nil {
		s.logger.Warn("Assist analysis failed", zap.Error(err))
		return category, entities
	}
	if result == nil {
		return category, entities
	}

	if category == CategoryUnknown && result.Category.Valid() {
		category = result.Category
	}
	if entities.Company == "" {
		entities.Company = result.Company
	}
	if entities.Position == "" {
		entities.Position = result.Position
	}

	s.logger.Debug("Assist filled in missing fields",
		zap.String("model", result.ModelUsed),
		zap.Float64("confidence", result.Confidence))
	return category, entities
}

// ProcessBatch runs messages through the pipeline sequentially and
// accumulates statistics. Failures are logged and skipped so one bad
// message cannot sink a batch.
func (s *TrackerService) ProcessBatch(ctx context.Context, msgs []*RawMessage) ([]JobEmailRecord, BatchStats) {
	stats := NewBatchStats()
	stats.Found = len(msgs)

	records := make([]JobEmailRecord, 0, len(msgs))
	for _, msg := range msgs {
		record, err := s.ProcessMessage(ctx, msg)
		if err != nil {
			stats.Failed++
			s.logger.Error("Failed to process message", zap.Error(err))
			continue
		}
		if record == nil {
			stats.Excluded++
			continue
		}

		stats.Processed++
		stats.ByCategory[record.Category]++
		if record.Company != "" {
			stats.CompanyFound++
		}
		if record.Position != "" {
			stats.PositionFound++
		}
		records = append(records, *record)
	}

	s.logger.Info("Batch processed",
		zap.Int("found", stats.Found),
		zap.Int("excluded", stats.Excluded),
		zap.Int("processed", stats.Processed),
		zap.Int("failed", stats.Failed))

	return records, stats
}
