package intake

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/adapters/userstore"
	"github.com/jobsift/jobsift/internal/classify"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/internal/mimetext"
	"github.com/jobsift/jobsift/internal/screen"
)

type stubSource struct {
	refs     []core.MessageRef
	msgs     map[string]*core.RawMessage
	searches int
}

func (s *stubSource) Search(ctx context.Context, query string) ([]core.MessageRef, error) {
	s.searches++
	return s.refs, nil
}

func (s *stubSource) Fetch(ctx context.Context, id string) (*core.RawMessage, error) {
	msg, ok := s.msgs[id]
	if !ok {
		return nil, fmt.Errorf("no message %s", id)
	}
	return msg, nil
}

type stubSink struct {
	created  int
	headers  []string
	appended map[string][]core.JobEmailRecord
}

func newStubSink() *stubSink {
	return &stubSink{appended: make(map[string][]core.JobEmailRecord)}
}

func (s *stubSink) CreateTracker(ctx context.Context, title string) (string, string, error) {
	s.created++
	return "sheet-1", "https://sheets.example/sheet-1", nil
}

func (s *stubSink) EnsureHeaders(ctx context.Context, trackerID string) error {
	s.headers = append(s.headers, trackerID)
	return nil
}

func (s *stubSink) Append(ctx context.Context, trackerID string, records []core.JobEmailRecord) error {
	s.appended[trackerID] = append(s.appended[trackerID], records...)
	return nil
}

// newPipelineService builds a service on the heuristics alone. The
// extractor runs without a language model, so only its string paths fire.
func newPipelineService() *core.TrackerService {
	logger := zap.NewNop()
	return core.NewTrackerService(
		mimetext.Decoder{},
		screen.NewScreen(logger),
		classify.NewClassifier(logger),
		extract.NewExtractor(nil, logger),
		nil,
		logger,
	)
}

func rawTextMessage(id, subject, from, body string) *core.RawMessage {
	return &core.RawMessage{
		ID: id,
		Headers: []core.Header{
			{Name: "Subject", Value: subject},
			{Name: "From", Value: from},
			{Name: "Date", Value: "Mon, 2 Jun 2025 10:00:00 -0700"},
		},
		Payload: &core.BodyPart{
			MimeType: "text/plain",
			Data:     base64.RawURLEncoding.EncodeToString([]byte(body)),
		},
	}
}

func newTestPoller(source *stubSource, sink *stubSink, store *userstore.MemoryStore, runOnce bool) *Poller {
	return NewPoller(
		newPipelineService(),
		source,
		sink,
		store,
		"me@example.com",
		"Job Application Tracker",
		"test query",
		time.Minute,
		runOnce,
		zap.NewNop(),
	)
}

func TestPollerSweep(t *testing.T) {
	source := &stubSource{
		refs: []core.MessageRef{{ID: "m1"}, {ID: "m2"}},
		msgs: map[string]*core.RawMessage{
			"m1": rawTextMessage("m1", "Thank you for applying", "careers@initech.com",
				"We received your application for the Software Engineer position."),
			"m2": rawTextMessage("m2", "Top stories this week", "digest@tldrnewsletter.com",
				"This week in tech."),
		},
	}
	sink := newStubSink()
	store := userstore.NewMemoryStore(zap.NewNop())
	p := newTestPoller(source, sink, store, true)

	require.NoError(t, p.sweep(context.Background()))

	// First sweep provisions the tracker and registers the user.
	assert.Equal(t, 1, sink.created)
	assert.Equal(t, []string{"sheet-1"}, sink.headers)
	user, err := store.Get(context.Background(), "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sheet-1", user.SheetID)

	// Only the application confirmation survives the screen.
	records := sink.appended["sheet-1"]
	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].ID)
	assert.Equal(t, core.CategoryApplication, records[0].Category)
	assert.Equal(t, "Initech", records[0].Company)
}

func TestPollerSweepSkipsSeenMessages(t *testing.T) {
	source := &stubSource{
		refs: []core.MessageRef{{ID: "m1"}},
		msgs: map[string]*core.RawMessage{
			"m1": rawTextMessage("m1", "Thank you for applying", "careers@initech.com",
				"We received your application."),
		},
	}
	sink := newStubSink()
	store := userstore.NewMemoryStore(zap.NewNop())
	p := newTestPoller(source, sink, store, true)

	require.NoError(t, p.sweep(context.Background()))
	require.NoError(t, p.sweep(context.Background()))

	assert.Equal(t, 2, source.searches)
	assert.Len(t, sink.appended["sheet-1"], 1)
	assert.Equal(t, 1, sink.created)
}

func TestPollerRunOnce(t *testing.T) {
	source := &stubSource{}
	sink := newStubSink()
	store := userstore.NewMemoryStore(zap.NewNop())
	p := newTestPoller(source, sink, store, true)

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	assert.Equal(t, 1, source.searches)
}

func TestPollerStartWithoutUser(t *testing.T) {
	p := NewPoller(newPipelineService(), &stubSource{}, newStubSink(),
		userstore.NewMemoryStore(zap.NewNop()),
		"", "Job Application Tracker", "q", time.Minute, true, zap.NewNop())

	assert.Error(t, p.Start())
}

func TestEnsureTrackerExistingUser(t *testing.T) {
	sink := newStubSink()
	store := userstore.NewMemoryStore(zap.NewNop())
	require.NoError(t, store.Save(context.Background(), &core.UserRecord{
		Email:   "me@example.com",
		SheetID: "existing-sheet",
	}))

	sheetID, err := ensureTracker(context.Background(), store, sink,
		"me@example.com", "Job Application Tracker", zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "existing-sheet", sheetID)
	assert.Equal(t, 0, sink.created)
}

func TestEnsureTrackerUserWithoutSheet(t *testing.T) {
	sink := newStubSink()
	store := userstore.NewMemoryStore(zap.NewNop())
	require.NoError(t, store.Save(context.Background(), &core.UserRecord{
		Email: "me@example.com",
	}))

	sheetID, err := ensureTracker(context.Background(), store, sink,
		"me@example.com", "Job Application Tracker", zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "sheet-1", sheetID)
	assert.Equal(t, 1, sink.created)

	user, err := store.Get(context.Background(), "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sheet-1", user.SheetID)
}
