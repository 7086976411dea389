package intake

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

// Poller periodically sweeps the mailbox for job application email and
// appends whatever it finds to the user's tracker sheet.
type Poller struct {
	service  *core.TrackerService
	source   core.MailSource
	sink     core.RecordSink
	store    core.UserStore
	logger   *zap.Logger
	email    string
	title    string
	query    string
	interval time.Duration
	runOnce  bool

	// seen holds ids already swept this process, so an interval run does
	// not append the same messages again. It is only touched from the
	// run goroutine.
	seen map[string]struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a new polling intake
func NewPoller(
	service *core.TrackerService,
	source core.MailSource,
	sink core.RecordSink,
	store core.UserStore,
	email string,
	title string,
	query string,
	interval time.Duration,
	runOnce bool,
	logger *zap.Logger,
) *Poller {
	return &Poller{
		service:  service,
		source:   source,
		sink:     sink,
		store:    store,
		email:    email,
		title:    title,
		query:    query,
		interval: interval,
		runOnce:  runOnce,
		logger:   logger,
		seen:     make(map[string]struct{}),
	}
}

// ProcessMessage runs one raw message through the tracking pipeline
// This is mainly used for testing or direct API calls
func (p *Poller) ProcessMessage(ctx context.Context, msg *core.RawMessage) (*core.JobEmailRecord, error) {
	return p.service.ProcessMessage(ctx, msg)
}

// Start starts the sweep loop in the background
func (p *Poller) Start() error {
	if p.email == "" {
		return fmt.Errorf("user email is not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	p.logger.Info("Poller starting",
		zap.String("user", p.email),
		zap.Duration("interval", p.interval),
		zap.Bool("run_once", p.runOnce))

	go p.run(ctx)

	return nil
}

// Stop stops the poller and waits for the loop to wind down
func (p *Poller) Stop() error {
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}
	return nil
}

// Done is closed when the sweep loop exits on its own, which only
// happens in run-once mode. Callers must Start the poller first.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	if err := p.sweep(ctx); err != nil {
		p.logger.Error("Sweep failed", zap.Error(err))
	}
	if p.runOnce {
		p.logger.Info("Single sweep finished, poller exiting")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.sweep(ctx); err != nil {
				p.logger.Error("Sweep failed", zap.Error(err))
			}
		}
	}
}

// sweep runs one search-fetch-process-append pass over the mailbox
func (p *Poller) sweep(ctx context.Context) error {
	sheetID, err := ensureTracker(ctx, p.store, p.sink, p.email, p.title, p.logger)
	if err != nil {
		return err
	}

	refs, err := p.source.Search(ctx, p.query)
	if err != nil {
		return err
	}

	fetched := make([]string, 0, len(refs))
	msgs := make([]*core.RawMessage, 0, len(refs))
	for _, ref := range refs {
		if _, ok := p.seen[ref.ID]; ok {
			continue
		}

		msg, err := p.source.Fetch(ctx, ref.ID)
		if err != nil {
			p.logger.Error("Failed to fetch message",
				zap.String("id", ref.ID),
				zap.Error(err))
			continue
		}
		fetched = append(fetched, ref.ID)
		msgs = append(msgs, msg)
	}

	if len(msgs) == 0 {
		p.logger.Debug("No new messages", zap.Int("matches", len(refs)))
		return nil
	}

	records, stats := p.service.ProcessBatch(ctx, msgs)
	if len(records) > 0 {
		if err := p.sink.Append(ctx, sheetID, records); err != nil {
			return fmt.Errorf("failed to append records: %w", err)
		}
	}

	for _, id := range fetched {
		p.seen[id] = struct{}{}
	}

	p.logger.Info("Sweep finished",
		zap.Int("found", stats.Found),
		zap.Int("appended", len(records)),
		zap.Int("excluded", stats.Excluded),
		zap.Int("failed", stats.Failed),
		zap.Int("companies", stats.CompanyFound),
		zap.Int("positions", stats.PositionFound))

	return nil
}
