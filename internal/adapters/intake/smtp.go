package intake

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-smtp"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

// dataTimeout bounds the processing of one forwarded message, assist
// call and sheet append included.
const dataTimeout = 30 * time.Second

// SMTPIntake accepts forwarded job mail over SMTP and runs it through
// the pipeline as it arrives. The RCPT TO address selects which user's
// tracker the record lands in.
type SMTPIntake struct {
	service *core.TrackerService
	sink    core.RecordSink
	store   core.UserStore
	logger  *zap.Logger
	addr    string
	domain  string
	title   string
	server  *smtp.Server
}

// NewSMTPIntake creates a new SMTP intake
func NewSMTPIntake(
	service *core.TrackerService,
	sink core.RecordSink,
	store core.UserStore,
	addr string,
	domain string,
	title string,
	logger *zap.Logger,
) *SMTPIntake {
	return &SMTPIntake{
		service: service,
		sink:    sink,
		store:   store,
		addr:    addr,
		domain:  domain,
		title:   title,
		logger:  logger,
	}
}

// ProcessMessage runs one raw message through the tracking pipeline
// This is mainly used for testing or direct API calls
func (s *SMTPIntake) ProcessMessage(ctx context.Context, msg *core.RawMessage) (*core.JobEmailRecord, error) {
	return s.service.ProcessMessage(ctx, msg)
}

// Start starts the SMTP server
func (s *SMTPIntake) Start() error {
	s.server = smtp.NewServer(&smtpBackend{intake: s})

	// Configure the server
	s.server.Addr = s.addr
	s.server.Domain = s.domain
	s.server.ReadTimeout = 30 * time.Second
	s.server.WriteTimeout = 30 * time.Second
	s.server.MaxMessageBytes = 30 * 1024 * 1024 // 30MB
	s.server.MaxRecipients = 50
	s.server.AllowInsecureAuth = true

	s.logger.Info("SMTP intake starting", zap.String("address", s.addr))

	// Start the server in a goroutine
	go func() {
		if err := s.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				s.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP server
func (s *SMTPIntake) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	intake *SMTPIntake
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(c *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{
		intake:     b.intake,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	intake     *SMTPIntake
	sender     string
	recipients []string
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

// AuthPlain handles PLAIN authentication (not needed for the intake)
func (s *smtpSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the sender address
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt adds a recipient
func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.recipients = append(s.recipients, to)
	return nil
}

// Data parses the forwarded message, runs it through the pipeline and
// appends the record to the recipient's tracker
func (s *smtpSession) Data(r io.Reader) error {
	msg, err := ParseRFC822(r)
	if err != nil {
		s.intake.logger.Error("Failed to parse forwarded message", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
	defer cancel()

	record, err := s.intake.service.ProcessMessage(ctx, msg)
	if err != nil {
		s.intake.logger.Error("Failed to process forwarded message", zap.Error(err))
		return err
	}
	if record == nil {
		s.intake.logger.Debug("Forwarded message screened out",
			zap.String("sender", msg.HeaderValue("From")))
		return nil
	}

	if len(s.recipients) == 0 {
		return fmt.Errorf("no recipient given")
	}
	user := s.recipients[0]

	sheetID, err := ensureTracker(ctx, s.intake.store, s.intake.sink, user, s.intake.title, s.intake.logger)
	if err != nil {
		s.intake.logger.Error("Failed to ensure tracker",
			zap.String("user", user),
			zap.Error(err))
		return err
	}

	if err := s.intake.sink.Append(ctx, sheetID, []core.JobEmailRecord{*record}); err != nil {
		s.intake.logger.Error("Failed to append record",
			zap.String("user", user),
			zap.Error(err))
		return err
	}

	s.intake.logger.Info("Tracked forwarded message",
		zap.String("user", user),
		zap.String("category", string(record.Category)),
		zap.String("company", record.Company),
		zap.String("position", record.Position))

	return nil
}

// Logout handles SMTP logout (nothing to clean up)
func (s *smtpSession) Logout() error {
	return nil
}
