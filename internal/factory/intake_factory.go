package factory

import (
	"fmt"

	"github.com/jobsift/jobsift/internal/adapters/gmailapi"
	"github.com/jobsift/jobsift/internal/adapters/intake"
	"github.com/jobsift/jobsift/internal/classify"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/ports"
	"go.uber.org/zap"
)

// IntakeFactory creates message intakes based on configuration
type IntakeFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.TrackerService
	source  core.MailSource
	sink    core.RecordSink
	store   core.UserStore
}

// NewIntakeFactory creates a new intake factory
func NewIntakeFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.TrackerService,
	source core.MailSource,
	sink core.RecordSink,
	store core.UserStore,
) *IntakeFactory {
	return &IntakeFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
		source:  source,
		sink:    sink,
		store:   store,
	}
}

// CreateIntake creates a message intake based on the configuration
func (f *IntakeFactory) CreateIntake() (ports.Intake, error) {
	intakeCfg := f.cfg.GetIntake()

	switch intakeCfg.Type {
	case "poller":
		interval, err := f.cfg.GetDuration("intake.poll_interval")
		if err != nil {
			return nil, fmt.Errorf("invalid poll interval: %w", err)
		}
		return intake.NewPoller(
			f.service,
			f.source,
			f.sink,
			f.store,
			f.cfg.GetUser().Email,
			f.cfg.GetSheets().Title,
			gmailapi.BuildApplicationQuery(classify.ApplicationPhrases()),
			interval,
			intakeCfg.RunOnce,
			f.logger,
		), nil
	case "smtp":
		return intake.NewSMTPIntake(
			f.service,
			f.sink,
			f.store,
			intakeCfg.ListenAddress,
			intakeCfg.Domain,
			f.cfg.GetSheets().Title,
			f.logger,
		), nil
	default:
		return nil, fmt.Errorf("unsupported intake type: %s", intakeCfg.Type)
	}
}
