package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/classify"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/internal/factory"
	"github.com/jobsift/jobsift/internal/logging"
	"github.com/jobsift/jobsift/internal/mimetext"
	"github.com/jobsift/jobsift/internal/nlp"
	"github.com/jobsift/jobsift/internal/ports"
	"github.com/jobsift/jobsift/internal/screen"
	"github.com/jobsift/jobsift/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewAssistFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewGoogleFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewIntakeFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register user store
	if err := container.Provide(func(f *factory.StoreFactory) (core.UserStore, error) {
		return f.CreateUserStore()
	}); err != nil {
		return nil, err
	}

	// Register assist client
	if err := container.Provide(func(f *factory.AssistFactory) (core.AssistClient, error) {
		return f.CreateAssistClient()
	}); err != nil {
		return nil, err
	}

	// Register mail source and record sink
	if err := container.Provide(func(f *factory.GoogleFactory) (core.MailSource, error) {
		return f.CreateMailSource()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.GoogleFactory) (core.RecordSink, error) {
		return f.CreateRecordSink()
	}); err != nil {
		return nil, err
	}

	// Register pipeline stages
	if err := container.Provide(func() core.BodyDecoder {
		return mimetext.Decoder{}
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.Screener {
		return screen.NewScreen(logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.Classifier {
		return classify.NewClassifier(logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.EntityExtractor {
		analyzer, err := nlp.NewAnalyzer(logger)
		if err != nil {
			// Extraction runs without tagging rather than blocking startup
			logger.Warn("Language model unavailable", zap.Error(err))
		}
		return extract.NewExtractor(analyzer, logger)
	}); err != nil {
		return nil, err
	}

	// Register tracker service
	if err := container.Provide(core.NewTrackerService); err != nil {
		return nil, err
	}

	// Register message intake
	if err := container.Provide(func(f *factory.IntakeFactory) (ports.Intake, error) {
		return f.CreateIntake()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
