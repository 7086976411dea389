package factory

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobsift/jobsift/internal/adapters/gmailapi"
	"github.com/jobsift/jobsift/internal/adapters/sheet"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/googleauth"
	"go.uber.org/zap"
)

// GoogleFactory creates the Gmail source and the Sheets sink. Both sides
// share one OAuth token, so the scopes requested at authorization time
// cover mail search and spreadsheet writes together.
type GoogleFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewGoogleFactory creates a new Google factory
func NewGoogleFactory(cfg *config.Config, logger *zap.Logger) *GoogleFactory {
	return &GoogleFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMailSource creates a Gmail client from the cached OAuth token
func (f *GoogleFactory) CreateMailSource() (core.MailSource, error) {
	client, err := f.httpClient()
	if err != nil {
		return nil, err
	}

	gmailCfg := f.cfg.GetGmail()
	return gmailapi.NewClient(client, gmailCfg.MaxResults, f.logger)
}

// CreateRecordSink creates a Sheets writer from the cached OAuth token
func (f *GoogleFactory) CreateRecordSink() (core.RecordSink, error) {
	client, err := f.httpClient()
	if err != nil {
		return nil, err
	}

	return sheet.NewWriter(client, f.logger)
}

// httpClient builds an authorized HTTP client from the configured
// credentials and token files
func (f *GoogleFactory) httpClient() (*http.Client, error) {
	gmailCfg := f.cfg.GetGmail()

	client, err := googleauth.Client(context.Background(), gmailCfg.CredentialsPath, gmailCfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build Google client: %w", err)
	}
	return client, nil
}
