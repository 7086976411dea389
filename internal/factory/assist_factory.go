package factory

import (
	"fmt"

	"github.com/jobsift/jobsift/internal/adapters/assist/bedrock"
	"github.com/jobsift/jobsift/internal/adapters/assist/gemini"
	"github.com/jobsift/jobsift/internal/adapters/assist/openai"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/utils"
	"go.uber.org/zap"
)

// AssistFactory creates assist clients based on configuration
type AssistFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewAssistFactory creates a new assist factory
func NewAssistFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *AssistFactory {
	return &AssistFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateAssistClient creates an assist client based on the configuration.
// A nil client means assist is disabled and the heuristics run alone.
func (f *AssistFactory) CreateAssistClient() (core.AssistClient, error) {
	assistCfg := f.cfg.GetAssist()
	if !assistCfg.Enabled {
		return nil, nil
	}

	switch assistCfg.Provider {
	case "bedrock":
		bedrockCfg := f.cfg.GetBedrock()
		return bedrock.NewClient(
			bedrockCfg.Region,
			bedrockCfg.ModelID,
			bedrockCfg.MaxTokens,
			bedrockCfg.Temperature,
			bedrockCfg.TopP,
			bedrockCfg.MaxBodySize,
			f.logger,
			f.textProcessor,
		)
	case "gemini":
		geminiCfg := f.cfg.GetGemini()
		if geminiCfg.APIKey == "" {
			return nil, fmt.Errorf("gemini API key is required")
		}
		return gemini.NewClient(
			geminiCfg.APIKey,
			geminiCfg.ModelName,
			geminiCfg.MaxTokens,
			geminiCfg.Temperature,
			geminiCfg.TopP,
			geminiCfg.MaxBodySize,
			f.logger,
			f.textProcessor,
		)
	case "openai":
		openaiCfg := f.cfg.GetOpenAI()
		if openaiCfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key is required")
		}
		return openai.NewClient(
			openaiCfg.APIKey,
			openaiCfg.ModelName,
			openaiCfg.MaxTokens,
			openaiCfg.Temperature,
			openaiCfg.TopP,
			openaiCfg.MaxBodySize,
			f.logger,
			f.textProcessor,
		), nil
	default:
		return nil, fmt.Errorf("unsupported assist provider: %s", assistCfg.Provider)
	}
}
